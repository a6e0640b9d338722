package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jiahui/grampoint/internal/weakpoints"
)

// weakPointsKey is the kv key holding the serialized weak-point list.
const weakPointsKey = "weak_points"

// WeakPointRepo persists the weak-point record list as a JSON document
// under a single kv key. It implements weakpoints.Persistence.
type WeakPointRepo struct {
	db *sql.DB
}

// Load reads the persisted record list. A missing key yields (nil, nil);
// an unreadable or corrupt value is an error the store treats as "start
// empty".
func (r *WeakPointRepo) Load() ([]weakpoints.Record, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, weakPointsKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", weakPointsKey, err)
	}

	var records []weakpoints.Record
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", weakPointsKey, err)
	}
	return records, nil
}

// Save replaces the persisted record list.
func (r *WeakPointRepo) Save(records []weakpoints.Record) error {
	value, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", weakPointsKey, err)
	}

	_, err = r.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		weakPointsKey, string(value),
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", weakPointsKey, err)
	}
	return nil
}

// Reset deletes the persisted weak-point snapshot.
func (r *WeakPointRepo) Reset() error {
	_, err := r.db.Exec(`DELETE FROM kv WHERE key = ?`, weakPointsKey)
	if err != nil {
		return fmt.Errorf("delete %s: %w", weakPointsKey, err)
	}
	return nil
}
