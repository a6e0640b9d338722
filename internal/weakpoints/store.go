package weakpoints

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"
)

// Persistence is the capability the store uses to durably serialize its
// records. Implementations own the storage medium; the store owns the
// collection.
type Persistence interface {
	// Load returns the persisted records, or an error if the medium is
	// unreadable. A missing snapshot is (nil, nil).
	Load() ([]Record, error)

	// Save replaces the persisted snapshot with records.
	Save(records []Record) error
}

// Store owns the weak-point collection. It keeps records in insertion
// order, persists after every mutation, and never fails a mutation on a
// persistence error: the in-memory state stays authoritative for the run.
type Store struct {
	mu      sync.Mutex
	records []Record
	index   map[string]int // grammar point → position in records
	persist Persistence
	now     func() time.Time
}

// NewStore creates a Store backed by p, loading any persisted records.
// Absent or corrupt persisted data is not fatal: the store starts empty.
func NewStore(p Persistence) *Store {
	s := &Store{
		index:   make(map[string]int),
		persist: p,
		now:     time.Now,
	}

	records, err := p.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: weak points unreadable, starting empty: %v\n", err)
		return s
	}
	for _, r := range records {
		if _, dup := s.index[r.GrammarPoint]; dup || r.GrammarPoint == "" {
			continue
		}
		s.index[r.GrammarPoint] = len(s.records)
		s.records = append(s.records, r)
	}
	return s
}

// RecordMiss increments the error counter for grammarPoint, inserting a
// fresh record on first miss, and refreshes the last-practice timestamp.
func (s *Store) RecordMiss(grammarPoint string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[grammarPoint]; ok {
		s.records[i].ErrorCount++
		s.records[i].LastPracticeDate = s.now()
	} else {
		s.index[grammarPoint] = len(s.records)
		s.records = append(s.records, Record{
			GrammarPoint:     grammarPoint,
			ErrorCount:       1,
			LastPracticeDate: s.now(),
		})
	}

	s.save()
}

// Clear removes the record for an exact key match. Clearing an unknown
// key is a no-op and does not touch the persisted snapshot.
func (s *Store) Clear(grammarPoint string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.remove(grammarPoint) {
		s.save()
	}
}

// ClearMany removes every record whose key is in grammarPoints,
// persisting once if anything was removed.
func (s *Store) ClearMany(grammarPoints map[string]struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	for gp := range grammarPoints {
		if s.remove(gp) {
			removed = true
		}
	}
	if removed {
		s.save()
	}
}

// List returns a snapshot sorted by error count descending. Ties keep
// insertion order.
func (s *Store) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ErrorCount > out[j].ErrorCount
	})
	return out
}

// Contains reports whether a record exists for grammarPoint.
func (s *Store) Contains(grammarPoint string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.index[grammarPoint]
	return ok
}

// Len returns the number of tracked weak points.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// remove deletes the record for grammarPoint, reindexing the tail.
// Caller holds the lock.
func (s *Store) remove(grammarPoint string) bool {
	i, ok := s.index[grammarPoint]
	if !ok {
		return false
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	delete(s.index, grammarPoint)
	for j := i; j < len(s.records); j++ {
		s.index[s.records[j].GrammarPoint] = j
	}
	return true
}

// save persists the full record set. Failures are logged and swallowed.
// Caller holds the lock.
func (s *Store) save() {
	snapshot := make([]Record, len(s.records))
	copy(snapshot, s.records)
	if err := s.persist.Save(snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist weak points: %v\n", err)
	}
}
