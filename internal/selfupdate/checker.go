// Package selfupdate checks GitHub for a newer released version of the
// binary. It only reports; installing the update is up to the user.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const defaultTimeout = 10 * time.Second

// Release describes a published release.
type Release struct {
	// Version is the release tag, normalized to a leading "v".
	Version string

	// URL is the release's web page.
	URL string
}

// Checker queries the GitHub releases API.
type Checker struct {
	// Repo is the "owner/name" slug.
	Repo string

	// Current is the running version, with or without a leading "v".
	Current string

	// Client defaults to an http.Client with a short timeout.
	Client *http.Client

	// BaseURL overrides the GitHub API root in tests.
	BaseURL string
}

// Check fetches the latest release and reports whether it is newer than
// Current. Dev builds (a Current that is not valid semver) never see an
// update.
func (c *Checker) Check(ctx context.Context) (*Release, bool, error) {
	current := normalize(c.Current)
	if !semver.IsValid(current) {
		return nil, false, nil
	}

	latest, err := c.latest(ctx)
	if err != nil {
		return nil, false, err
	}

	if !semver.IsValid(latest.Version) {
		return nil, false, fmt.Errorf("release tag %q is not semver", latest.Version)
	}
	return latest, semver.Compare(latest.Version, current) > 0, nil
}

func (c *Checker) latest(ctx context.Context) (*Release, error) {
	base := c.BaseURL
	if base == "" {
		base = "https://api.github.com"
	}
	url := fmt.Sprintf("%s/repos/%s/releases/latest", base, c.Repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch latest release: unexpected status %s", resp.Status)
	}

	var payload struct {
		TagName string `json:"tag_name"`
		HTMLURL string `json:"html_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	return &Release{
		Version: normalize(payload.TagName),
		URL:     payload.HTMLURL,
	}, nil
}

func normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
