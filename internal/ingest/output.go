package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"sienna-watch/internal/model"
)

// WriteListings writes the listing dump to path as an indented JSON array.
// An existing dump at that path is renamed aside with an epoch suffix rather
// than overwritten, so previous runs remain inspectable.
func WriteListings(path string, listings []model.Listing, now time.Time) error {
	if _, err := os.Stat(path); err == nil {
		aside := fmt.Sprintf("%s_%d", path, now.Unix())
		if err := os.Rename(path, aside); err != nil {
			return fmt.Errorf("rename previous output: %w", err)
		}
	}

	data, err := json.MarshalIndent(listings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode listings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// ReadListings loads a listing dump previously written by WriteListings.
func ReadListings(path string) ([]model.Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read listings: %w", err)
	}
	var listings []model.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}
	return listings, nil
}
