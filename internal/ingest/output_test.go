package ingest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"sienna-watch/internal/model"
)

func TestWriteAndReadListingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.json")
	listings := []model.Listing{
		{VIN: "VIN1", DealerCd: "10001", Model: model.ModelInfo{MarketingName: "Sienna XLE"}},
		{VIN: "VIN2", DealerCd: "10002", Model: model.ModelInfo{MarketingName: "Sienna XSE"}},
	}

	if err := WriteListings(path, listings, time.Now()); err != nil {
		t.Fatalf("WriteListings: %v", err)
	}

	got, err := ReadListings(path)
	if err != nil {
		t.Fatalf("ReadListings: %v", err)
	}

	var wantVINs, gotVINs []string
	for _, l := range listings {
		wantVINs = append(wantVINs, l.VIN)
	}
	for _, l := range got {
		gotVINs = append(gotVINs, l.VIN)
	}
	if diff := cmp.Diff(wantVINs, gotVINs); diff != "" {
		t.Errorf("VIN set (-want +got):\n%s", diff)
	}
}

func TestWriteListingsRenamesPreviousAside(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "listings.json")
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	if err := WriteListings(path, []model.Listing{{VIN: "OLD"}}, now); err != nil {
		t.Fatalf("first WriteListings: %v", err)
	}
	if err := WriteListings(path, []model.Listing{{VIN: "NEW"}}, now.Add(time.Hour)); err != nil {
		t.Fatalf("second WriteListings: %v", err)
	}

	got, err := ReadListings(path)
	if err != nil {
		t.Fatalf("ReadListings: %v", err)
	}
	if len(got) != 1 || got[0].VIN != "NEW" {
		t.Errorf("current dump = %+v, want the new set", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected dump plus renamed-aside file, got %d entries", len(entries))
	}
}
