package service

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"sienna-watch/internal/ingest"
	"sienna-watch/internal/model"
	"sienna-watch/internal/store"
)

const dealerDoc = `{"showDealerLocatorDataArea":{"dealerLocator":[{"dealerLocatorDetail":[{"dealerParty":{"specifiedOrganization":{"primaryContact":[{"telephoneCommunication":[{"channelCode":{"value":"Phone"},"completeNumber":{"value":"7035551234"}}]}]}}}]}]}}`

func newTestService(t *testing.T, opts Options) (*ListingService, store.EntityStore) {
	t.Helper()

	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	input := filepath.Join(t.TempDir(), "listings.json")
	listings := []model.Listing{
		{VIN: "VIN1", DealerCd: "10001", Distance: 30, Model: model.ModelInfo{MarketingName: "Sienna XLE"}},
		{VIN: "VIN2", DealerCd: "10001", Distance: 10, Model: model.ModelInfo{MarketingName: "Sienna XSE"}},
	}
	if err := ingest.WriteListings(input, listings, time.Now()); err != nil {
		t.Fatalf("WriteListings: %v", err)
	}

	if opts.MaxMarkup == 0 {
		opts.MaxMarkup = -1
	}
	return NewListingService(st, input, opts), st
}

func putSighting(t *testing.T, st store.EntityStore, vin string, seen time.Time) {
	t.Helper()
	raw, err := json.Marshal(model.NewSightingFact(seen))
	if err != nil {
		t.Fatalf("marshal sighting: %v", err)
	}
	if _, err := st.Put(context.Background(), store.NamespaceSighting, vin, raw); err != nil {
		t.Fatalf("put sighting: %v", err)
	}
}

func TestViewsJoinsCachedFacts(t *testing.T) {
	svc, st := newTestService(t, Options{})
	ctx := context.Background()

	seen := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	putSighting(t, st, "VIN1", seen)
	if _, err := st.Put(ctx, store.NamespaceDealer, "10001", json.RawMessage(dealerDoc)); err != nil {
		t.Fatalf("put dealer: %v", err)
	}

	records, total, err := svc.Views(ctx)
	if err != nil {
		t.Fatalf("Views: %v", err)
	}
	if total != 2 || len(records) != 2 {
		t.Fatalf("records = %d of %d, want 2 of 2", len(records), total)
	}

	// Default sort is distance ascending.
	if records[0].VIN != "VIN2" || records[1].VIN != "VIN1" {
		t.Errorf("order = %s, %s; want VIN2, VIN1", records[0].VIN, records[1].VIN)
	}
	for _, rec := range records {
		if rec.DealerPhone != "(703)-555-1234" {
			t.Errorf("DealerPhone = %q", rec.DealerPhone)
		}
	}
	if !records[1].FirstSeen.Equal(seen) {
		t.Errorf("FirstSeen = %v, want %v", records[1].FirstSeen, seen)
	}
}

func TestViewsSortNewest(t *testing.T) {
	svc, st := newTestService(t, Options{Sort: "newest"})
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	putSighting(t, st, "VIN1", base.Add(48*time.Hour))
	putSighting(t, st, "VIN2", base)

	records, _, err := svc.Views(ctx)
	if err != nil {
		t.Fatalf("Views: %v", err)
	}
	if records[0].VIN != "VIN1" {
		t.Errorf("newest-first order = %s, %s", records[0].VIN, records[1].VIN)
	}
}

func TestMarkThenRemoveLastWriteWins(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()

	if err := svc.Mark(ctx, "VIN1"); err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if err := svc.Remove(ctx, "VIN1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	records, _, err := svc.Views(ctx)
	if err != nil {
		t.Fatalf("Views: %v", err)
	}
	for _, rec := range records {
		if rec.VIN == "VIN1" {
			t.Error("VIN1 visible after remove overwrote mark")
		}
	}
}
