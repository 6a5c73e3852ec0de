package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sienna-watch/internal/ingest"
	"sienna-watch/internal/model"
	"sienna-watch/internal/service"
	"sienna-watch/internal/store"
)

func newTestHandler(t *testing.T) (*ListingHandler, *service.ListingService) {
	t.Helper()

	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	input := filepath.Join(t.TempDir(), "listings.json")
	listings := []model.Listing{
		{
			VIN:                 "VIN1",
			DealerCd:            "10001",
			DealerMarketingName: "Example Toyota",
			Distance:            10,
			Model:               model.ModelInfo{MarketingName: "Sienna XLE", MarketingTitle: "2026 Sienna XLE"},
		},
		{
			VIN:      "VIN2",
			DealerCd: "10002",
			Distance: 20,
			Model:    model.ModelInfo{MarketingName: "Sienna XSE", MarketingTitle: "2026 Sienna XSE"},
		},
	}
	if err := ingest.WriteListings(input, listings, time.Now()); err != nil {
		t.Fatalf("WriteListings: %v", err)
	}

	svc := service.NewListingService(st, input, service.Options{MaxMarkup: -1})
	return NewListingHandler(svc), svc
}

func postForm(t *testing.T, h *ListingHandler, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.Mutate(rr, req)
	return rr
}

func TestIndexRendersListings(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.Index(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "VIN1") || !strings.Contains(body, "VIN2") {
		t.Errorf("page missing listings:\n%s", body)
	}
}

func TestRemoveSuppressesListing(t *testing.T) {
	h, svc := newTestHandler(t)

	rr := postForm(t, h, "/", url.Values{"removeVin": {"VIN1"}}.Encode())
	if rr.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}

	records, _, err := svc.Views(context.Background())
	if err != nil {
		t.Fatalf("Views: %v", err)
	}
	for _, rec := range records {
		if rec.VIN == "VIN1" {
			t.Error("removed VIN still present in view")
		}
	}
}

func TestMarkAnnotatesListing(t *testing.T) {
	h, svc := newTestHandler(t)

	postForm(t, h, "/", url.Values{"markVin": {"VIN2"}}.Encode())

	records, _, err := svc.Views(context.Background())
	if err != nil {
		t.Fatalf("Views: %v", err)
	}
	var found bool
	for _, rec := range records {
		if rec.VIN == "VIN2" {
			found = true
			if rec.State != model.StateMarked {
				t.Errorf("State = %q, want MARKED", rec.State)
			}
		}
	}
	if !found {
		t.Error("marked VIN missing from view")
	}
}

func TestMutateIsIdempotent(t *testing.T) {
	h, svc := newTestHandler(t)

	postForm(t, h, "/", url.Values{"removeVin": {"VIN1"}}.Encode())
	postForm(t, h, "/", url.Values{"removeVin": {"VIN1"}}.Encode())

	records, _, err := svc.Views(context.Background())
	if err != nil {
		t.Fatalf("Views: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}

func TestMutatePreservesAnchor(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := postForm(t, h, "/?anchor=VIN2", url.Values{"markVin": {"VIN2"}}.Encode())
	if loc := rr.Header().Get("Location"); loc != "/#VIN2" {
		t.Errorf("Location = %q, want /#VIN2", loc)
	}
}

func TestMalformedMutationIsNoOp(t *testing.T) {
	h, svc := newTestHandler(t)

	rr := postForm(t, h, "/", "unknownAction=VIN1")
	if rr.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want redirect for unknown action", rr.Code)
	}

	records, _, err := svc.Views(context.Background())
	if err != nil {
		t.Fatalf("Views: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want untouched 2", len(records))
	}
}
