// Package service implements the presentation-side business logic: joining
// the listing dump with cached facts into view records, and applying user
// mutations back to the entity store.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"sienna-watch/internal/ingest"
	"sienna-watch/internal/model"
	"sienna-watch/internal/store"
	"sienna-watch/internal/view"
)

// Options holds the view settings for a ListingService.
type Options struct {
	Filter          bool
	MinDesirability int
	Since           time.Duration
	MaxMarkup       int
	Sort            string
}

// ListingService recomputes the filtered view on every read and writes
// user-applied listing states. It holds no view state between requests, so
// mutations are visible on the next read.
type ListingService struct {
	store     store.EntityStore
	inputPath string
	opts      Options
	now       func() time.Time
}

// NewListingService creates a listing service reading dumps from inputPath.
func NewListingService(st store.EntityStore, inputPath string, opts Options) *ListingService {
	return &ListingService{
		store:     st,
		inputPath: inputPath,
		opts:      opts,
		now:       time.Now,
	}
}

// Views loads the dump, joins each listing with its cached facts, evaluates
// the filter chain, and returns the sorted records plus the pre-filter count.
func (s *ListingService) Views(ctx context.Context) ([]*view.Record, int, error) {
	listings, err := ingest.ReadListings(s.inputPath)
	if err != nil {
		return nil, 0, err
	}

	opts := view.Options{
		Filter:          s.opts.Filter,
		MinDesirability: s.opts.MinDesirability,
		Since:           s.opts.Since,
		MaxMarkup:       s.opts.MaxMarkup,
		Now:             s.now(),
	}

	var records []*view.Record
	for _, listing := range listings {
		sighting, err := s.sighting(ctx, listing.VIN)
		if err != nil {
			return nil, 0, err
		}
		state, err := s.listingState(ctx, listing.VIN)
		if err != nil {
			return nil, 0, err
		}
		dealer, err := s.store.Get(ctx, store.NamespaceDealer, listing.DealerCd)
		if err != nil {
			return nil, 0, err
		}

		if rec := view.Evaluate(listing, dealer, sighting, state, opts); rec != nil {
			records = append(records, rec)
		}
	}

	view.SortRecords(records, s.opts.Sort)
	log.Printf("Loaded %d filtered vehicles from %d original vehicle(s)", len(records), len(listings))
	return records, len(listings), nil
}

// Mark annotates a VIN as marked-for-attention.
func (s *ListingService) Mark(ctx context.Context, vin string) error {
	return s.putState(ctx, vin, model.StateMarked)
}

// Remove hides a VIN from presentation.
func (s *ListingService) Remove(ctx context.Context, vin string) error {
	return s.putState(ctx, vin, model.StateRemoved)
}

func (s *ListingService) putState(ctx context.Context, vin, state string) error {
	fact, err := json.Marshal(model.NewListingState(state, s.now()))
	if err != nil {
		return fmt.Errorf("encode state %s: %w", vin, err)
	}
	_, err = s.store.Put(ctx, store.NamespaceListingState, vin, fact)
	return err
}

func (s *ListingService) sighting(ctx context.Context, vin string) (*model.SightingFact, error) {
	raw, err := s.store.Get(ctx, store.NamespaceSighting, vin)
	if err != nil || raw == nil {
		return nil, err
	}
	var fact model.SightingFact
	if err := json.Unmarshal(raw, &fact); err != nil {
		return nil, fmt.Errorf("decode sighting %s: %w", vin, err)
	}
	return &fact, nil
}

func (s *ListingService) listingState(ctx context.Context, vin string) (*model.ListingState, error) {
	raw, err := s.store.Get(ctx, store.NamespaceListingState, vin)
	if err != nil || raw == nil {
		return nil, err
	}
	var state model.ListingState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode state %s: %w", vin, err)
	}
	return &state, nil
}
