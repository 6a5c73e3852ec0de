// Package ingest reconciles freshly fetched listings against the entity
// store: it memoizes dealer detail documents and anchors every VIN with a
// write-once first-seen fact.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"sienna-watch/internal/model"
	"sienna-watch/internal/store"
)

// DealerFetcher retrieves a dealer detail document from the remote API.
type DealerFetcher interface {
	FetchDealer(ctx context.Context, dealerCode string) (json.RawMessage, error)
}

// Reconciler walks a fetched listing set and fills the entity store. It drops
// no records; filtering happens later, at presentation time.
type Reconciler struct {
	store   store.EntityStore
	dealers DealerFetcher
	now     func() time.Time

	// dealer codes already resolved during this run
	seen map[string]bool
}

// NewReconciler creates a reconciler for a single ingestion run.
func NewReconciler(st store.EntityStore, dealers DealerFetcher) *Reconciler {
	return &Reconciler{
		store:   st,
		dealers: dealers,
		now:     time.Now,
		seen:    make(map[string]bool),
	}
}

// Run processes the listings in order. Store failures abort the run; a dealer
// fetch failure does not, the listing simply proceeds without a profile.
func (r *Reconciler) Run(ctx context.Context, listings []model.Listing) error {
	for _, listing := range listings {
		if err := r.resolveDealer(ctx, listing.DealerCd); err != nil {
			return err
		}
		if err := r.recordSighting(ctx, listing.VIN); err != nil {
			return err
		}
	}
	return nil
}

// resolveDealer fetches and caches the dealer document the first time a
// dealer code appears in this run. Previously cached dealers skip the
// network entirely; staleness is accepted.
func (r *Reconciler) resolveDealer(ctx context.Context, dealerCode string) error {
	if dealerCode == "" || r.seen[dealerCode] {
		return nil
	}
	r.seen[dealerCode] = true

	ok, err := r.store.Exists(ctx, store.NamespaceDealer, dealerCode)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	doc, err := r.dealers.FetchDealer(ctx, dealerCode)
	if err != nil {
		// Non-fatal: downstream contact derivation degrades to blanks.
		log.Printf("Dealer %s fetch failed: %v", dealerCode, err)
		return nil
	}
	if _, err := r.store.Put(ctx, store.NamespaceDealer, dealerCode, doc); err != nil {
		return err
	}
	log.Printf("Loaded dealer %s!", dealerCode)
	return nil
}

// recordSighting creates the first-seen fact for a VIN exactly once. An
// existing fact is never touched; it is the freshness anchor for "new since"
// filtering.
func (r *Reconciler) recordSighting(ctx context.Context, vin string) error {
	ok, err := r.store.Exists(ctx, store.NamespaceSighting, vin)
	if err != nil || ok {
		return err
	}

	now := r.now()
	log.Printf("New vehicle [%s]: %s", vin, now)

	fact, err := json.Marshal(model.NewSightingFact(now))
	if err != nil {
		return fmt.Errorf("encode sighting %s: %w", vin, err)
	}
	_, err = r.store.Put(ctx, store.NamespaceSighting, vin, fact)
	return err
}
