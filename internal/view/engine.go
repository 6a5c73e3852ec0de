// Package view turns fetched listings and cached facts into scored,
// filterable records for presentation. Everything here is a pure function of
// its inputs: evaluating one listing never touches storage and never depends
// on any other listing.
package view

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"sienna-watch/internal/model"
)

// Sort keys accepted by SortRecords.
const (
	SortDistance = "distance"
	SortNewest   = "newest"
)

// Options controls filtering and scoring for one pipeline invocation.
type Options struct {
	// Filter enables the exclusion predicates. When false, listings are
	// only annotated, never dropped (user-removed listings excepted).
	Filter bool

	// MinDesirability is the score threshold applied when Filter is set.
	MinDesirability int

	// Since excludes vehicles first seen longer ago than this. Zero
	// disables the cutoff.
	Since time.Duration

	// MaxMarkup excludes listings whose markup exceeds this bound, and
	// unpriced listings outright. Negative disables the bound.
	MaxMarkup int

	// Now anchors the recency cutoff so evaluation stays deterministic.
	Now time.Time
}

// Record is the flattened, scored representation handed to the renderer.
type Record struct {
	Title           string
	Model           string
	VIN             string
	Status          string
	Badges          string
	Desirability    int
	NotableOptions  []string
	OtherOptions    []string
	Drivetrain      string
	DealerName      string
	DealerWebsite   string
	DealerPhone     string
	DealerAddress   string
	Color           string
	IntColor        string
	Distance        float64
	MSRP            float64
	AdvertisedPrice float64
	Markup          float64
	FirstSeen       time.Time
	State           string
}

// allowedModels is the trim allow-list applied when filtering is enabled.
var allowedModels = map[string]bool{
	"Sienna XLE": true,
	"Sienna XSE": true,
}

// Evaluate applies the filter chain to one listing and returns its view
// record, or nil when the listing is excluded. All predicates must hold for
// inclusion; their order is free to change.
func Evaluate(listing model.Listing, dealer json.RawMessage, sighting *model.SightingFact, state *model.ListingState, opts Options) *Record {
	// User-applied removal wins over every other setting. Legacy state
	// records with no state field also mean removed.
	if state != nil && state.Suppressed() {
		return nil
	}

	var firstSeen time.Time
	if sighting != nil {
		firstSeen = sighting.FirstSeen()
	}

	if opts.Since > 0 && sighting != nil {
		cutoff := opts.Now.Add(-opts.Since)
		if firstSeen.Before(cutoff) {
			return nil
		}
	}

	if opts.Filter && !allowedModels[listing.Model.MarketingName] {
		return nil
	}

	var reasons []string
	if listing.IsPreSold {
		reasons = append(reasons, "PRE_SOLD")
	}
	if listing.HoldStatus != "" {
		reasons = append(reasons, listing.HoldStatus)
	}
	if opts.Filter && len(reasons) > 0 {
		return nil
	}

	decoded := decodeOptions(listing.Options)
	if opts.Filter && decoded.desirability < opts.MinDesirability {
		return nil
	}

	advertised := listing.Price.AdvertizedPrice
	if opts.MaxMarkup >= 0 && advertised == 0 {
		return nil
	}
	msrp := listing.Price.TotalMsrp
	markup := 0.0
	if advertised > msrp {
		markup = advertised - msrp
	}
	if opts.MaxMarkup >= 0 && markup > float64(opts.MaxMarkup) {
		return nil
	}

	rec := &Record{
		Title:           listing.Model.MarketingTitle,
		Model:           listing.Model.MarketingName,
		VIN:             listing.VIN,
		Status:          strings.Join(reasons, "; "),
		Badges:          decoded.badges,
		Desirability:    decoded.desirability,
		NotableOptions:  decoded.notable,
		OtherOptions:    decoded.other,
		Drivetrain:      listing.Drivetrain.Code,
		DealerName:      listing.DealerMarketingName,
		DealerWebsite:   listing.DealerWebsite,
		DealerPhone:     dealerPhone(dealer),
		DealerAddress:   dealerAddress(dealer),
		Color:           listing.ExtColor.MarketingName,
		IntColor:        listing.IntColor.MarketingName,
		Distance:        listing.Distance,
		MSRP:            msrp,
		AdvertisedPrice: advertised,
		Markup:          markup,
		FirstSeen:       firstSeen,
	}
	if state != nil {
		rec.State = state.Name()
	}
	return rec
}

// SortRecords orders records in place by the given key. The sort is stable,
// so ties keep their input order.
func SortRecords(records []*Record, key string) {
	switch key {
	case SortNewest:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].FirstSeen.After(records[j].FirstSeen)
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Distance < records[j].Distance
		})
	}
}
