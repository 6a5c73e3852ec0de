package model

import "time"

// SightingFact records when a VIN was first observed in inventory. It is
// written once and never updated; the JSON field name matches the on-disk
// cache format shared with earlier versions of this tool.
type SightingFact struct {
	FirstSeenEpoch float64 `json:"date_from_epoch"`
}

// FirstSeen converts the stored epoch seconds to a time.Time.
func (f SightingFact) FirstSeen() time.Time {
	sec := int64(f.FirstSeenEpoch)
	nsec := int64((f.FirstSeenEpoch - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec)
}

// NewSightingFact stamps a sighting fact with the given observation time.
func NewSightingFact(t time.Time) SightingFact {
	return SightingFact{FirstSeenEpoch: epochSeconds(t)}
}

// Listing states applied by user actions.
const (
	StateMarked  = "MARKED"
	StateRemoved = "REMOVED"
)

// ListingState is a user-applied annotation on a VIN. Records written before
// the state field existed carry no state at all; such legacy records imply
// REMOVED.
type ListingState struct {
	State        *string `json:"state"`
	ChangedEpoch float64 `json:"time"`
}

// NewListingState builds a state fact stamped with the given change time.
func NewListingState(state string, t time.Time) ListingState {
	return ListingState{State: &state, ChangedEpoch: epochSeconds(t)}
}

// Suppressed reports whether the listing must be hidden from presentation.
func (s ListingState) Suppressed() bool {
	return s.State == nil || *s.State == StateRemoved
}

// Name returns the state string, or empty for legacy records.
func (s ListingState) Name() string {
	if s.State == nil {
		return ""
	}
	return *s.State
}

func epochSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
}
