package engine

import (
	"strings"
	"time"

	"github.com/spektr-org/divestat/dive"
)

// ============================================================================
// FILTERS — Dive selection before binning
// ============================================================================
// Single pass: every dive is checked against all constraints at once.
// Returns a new slice of the parent's dives in input order; dives are not copied.
// ============================================================================

// Filter restricts the dives a query bins. Constraints are AND-combined;
// values within Modes or Buddies are OR-combined. The zero Filter keeps
// every dive.
type Filter struct {
	Modes   []dive.Mode `json:"modes,omitempty"`
	Buddies []string    `json:"buddies,omitempty"` // matched case-insensitively against buddies and guides
	Since   time.Time   `json:"since,omitempty"`   // inclusive
	Until   time.Time   `json:"until,omitempty"`   // exclusive
}

// IsEmpty reports whether f keeps every dive.
func (f Filter) IsEmpty() bool {
	return len(f.Modes) == 0 && len(f.Buddies) == 0 && f.Since.IsZero() && f.Until.IsZero()
}

// ApplyFilter returns the dives matching f. An empty filter returns dives unchanged.
func ApplyFilter(dives []dive.Dive, f Filter) []dive.Dive {
	if f.IsEmpty() {
		return dives
	}

	var modes [dive.NumModes]bool
	for _, m := range f.Modes {
		if m.Valid() {
			modes[m] = true
		}
	}
	buddies := toLowerSet(f.Buddies)

	out := make([]dive.Dive, 0, len(dives))
	for _, d := range dives {
		if len(f.Modes) > 0 && !modes[diveModeKey(d)] {
			continue
		}
		when := d.When()
		if !f.Since.IsZero() && when.Before(f.Since) {
			continue
		}
		if !f.Until.IsZero() && !when.Before(f.Until) {
			continue
		}
		if len(buddies) > 0 && !divedWithAny(d, buddies) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func divedWithAny(d dive.Dive, set map[string]bool) bool {
	for _, name := range divePeople(d) {
		if set[strings.ToLower(name)] {
			return true
		}
	}
	return false
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			set[strings.ToLower(item)] = true
		}
	}
	return set
}
