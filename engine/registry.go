package engine

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// Registry is the ordered list of statistic categories. Build it once at
// startup and share it; it is never mutated afterwards.
type Registry struct {
	types  []StatsType
	logger logrus.FieldLogger
}

// NewRegistry builds the categories Date, Depth, Dive mode and Buddies.
func NewRegistry(opts ...Option) *Registry {
	cfg := applyOptions(opts)
	return &Registry{
		types: []StatsType{
			newDateType(),
			&depthType{units: cfg.Units},
			newDiveModeType(),
			newBuddyType(),
		},
		logger: cfg.Logger,
	}
}

// Types returns the categories in display order.
func (r *Registry) Types() []StatsType { return slices.Clone(r.types) }

// Len returns the number of categories.
func (r *Registry) Len() int { return len(r.types) }

// Type returns category idx, or false when idx is out of range.
func (r *Registry) Type(idx int) (StatsType, bool) {
	if idx < 0 || idx >= len(r.types) {
		return nil, false
	}
	return r.types[idx], true
}
