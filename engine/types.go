package engine

import (
	"slices"

	"golang.org/x/text/message"
)

// ============================================================================
// STATS TYPE — A named statistic and its binners
// ============================================================================

// Kind classifies what a statistic's values support.
type Kind int

const (
	// Discrete values only (dive mode, buddy). A dive may have several.
	Discrete Kind = iota
	// Continuous values have a linear distance (date).
	Continuous
	// Numeric values are continuous and support averaging (depth).
	Numeric
)

func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Numeric:
		return "numeric"
	}
	return "discrete"
}

// StatsType is a statistic category such as "Depth".
type StatsType interface {
	Kind() Kind
	Name(p *message.Printer) string
	// Binners returns at least one binner. The list may depend on
	// configuration read at call time (unit system).
	Binners() []Binner
}

// GetBinner returns binner idx of t. Out-of-range indices return the first
// binner; a type without binners returns nil.
func GetBinner(t StatsType, idx int) Binner {
	b := t.Binners()
	if len(b) == 0 {
		return nil
	}
	if idx >= 0 && idx < len(b) {
		return b[idx]
	}
	return b[0]
}

// BinnerNames returns the display names of t's binners, in order.
func BinnerNames(t StatsType, p *message.Printer) []string {
	binners := t.Binners()
	names := make([]string, len(binners))
	for i, b := range binners {
		names[i] = b.Name(p)
	}
	return names
}

// staticType is a category whose binner list never changes.
type staticType struct {
	kind    Kind
	name    string
	binners []Binner
}

func (t *staticType) Kind() Kind                     { return t.kind }
func (t *staticType) Name(p *message.Printer) string { return translate(p, t.name) }
func (t *staticType) Binners() []Binner              { return slices.Clone(t.binners) }
