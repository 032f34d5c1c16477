package engine

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/message"
)

// ============================================================================
// BIN — Self-describing bucket key
// ============================================================================
// Every bin carries a Key from a closed set of variants. Keys of different
// variants never compare equal and order by variant first, so comparing any
// two bins returns a result instead of crashing. Keys carry no statistic tag:
// bins of different statistics that share a variant (year 2021 and depth
// range 2021, "2021 Q3" and "Mar 2021") compare by value alone, and that
// order has no meaning. Only compare bins produced by the same binner.
// ============================================================================

// Bin is one distinct key value of a statistic. Bins are immutable.
type Bin interface {
	// Format returns the human label. A nil printer renders untranslated English.
	Format(p *message.Printer) string
	Key() Key
}

type keyVariant uint8

const (
	intVariant keyVariant = iota
	pairVariant
	stringVariant
	enumVariant
)

// Key is the comparable value behind a Bin.
type Key struct {
	variant keyVariant
	a, b    int
	s       string
}

// IntKey returns a key for a single integer (year, depth range index).
func IntKey(v int) Key { return Key{variant: intVariant, a: v} }

// PairKey returns a key for an ordered pair (year and quarter, year and month).
func PairKey(first, second int) Key { return Key{variant: pairVariant, a: first, b: second} }

// StringKey returns a key for free text (buddy name).
func StringKey(s string) Key { return Key{variant: stringVariant, s: s} }

// EnumKey returns a key for a categorical index (dive mode).
func EnumKey(v int) Key { return Key{variant: enumVariant, a: v} }

// Compare returns -1, 0 or +1. Keys of different variants order by variant.
func (k Key) Compare(o Key) int {
	if k.variant != o.variant {
		return cmp.Compare(k.variant, o.variant)
	}
	if k.variant == stringVariant {
		return strings.Compare(k.s, o.s)
	}
	if c := cmp.Compare(k.a, o.a); c != 0 {
		return c
	}
	return cmp.Compare(k.b, o.b)
}

// Equal reports whether both keys are of the same variant and value.
func (k Key) Equal(o Key) bool { return k == o }

func (k Key) String() string {
	switch k.variant {
	case pairVariant:
		return fmt.Sprintf("(%d,%d)", k.a, k.b)
	case stringVariant:
		return strconv.Quote(k.s)
	case enumVariant:
		return "#" + strconv.Itoa(k.a)
	}
	return strconv.Itoa(k.a)
}

// CompareBins orders two bins by key.
func CompareBins(a, b Bin) int { return a.Key().Compare(b.Key()) }

// EqualBins reports whether two bins carry the same key.
func EqualBins(a, b Bin) bool { return a.Key().Equal(b.Key()) }

// sprintf renders a catalog format string, falling back to fmt without a printer.
// Numbers are passed pre-rendered so the printer does not add digit grouping.
func sprintf(p *message.Printer, format string, args ...any) string {
	if p == nil {
		return fmt.Sprintf(format, args...)
	}
	return p.Sprintf(format, args...)
}

// translate looks up a plain catalog key. Without a printer the key is returned as is.
func translate(p *message.Printer, key string) string {
	if p == nil {
		return key
	}
	return p.Sprintf(key)
}
