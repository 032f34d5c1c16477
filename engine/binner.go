package engine

import (
	"golang.org/x/text/message"

	"github.com/spektr-org/divestat/dive"
)

// ============================================================================
// BINNER — Named grouping strategy
// ============================================================================
// One generic binner covers both single-valued statistics (one key per dive)
// and multi-valued statistics (zero or more keys per dive). Key extraction is
// the only thing a concrete statistic supplies.
// ============================================================================

// BinDives is a bin with the dives that fell into it.
// Dives are references into the caller's slice.
type BinDives struct {
	Bin   Bin
	Dives []dive.Dive
}

// BinCount is a bin with the number of dives that fell into it.
type BinCount struct {
	Bin   Bin
	Count int
}

// Binner partitions dives into bins. Binners are stateless and safe for
// concurrent use.
type Binner interface {
	// Name is only meaningful when a category offers more than one binner.
	Name(p *message.Printer) string
	BinDives(dives []dive.Dive) []BinDives
	CountDives(dives []dive.Dive) []BinCount
}

type binner[K any] struct {
	name func(p *message.Printer) string
	keys func(d dive.Dive, yield func(K))
	cmp  func(a, b K) int
	bin  func(K) Bin
}

// singleBinner builds a binner that extracts exactly one key per dive.
func singleBinner[K any](name func(*message.Printer) string, key func(dive.Dive) K, cmp func(a, b K) int, bin func(K) Bin) *binner[K] {
	return &binner[K]{
		name: name,
		keys: func(d dive.Dive, yield func(K)) { yield(key(d)) },
		cmp:  cmp,
		bin:  bin,
	}
}

// multiBinner builds a binner that extracts any number of keys per dive.
// Repeated keys within one dive contribute once per occurrence.
func multiBinner[K any](name func(*message.Printer) string, keys func(dive.Dive) []K, cmp func(a, b K) int, bin func(K) Bin) *binner[K] {
	return &binner[K]{
		name: name,
		keys: func(d dive.Dive, yield func(K)) {
			for _, k := range keys(d) {
				yield(k)
			}
		},
		cmp: cmp,
		bin: bin,
	}
}

func (b *binner[K]) Name(p *message.Printer) string {
	if b.name == nil {
		return translate(p, "N/D")
	}
	return b.name(p)
}

func (b *binner[K]) BinDives(dives []dive.Dive) []BinDives {
	var entries []entry[K, []dive.Dive]
	for _, d := range dives {
		b.keys(d, func(k K) {
			entries = addDive(entries, k, d, b.cmp)
		})
	}

	res := make([]BinDives, 0, len(entries))
	for _, e := range entries {
		res = append(res, BinDives{Bin: b.bin(e.key), Dives: e.payload})
	}
	return res
}

func (b *binner[K]) CountDives(dives []dive.Dive) []BinCount {
	var entries []entry[K, int]
	for _, d := range dives {
		b.keys(d, func(k K) {
			entries = incrementCount(entries, k, b.cmp)
		})
	}

	res := make([]BinCount, 0, len(entries))
	for _, e := range entries {
		res = append(res, BinCount{Bin: b.bin(e.key), Count: e.payload})
	}
	return res
}

// staticName returns a name func for an untranslated catalog key.
func staticName(key string) func(*message.Printer) string {
	return func(p *message.Printer) string { return translate(p, key) }
}
