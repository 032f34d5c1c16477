package engine

import (
	"slices"

	"github.com/spektr-org/divestat/dive"
)

// ============================================================================
// GROUPING — Order-preserving insert-or-merge
// ============================================================================
// Bins are kept in a slice sorted by key. A new key is inserted at its
// position, an existing key has the contribution merged into its payload.
// Bin cardinality is bounded by the statistic (months, depth ranges, modes,
// buddy names), so the O(m) shift on insert is cheap and no sort pass is
// needed at the end.
// ============================================================================

type entry[K, P any] struct {
	key     K
	payload P
}

// insertOrMerge adds key to entries, which must be sorted ascending by cmp
// with unique keys. The result keeps that invariant.
func insertOrMerge[K, P any](entries []entry[K, P], key K, cmp func(K, K) int, merge func(*P), init func() P) []entry[K, P] {
	i, found := slices.BinarySearchFunc(entries, key, func(e entry[K, P], k K) int {
		return cmp(e.key, k)
	})
	if found {
		merge(&entries[i].payload)
		return entries
	}
	return slices.Insert(entries, i, entry[K, P]{key: key, payload: init()})
}

func addDive[K any](entries []entry[K, []dive.Dive], key K, d dive.Dive, cmp func(K, K) int) []entry[K, []dive.Dive] {
	return insertOrMerge(entries, key, cmp,
		func(dives *[]dive.Dive) { *dives = append(*dives, d) },
		func() []dive.Dive { return []dive.Dive{d} })
}

func incrementCount[K any](entries []entry[K, int], key K, cmp func(K, K) int) []entry[K, int] {
	return insertOrMerge(entries, key, cmp,
		func(count *int) { *count++ },
		func() int { return 1 })
}
