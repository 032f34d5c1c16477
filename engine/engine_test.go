package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/divestat/dive"
	"github.com/spektr-org/divestat/units"
)

// ============================================================================
// FIXTURES
// ============================================================================

func mkDive(when string, buddy, guide string, depthMM int, mode dive.Mode) *dive.Record {
	t, err := time.Parse("2006-01-02", when)
	if err != nil {
		panic(err)
	}
	return &dive.Record{Time: t, BuddyNames: buddy, Guides: guide, Depth: units.Depth{MM: depthMM}, DiveMode: mode}
}

func dives(records ...*dive.Record) []dive.Dive {
	out := make([]dive.Dive, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}

var buddyNames = []string{"Alice", "Bob", "Carol", "Dave", " Eve ", ""}

// randomLog builds a reproducible dive log spanning several years, depths,
// modes (including invalid ones) and buddy combinations.
func randomLog(n int) []dive.Dive {
	rng := rand.New(rand.NewSource(42))
	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]dive.Dive, n)
	for i := range out {
		buddy := buddyNames[rng.Intn(len(buddyNames))]
		if rng.Intn(3) == 0 {
			buddy += ", " + buddyNames[rng.Intn(len(buddyNames))]
		}
		out[i] = &dive.Record{
			Time:       start.Add(time.Duration(rng.Int63n(int64(5 * 365 * 24 * time.Hour)))),
			BuddyNames: buddy,
			Guides:     buddyNames[rng.Intn(len(buddyNames))],
			Depth:      units.Depth{MM: rng.Intn(70000)},
			DiveMode:   dive.Mode(rng.Intn(int(dive.NumModes)+2) - 1),
		}
	}
	return out
}

// allBinners returns every binner of every category in both unit systems.
func allBinners() map[string]Binner {
	out := map[string]Binner{}
	for _, u := range []units.Length{units.Meters, units.Feet} {
		reg := NewRegistry(WithUnits(units.Fixed(u)))
		for _, typ := range reg.Types() {
			for _, b := range typ.Binners() {
				out[typ.Name(nil)+"/"+b.Name(nil)] = b
			}
		}
	}
	return out
}

// ============================================================================
// PROPERTIES
// ============================================================================

func TestCountConservationForSingleValuedBinners(t *testing.T) {
	log := randomLog(300)
	for name, b := range allBinners() {
		if name == "Buddies/N/D" {
			continue
		}
		total := 0
		for _, bc := range b.CountDives(log) {
			total += bc.Count
		}
		assert.Equal(t, len(log), total, name)
	}
}

func TestMembersAndCountsAgree(t *testing.T) {
	log := randomLog(300)
	for name, b := range allBinners() {
		withDives := b.BinDives(log)
		withCounts := b.CountDives(log)
		require.Len(t, withCounts, len(withDives), name)
		for i := range withDives {
			assert.True(t, EqualBins(withDives[i].Bin, withCounts[i].Bin), name)
			assert.Equal(t, len(withDives[i].Dives), withCounts[i].Count, name)
		}
	}
}

func TestBinsStrictlyAscending(t *testing.T) {
	log := randomLog(300)
	for name, b := range allBinners() {
		bins := b.CountDives(log)
		require.NotEmpty(t, bins, name)
		for i := 1; i < len(bins); i++ {
			assert.Negative(t, CompareBins(bins[i-1].Bin, bins[i].Bin), "%s: %s !< %s",
				name, bins[i-1].Bin.Format(nil), bins[i].Bin.Format(nil))
		}
	}
}

func TestEmptyInput(t *testing.T) {
	for name, b := range allBinners() {
		assert.Empty(t, b.BinDives(nil), name)
		assert.Empty(t, b.CountDives([]dive.Dive{}), name)
	}
}

func TestMembersAreCallerReferences(t *testing.T) {
	a := mkDive("2020-05-01", "", "", 12000, dive.OC)
	b := mkDive("2020-06-01", "", "", 14000, dive.OC)
	bins := dateYearBinner.BinDives(dives(a, b))
	require.Len(t, bins, 1)
	require.Len(t, bins[0].Dives, 2)
	assert.Same(t, a, bins[0].Dives[0])
	assert.Same(t, b, bins[0].Dives[1])
}

// ============================================================================
// BUDDIES
// ============================================================================

func TestBuddyExpansion(t *testing.T) {
	d := mkDive("2021-01-01", "Alice, Bob", "", 10000, dive.OC)
	bins := buddyBinner.BinDives(dives(d))
	require.Len(t, bins, 2)
	assert.Equal(t, "Alice", bins[0].Bin.Format(nil))
	assert.Equal(t, "Bob", bins[1].Bin.Format(nil))
	for _, bin := range bins {
		require.Len(t, bin.Dives, 1)
		assert.Same(t, d, bin.Dives[0])
	}
}

func TestBuddyAndGuideFieldsAreMerged(t *testing.T) {
	log := dives(
		mkDive("2021-01-01", "Bob", "Carol", 10000, dive.OC),
		mkDive("2021-01-02", " , Alice,,", "Bob ", 10000, dive.OC),
		mkDive("2021-01-03", "", "", 10000, dive.OC),
	)
	var labels []string
	var counts []int
	for _, bc := range buddyBinner.CountDives(log) {
		labels = append(labels, bc.Bin.Format(nil))
		counts = append(counts, bc.Count)
	}
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, labels)
	assert.Equal(t, []int{1, 2, 1}, counts)
}

func TestBuddyRepeatedNameCountsPerOccurrence(t *testing.T) {
	d := mkDive("2021-01-01", "Alice, Alice", "", 10000, dive.OC)
	bins := buddyBinner.BinDives(dives(d))
	require.Len(t, bins, 1)
	assert.Len(t, bins[0].Dives, 2)
	assert.Equal(t, 2, buddyBinner.CountDives(dives(d))[0].Count)
}

// ============================================================================
// DEPTH
// ============================================================================

func TestDepthQuantization(t *testing.T) {
	d := dives(mkDive("2021-01-01", "", "", 25000, dive.OC))
	tests := []struct {
		binner Binner
		label  string
	}{
		{metricDepthBinners[0], "25–30 m"},
		{metricDepthBinners[1], "20–30 m"},
		{metricDepthBinners[2], "20–40 m"},
		{imperialDepthBinners[0], "75–90 ft"}, // 82 ft
		{imperialDepthBinners[1], "60–90 ft"},
		{imperialDepthBinners[2], "60–120 ft"},
	}
	for _, tt := range tests {
		bins := tt.binner.CountDives(d)
		require.Len(t, bins, 1)
		assert.Equal(t, tt.label, bins[0].Bin.Format(nil))
	}
}

func TestDepthRangeBoundaries(t *testing.T) {
	log := dives(
		mkDive("2021-01-01", "", "", 9999, dive.OC),
		mkDive("2021-01-01", "", "", 10000, dive.OC),
		mkDive("2021-01-01", "", "", 0, dive.OC),
	)
	bins := metricDepthBinners[1].CountDives(log)
	require.Len(t, bins, 2)
	assert.Equal(t, "0–10 m", bins[0].Bin.Format(nil))
	assert.Equal(t, 2, bins[0].Count)
	assert.Equal(t, "10–20 m", bins[1].Bin.Format(nil))
}

// ============================================================================
// DATE
// ============================================================================

func TestDateGrouping(t *testing.T) {
	log := dives(
		mkDive("2021-03-15", "", "", 0, dive.OC),
		mkDive("2021-11-02", "", "", 0, dive.OC),
	)

	years := dateYearBinner.CountDives(log)
	require.Len(t, years, 1)
	assert.Equal(t, "2021", years[0].Bin.Format(nil))
	assert.Equal(t, 2, years[0].Count)

	months := dateMonthBinner.CountDives(log)
	require.Len(t, months, 2)
	assert.Equal(t, "Mar 2021", months[0].Bin.Format(nil))
	assert.Equal(t, "Nov 2021", months[1].Bin.Format(nil))

	quarters := dateQuarterBinner.CountDives(log)
	require.Len(t, quarters, 2)
	assert.Equal(t, "2021 Q1", quarters[0].Bin.Format(nil))
	assert.Equal(t, "2021 Q4", quarters[1].Bin.Format(nil))
}

func TestQuarterBoundaries(t *testing.T) {
	for month, want := range map[string]int{"01": 1, "03": 1, "04": 2, "06": 2, "07": 3, "09": 3, "10": 4, "12": 4} {
		q := diveQuarter(mkDive("2020-"+month+"-10", "", "", 0, dive.OC))
		assert.Equal(t, want, q.quarter, month)
		assert.Equal(t, 2020, q.year)
	}
}

func TestDateUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	d := &dive.Record{Time: time.Date(2020, 12, 31, 22, 0, 0, 0, loc)}
	bins := dateYearBinner.CountDives([]dive.Dive{d})
	require.Len(t, bins, 1)
	assert.Equal(t, "2021", bins[0].Bin.Format(nil))
}

// ============================================================================
// DIVE MODE
// ============================================================================

func TestDiveModeFallsBackToOpenCircuit(t *testing.T) {
	log := dives(
		mkDive("2021-01-01", "", "", 0, dive.CCR),
		mkDive("2021-01-01", "", "", 0, dive.Mode(17)),
		mkDive("2021-01-01", "", "", 0, dive.Mode(-3)),
		mkDive("2021-01-01", "", "", 0, dive.OC),
	)
	bins := diveModeBinner.CountDives(log)
	require.Len(t, bins, 2)
	assert.Equal(t, "Open circuit", bins[0].Bin.Format(nil))
	assert.Equal(t, 3, bins[0].Count)
	assert.Equal(t, "CCR", bins[1].Bin.Format(nil))
	assert.Equal(t, 1, bins[1].Count)
}
