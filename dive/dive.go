package dive

import (
	"strings"
	"time"

	"github.com/spektr-org/divestat/units"
)

// ============================================================================
// DIVE — Read-only record contract consumed by the statistics engine
// ============================================================================
// The engine never owns dives. It reads through this interface and keeps
// references only for the lifetime of one grouping result.
// ============================================================================

// Dive is a logged dive as seen by the statistics engine.
type Dive interface {
	When() time.Time // UTC
	Buddy() string
	DiveMaster() string
	MaxDepth() units.Depth
	Mode() Mode
}

// Mode is the breathing configuration of a dive.
type Mode int

const (
	OC Mode = iota
	CCR
	PSCR
	Freedive
	NumModes
)

var modeLabels = [NumModes]string{"Open circuit", "CCR", "pSCR", "Freedive"}

// Valid reports whether m is a known dive mode.
func (m Mode) Valid() bool { return m >= 0 && m < NumModes }

// Label returns the untranslated UI label. Invalid modes report the OC label.
func (m Mode) Label() string {
	if !m.Valid() {
		return modeLabels[OC]
	}
	return modeLabels[m]
}

func (m Mode) String() string { return m.Label() }

// LookupMode maps a mode name to a Mode and reports whether it was recognised.
func LookupMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oc", "open circuit", "opencircuit":
		return OC, true
	case "ccr", "closed circuit", "rebreather":
		return CCR, true
	case "pscr", "semi-closed", "scr":
		return PSCR, true
	case "freedive", "free dive", "freediving", "apnea":
		return Freedive, true
	}
	return OC, false
}

// ParseMode maps free text to a Mode. Unknown text maps to OC.
func ParseMode(s string) Mode {
	m, _ := LookupMode(s)
	return m
}

// ============================================================================
// RECORD — concrete Dive used by CSV import and tests
// ============================================================================

// Record is an immutable Dive value.
type Record struct {
	Time       time.Time
	BuddyNames string
	Guides     string
	Depth      units.Depth
	DiveMode   Mode
}

func (r *Record) When() time.Time       { return r.Time.UTC() }
func (r *Record) Buddy() string         { return r.BuddyNames }
func (r *Record) DiveMaster() string    { return r.Guides }
func (r *Record) MaxDepth() units.Depth { return r.Depth }
func (r *Record) Mode() Mode            { return r.DiveMode }

// Dives converts a record slice to a Dive slice without copying records.
func Dives(records []Record) []Dive {
	out := make([]Dive, len(records))
	for i := range records {
		out[i] = &records[i]
	}
	return out
}
