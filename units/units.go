package units

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// ============================================================================
// UNITS — Depth quantity and the user's preferred length unit
// ============================================================================

// feetPerMM converts millimetres to feet.
const feetPerMM = 0.00328084

// Depth is a depth in millimetres.
type Depth struct {
	MM int
}

// Meters returns the depth in metres.
func (d Depth) Meters() float64 { return float64(d.MM) / 1000 }

// Feet returns the depth in feet.
func (d Depth) Feet() float64 { return MMToFeet(d.MM) }

// MMToFeet converts a millimetre value to feet.
func MMToFeet(mm int) float64 {
	return float64(mm) * feetPerMM
}

// FeetToMM converts a value in feet to whole millimetres.
func FeetToMM(ft float64) int {
	return int(math.Round(ft / feetPerMM))
}

// Length is a unit system for lengths.
type Length int

const (
	Meters Length = iota
	Feet
)

// ErrUnknownLength is returned by ParseLength for unrecognised input.
var ErrUnknownLength = errors.New("unknown length unit")

func (l Length) String() string {
	if l == Feet {
		return "feet"
	}
	return "meters"
}

// ParseLength maps user input such as "m", "metric" or "ft" to a Length.
func ParseLength(s string) (Length, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "meter", "meters", "metre", "metres", "metric":
		return Meters, nil
	case "ft", "foot", "feet", "imperial":
		return Feet, nil
	}
	return Meters, errors.Wrapf(ErrUnknownLength, "%q", s)
}

// Source provides the preferred length unit. It is consulted every time a
// category builds its binner list, so implementations may change over time.
type Source interface {
	LengthUnit() Length
}

// Fixed is a Source that always returns the same unit.
type Fixed Length

// LengthUnit implements Source.
func (f Fixed) LengthUnit() Length { return Length(f) }
