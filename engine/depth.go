package engine

import (
	"cmp"
	"math"
	"strconv"

	"golang.org/x/text/message"

	"github.com/spektr-org/divestat/dive"
	"github.com/spektr-org/divestat/units"
)

// ============================================================================
// DEPTH — Maximum depth in 5, 10, 20 m or 15, 30, 60 ft ranges
// ============================================================================

// depthBin is range index (low = index*size) of a fixed-size depth range.
type depthBin struct {
	index int
	size  int
	unit  units.Length
}

func (b depthBin) Format(p *message.Printer) string {
	low, high := strconv.Itoa(b.index*b.size), strconv.Itoa((b.index+1)*b.size)
	if b.unit == units.Feet {
		return sprintf(p, "%s–%s ft", low, high)
	}
	return sprintf(p, "%s–%s m", low, high)
}

func (b depthBin) Key() Key { return IntKey(b.index) }

func meterBinner(size int) Binner {
	return singleBinner(
		func(p *message.Printer) string { return sprintf(p, "in %s m steps", strconv.Itoa(size)) },
		func(d dive.Dive) int { return d.MaxDepth().MM / 1000 / size },
		cmp.Compare[int],
		func(idx int) Bin { return depthBin{index: idx, size: size, unit: units.Meters} },
	)
}

func feetBinner(size int) Binner {
	return singleBinner(
		func(p *message.Printer) string { return sprintf(p, "in %s ft steps", strconv.Itoa(size)) },
		func(d dive.Dive) int { return int(math.RoundToEven(units.MMToFeet(d.MaxDepth().MM))) / size },
		cmp.Compare[int],
		func(idx int) Bin { return depthBin{index: idx, size: size, unit: units.Feet} },
	)
}

var (
	metricDepthBinners   = []Binner{meterBinner(5), meterBinner(10), meterBinner(20)}
	imperialDepthBinners = []Binner{feetBinner(15), feetBinner(30), feetBinner(60)}
)

// depthType picks metric or imperial binners from the unit preference each
// time its binners are requested.
type depthType struct {
	units units.Source
}

func (t *depthType) Kind() Kind                     { return Numeric }
func (t *depthType) Name(p *message.Printer) string { return translate(p, "Depth") }

func (t *depthType) Binners() []Binner {
	if t.units != nil && t.units.LengthUnit() == units.Feet {
		return append([]Binner(nil), imperialDepthBinners...)
	}
	return append([]Binner(nil), metricDepthBinners...)
}
