package engine

import (
	"cmp"

	"golang.org/x/text/message"

	"github.com/spektr-org/divestat/dive"
)

// Dive mode: out-of-range modes are counted as open circuit.

type modeBin dive.Mode

func (b modeBin) Format(p *message.Printer) string { return translate(p, dive.Mode(b).Label()) }
func (b modeBin) Key() Key                         { return EnumKey(int(b)) }

func diveModeKey(d dive.Dive) dive.Mode {
	if m := d.Mode(); m.Valid() {
		return m
	}
	return dive.OC
}

var diveModeBinner = singleBinner(nil, diveModeKey, cmp.Compare[dive.Mode],
	func(m dive.Mode) Bin { return modeBin(m) })

func newDiveModeType() StatsType {
	return &staticType{
		kind:    Discrete,
		name:    "Dive mode",
		binners: []Binner{diveModeBinner},
	}
}
