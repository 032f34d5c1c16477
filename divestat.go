// Package divestat provides a statistical binning engine for dive logs.
//
// Usage:
//
//	import "github.com/spektr-org/divestat/engine"
//
//	reg := engine.NewRegistry(engine.WithUnits(units.Fixed(units.Meters)))
//	depth, _ := reg.Type(1)
//	bins := engine.GetBinner(depth, 1).CountDives(dives)
//
// The engine takes a list of dives (anything implementing dive.Dive) and
// groups them into ordered, uniquely keyed bins: by date, depth range,
// dive mode or buddy. A category exposes one or more binners of different
// granularity; each binner produces either the member dives per bin or
// just a count.
//
// Labels are localized through golang.org/x/text/message, see package i18n.
// The engine never retains the dive list and never mutates it.
package divestat
