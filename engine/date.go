package engine

import (
	"cmp"
	"strconv"
	"time"

	"golang.org/x/text/message"

	"github.com/spektr-org/divestat/dive"
)

// ============================================================================
// DATE — Dives by year, quarter or month (UTC)
// ============================================================================
// Calendar weeks are defined differently around the world and are left out.
// ============================================================================

type yearBin int

func (b yearBin) Format(*message.Printer) string { return strconv.Itoa(int(b)) }
func (b yearBin) Key() Key                       { return IntKey(int(b)) }

type yearQuarter struct {
	year, quarter int
}

func compareYearQuarter(a, b yearQuarter) int {
	if c := cmp.Compare(a.year, b.year); c != 0 {
		return c
	}
	return cmp.Compare(a.quarter, b.quarter)
}

type quarterBin yearQuarter

func (b quarterBin) Format(p *message.Printer) string {
	return sprintf(p, "%s Q%s", strconv.Itoa(b.year), strconv.Itoa(b.quarter))
}

func (b quarterBin) Key() Key { return PairKey(b.year, b.quarter) }

type yearMonth struct {
	year  int
	month time.Month
}

func compareYearMonth(a, b yearMonth) int {
	if c := cmp.Compare(a.year, b.year); c != 0 {
		return c
	}
	return cmp.Compare(a.month, b.month)
}

type monthBin yearMonth

func (b monthBin) Format(p *message.Printer) string {
	return sprintf(p, "%[1]s %[2]s", monthName(p, b.month), strconv.Itoa(b.year))
}

func (b monthBin) Key() Key { return PairKey(b.year, int(b.month)) }

// monthName returns the localized short month name.
func monthName(p *message.Printer, m time.Month) string {
	return translate(p, m.String()[:3])
}

func diveYear(d dive.Dive) int {
	return d.When().UTC().Year()
}

func diveQuarter(d dive.Dive) yearQuarter {
	t := d.When().UTC()
	return yearQuarter{year: t.Year(), quarter: (int(t.Month())-1)/3 + 1}
}

func diveMonth(d dive.Dive) yearMonth {
	t := d.When().UTC()
	return yearMonth{year: t.Year(), month: t.Month()}
}

var (
	dateYearBinner = singleBinner(staticName("Yearly"), diveYear, cmp.Compare[int],
		func(y int) Bin { return yearBin(y) })
	dateQuarterBinner = singleBinner(staticName("Quarterly"), diveQuarter, compareYearQuarter,
		func(q yearQuarter) Bin { return quarterBin(q) })
	dateMonthBinner = singleBinner(staticName("Monthly"), diveMonth, compareYearMonth,
		func(m yearMonth) Bin { return monthBin(m) })
)

func newDateType() StatsType {
	return &staticType{
		kind:    Discrete,
		name:    "Date",
		binners: []Binner{dateYearBinner, dateQuarterBinner, dateMonthBinner},
	}
}
