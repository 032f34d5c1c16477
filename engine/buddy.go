package engine

import (
	"strings"

	"golang.org/x/text/message"

	"github.com/spektr-org/divestat/dive"
)

// ============================================================================
// BUDDIES — Buddies and dive guides, one bin per name
// ============================================================================

type buddyBin string

func (b buddyBin) Format(*message.Printer) string { return string(b) }
func (b buddyBin) Key() Key                       { return StringKey(string(b)) }

// divePeople splits the buddy and dive-guide fields on commas. Fragments are
// trimmed and empty ones dropped; repeated names are kept.
func divePeople(d dive.Dive) []string {
	var people []string
	for _, field := range []string{d.Buddy(), d.DiveMaster()} {
		for _, s := range strings.Split(field, ",") {
			if s = strings.TrimSpace(s); s != "" {
				people = append(people, s)
			}
		}
	}
	return people
}

var buddyBinner = multiBinner(nil, divePeople, strings.Compare,
	func(s string) Bin { return buddyBin(s) })

func newBuddyType() StatsType {
	return &staticType{
		kind:    Discrete,
		name:    "Buddies",
		binners: []Binner{buddyBinner},
	}
}
