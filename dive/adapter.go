package dive

import (
	"time"

	"github.com/spektr-org/divestat/units"
)

// ============================================================================
// DOMAIN ADAPTER — Dive access over arbitrary caller structs
// ============================================================================
//
// Usage:
//
//	adapter := dive.NewAdapter[LogEntry]().
//	    When(func(e LogEntry) time.Time { return e.Start }).
//	    MaxDepth(func(e LogEntry) units.Depth { return units.Depth{MM: e.DepthMM} })
//
//	dives := adapter.Bind(entries)
//	bins := binner.CountDives(dives)
//
// ============================================================================

// Adapter builds Dives from typed structs.
// Declare once, bind many times.
type Adapter[T any] struct {
	when       func(T) time.Time
	buddy      func(T) string
	diveMaster func(T) string
	maxDepth   func(T) units.Depth
	mode       func(T) Mode
}

// NewAdapter creates a new adapter for type T.
func NewAdapter[T any]() *Adapter[T] {
	return &Adapter[T]{}
}

// When registers the timestamp accessor.
func (a *Adapter[T]) When(fn func(T) time.Time) *Adapter[T] {
	a.when = fn
	return a
}

// Buddy registers the buddy-names accessor.
func (a *Adapter[T]) Buddy(fn func(T) string) *Adapter[T] {
	a.buddy = fn
	return a
}

// DiveMaster registers the dive-guide accessor.
func (a *Adapter[T]) DiveMaster(fn func(T) string) *Adapter[T] {
	a.diveMaster = fn
	return a
}

// MaxDepth registers the maximum-depth accessor.
func (a *Adapter[T]) MaxDepth(fn func(T) units.Depth) *Adapter[T] {
	a.maxDepth = fn
	return a
}

// Mode registers the dive-mode accessor.
func (a *Adapter[T]) Mode(fn func(T) Mode) *Adapter[T] {
	a.mode = fn
	return a
}

// Bind wraps every element of data as a Dive. Elements are referenced, not copied.
func (a *Adapter[T]) Bind(data []T) []Dive {
	out := make([]Dive, len(data))
	for i := range data {
		out[i] = &adapted[T]{item: &data[i], a: a}
	}
	return out
}

// adapted reads a typed struct via the adapter's accessors.
type adapted[T any] struct {
	item *T
	a    *Adapter[T]
}

func (d *adapted[T]) When() time.Time {
	if d.a.when == nil {
		return time.Time{}
	}
	return d.a.when(*d.item).UTC()
}

func (d *adapted[T]) Buddy() string {
	if d.a.buddy == nil {
		return ""
	}
	return d.a.buddy(*d.item)
}

func (d *adapted[T]) DiveMaster() string {
	if d.a.diveMaster == nil {
		return ""
	}
	return d.a.diveMaster(*d.item)
}

func (d *adapted[T]) MaxDepth() units.Depth {
	if d.a.maxDepth == nil {
		return units.Depth{}
	}
	return d.a.maxDepth(*d.item)
}

func (d *adapted[T]) Mode() Mode {
	if d.a.mode == nil {
		return OC
	}
	return d.a.mode(*d.item)
}
