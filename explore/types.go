package explore

import (
	"errors"
	"slices"

	"github.com/katalvlaran/valvenet/valveset"
)

// Sentinel errors for exploration.
var (
	// ErrNilNetwork is returned if a nil network pointer is passed.
	ErrNilNetwork = errors.New("explore: network is nil")

	// ErrNegativeBudget is returned for a time budget below zero.
	ErrNegativeBudget = errors.New("explore: time budget is negative")
)

// State is one configuration in the search.
type State struct {
	// Valve is the index of the room the actor stands in.
	Valve int

	// Opened holds the bits (see Result.Index) of the valves already open.
	Opened valveset.Set

	// TimeLeft is the number of minutes remaining.
	TimeLeft int

	// Pressure is the total pressure the open valves will release by the deadline.
	Pressure int
}

// Option configures Explore via functional arguments.
type Option func(*Options)

// Options holds the hooks Explore calls while it works.
type Options struct {
	// OnVisit is called for every state that is expanded.
	OnVisit func(State)

	// OnPrune is called for every state dropped by dominance pruning.
	OnPrune func(State)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(State) {},
		OnPrune: func(State) {},
	}
}

// WithOnVisit registers a callback for expanded states.
func WithOnVisit(fn func(State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnPrune registers a callback for pruned states.
func WithOnPrune(fn func(State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}

// Stats counts worklist activity.
type Stats struct {
	Popped   int // states taken off the worklist
	Pruned   int // states dropped by dominance pruning
	Expanded int // states whose successors were generated
	Keys     int // distinct (valve, opened-set) keys seen
}

// Result is the outcome of one exploration.
type Result struct {
	// Budget is the time budget the search ran with.
	Budget int

	// Best is the highest pressure reachable within Budget.
	Best int

	// BySet maps every opened-set reached to the highest pressure achieved
	// with exactly that set open, regardless of final valve or time left.
	BySet map[valveset.Set]int

	// Index maps valve indices of the explored network to Set bits.
	Index *valveset.Index

	// Stats describes the work done.
	Stats Stats
}

// Entry is one (opened-set, pressure) pair from Result.BySet.
type Entry struct {
	Opened   valveset.Set
	Pressure int
}

// Entries returns BySet as a slice ordered by descending pressure, ties by
// ascending set value.
func (r *Result) Entries() []Entry { return EntriesOf(r.BySet) }

// EntriesOf flattens a best-by-set map in the order described on Entries.
func EntriesOf(bySet map[valveset.Set]int) []Entry {
	out := make([]Entry, 0, len(bySet))
	for s, p := range bySet {
		out = append(out, Entry{Opened: s, Pressure: p})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if a.Pressure != b.Pressure {
			return b.Pressure - a.Pressure
		}
		switch {
		case a.Opened < b.Opened:
			return -1
		case a.Opened > b.Opened:
			return 1
		}
		return 0
	})

	return out
}

// OpenedValves translates s into valve indices of the explored network.
func (r *Result) OpenedValves(s valveset.Set) []int {
	return r.Index.Valves(s)
}
