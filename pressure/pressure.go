package pressure

import (
	"fmt"

	"github.com/katalvlaran/valvenet/compact"
	"github.com/katalvlaran/valvenet/explore"
	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/valveset"
)

// Time budgets of the two puzzle variants, in minutes.
const (
	SingleMinutes = 30
	DualMinutes   = 26
)

// Report carries both answers.
type Report struct {
	PartOne int
	PartTwo int
}

// SolveSingle returns the most pressure one actor can release in minutes.
func SolveSingle(n *network.Network, minutes int, opts ...Option) (int, error) {
	res, err := run(n, minutes, opts)
	if err != nil {
		return 0, err
	}

	return res.Best, nil
}

// SolveDual returns the most pressure two actors, each working minutes and
// opening disjoint valve sets, can release together.
func SolveDual(n *network.Network, minutes int, opts ...Option) (int, error) {
	res, err := run(n, minutes, opts)
	if err != nil {
		return 0, err
	}

	return Combine(res.BySet), nil
}

// PartOne is SolveSingle with SingleMinutes.
func PartOne(n *network.Network) (int, error) { return SolveSingle(n, SingleMinutes) }

// PartTwo is SolveDual with DualMinutes.
func PartTwo(n *network.Network) (int, error) { return SolveDual(n, DualMinutes) }

// Solve computes both parts with independent explorations.
func Solve(n *network.Network) (Report, error) {
	one, err := PartOne(n)
	if err != nil {
		return Report{}, err
	}
	two, err := PartTwo(n)
	if err != nil {
		return Report{}, err
	}

	return Report{PartOne: one, PartTwo: two}, nil
}

// Combine returns the best pa+pb over all pairs of entries in bySet whose sets
// are disjoint. An entry may pair with itself only if its set is empty.
// Returns 0 for an empty map.
//
// Complexity: O(k²) for k entries. Entries are visited in descending pressure
// order, which lets the inner loop stop once no partner can improve the total;
// the result is the same as the full quadratic scan.
func Combine(bySet map[valveset.Set]int) int {
	entries := explore.EntriesOf(bySet)
	best := 0
	for i, a := range entries {
		if 2*a.Pressure <= best {
			break // every later pair sums to at most 2*a.Pressure
		}
		for _, b := range entries[i:] {
			if a.Pressure+b.Pressure <= best {
				break
			}
			if a.Opened.Disjoint(b.Opened) {
				best = a.Pressure + b.Pressure
				break
			}
		}
	}

	return best
}

func run(n *network.Network, minutes int, opts []Option) (*explore.Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c, err := compact.Compact(n, o.Compact...)
	if err != nil {
		return nil, fmt.Errorf("pressure: %w", err)
	}
	o.OnCompacted(c)
	res, err := explore.Explore(c, minutes, o.Explore...)
	if err != nil {
		return nil, fmt.Errorf("pressure: %w", err)
	}

	return res, nil
}
