package explore

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/valveset"
)

// unset marks memo slots no visit has reached yet.
const unset = -1

// memoKey identifies states that differ only in time left and pressure.
type memoKey struct {
	valve  int
	opened valveset.Set
}

// explorer encapsulates mutable search state.
type explorer struct {
	net    *network.Network
	opts   Options
	budget int
	queue  deque.Deque[State]
	memo   map[memoKey][]int // best pressure by remaining time
	res    *Result
}

// Explore runs the pruned worklist search over n with the given time budget.
//
// Implementation:
//   - Stage 1: validate input and map flow valves onto Set bits.
//   - Stage 2: seed the queue with (start, ∅, budget, 0).
//   - Stage 3: pop, prune or record, expand; until the queue is empty.
//
// Returns ErrNilNetwork, ErrNegativeBudget, or a wrapped
// valveset.ErrCapacityExceeded.
func Explore(n *network.Network, budget int, opts ...Option) (*Result, error) {
	// Stage 1: validation
	if n == nil {
		return nil, ErrNilNetwork
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	idx, err := valveset.NewIndex(n.Len(), func(v int) bool { return n.Flow(v) > 0 })
	if err != nil {
		return nil, fmt.Errorf("explore: %w", err)
	}

	e := &explorer{
		net:    n,
		opts:   o,
		budget: budget,
		memo:   make(map[memoKey][]int),
		res: &Result{
			Budget: budget,
			BySet:  make(map[valveset.Set]int),
			Index:  idx,
		},
	}

	// Stage 2: seed
	e.queue.PushBack(State{Valve: n.Start(), Opened: valveset.Empty, TimeLeft: budget})

	// Stage 3: drain
	e.loop()
	e.res.Stats.Keys = len(e.memo)

	return e.res, nil
}

// loop processes the worklist to exhaustion.
func (e *explorer) loop() {
	for e.queue.Len() > 0 {
		cur := e.queue.PopFront()
		e.res.Stats.Popped++

		if e.dominated(cur) {
			e.res.Stats.Pruned++
			e.opts.OnPrune(cur)
			continue
		}

		e.record(cur)
		e.opts.OnVisit(cur)
		e.res.Stats.Expanded++
		e.expand(cur)
	}
}

// dominated reports whether a previous visit to cur's key already reached at
// least cur.Pressure with cur.TimeLeft minutes left. If not, it raises the
// key's best pressure for every remaining time up to cur.TimeLeft.
func (e *explorer) dominated(cur State) bool {
	k := memoKey{valve: cur.Valve, opened: cur.Opened}
	best, seen := e.memo[k]
	if !seen {
		best = newMemo(e.budget)
		e.memo[k] = best
	}
	if best[cur.TimeLeft] >= cur.Pressure {
		return true
	}
	for t := 0; t <= cur.TimeLeft; t++ {
		if cur.Pressure > best[t] {
			best[t] = cur.Pressure
		}
	}

	return false
}

// newMemo returns a best-by-time array with every slot unset. Pressures are
// never negative, so unset slots cannot prune.
func newMemo(budget int) []int {
	best := make([]int, budget+1)
	for t := range best {
		best[t] = unset
	}

	return best
}

// record treats cur as a terminal candidate: idling until the deadline keeps
// its pressure.
func (e *explorer) record(cur State) {
	if cur.Pressure > e.res.Best {
		e.res.Best = cur.Pressure
	}
	if p, ok := e.res.BySet[cur.Opened]; !ok || cur.Pressure > p {
		e.res.BySet[cur.Opened] = cur.Pressure
	}
}

// expand pushes every successor of cur.
func (e *explorer) expand(cur State) {
	// open the valve in this room
	if bit, ok := e.res.Index.Bit(cur.Valve); ok && cur.TimeLeft > 0 && !cur.Opened.Has(bit) {
		e.queue.PushBack(State{
			Valve:    cur.Valve,
			Opened:   cur.Opened.With(bit),
			TimeLeft: cur.TimeLeft - 1,
			Pressure: cur.Pressure + e.net.Flow(cur.Valve)*(cur.TimeLeft-1),
		})
	}

	// walk to a neighbor, if there is time to do anything there
	for _, t := range e.net.Tunnels(cur.Valve) {
		if cur.TimeLeft > t.Dist {
			e.queue.PushBack(State{
				Valve:    t.To,
				Opened:   cur.Opened,
				TimeLeft: cur.TimeLeft - t.Dist,
				Pressure: cur.Pressure,
			})
		}
	}
}
