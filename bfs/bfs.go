// Package bfs provides breadth-first search over a network.Network,
// returning hop distances, parent links, and visit order.
//
// BFS explores valves in increasing hop count from a start valve,
// with an optional visit hook, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/valvenet/network"
)

// queueItem pairs a valve with its BFS depth.
type queueItem struct {
	valve int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	net     *network.Network
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on n starting from start,
// applying any number of functional Options.
// Tunnel lengths are ignored: depth counts tunnels, which equals minutes on
// a freshly parsed network.
// Returns ErrNetworkNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(n *network.Network, start int, opts ...Option) (*Result, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start valve
	size := n.Len()
	if start < 0 || start >= size {
		return nil, fmt.Errorf("%w: %d of %d", ErrStartOutOfRange, start, size)
	}

	// Prepare walker
	w := &walker{
		net:     n,
		opts:    o,
		queue:   make([]queueItem, 0, size),
		visited: make([]bool, size),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, size),
			Depth:  make([]int, size),
			Parent: make([]int, size),
		},
	}
	for i := 0; i < size; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = -1
	}

	// Seed queue with start valve (no parent)
	w.enqueue(start, 0, -1)
	// Main loop
	return w.res, w.loop()
}

// Distances returns the hop distance from start to every valve, Unreached
// where there is no path.
func Distances(n *network.Network, start int) ([]int, error) {
	res, err := BFS(n, start)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// enqueue marks valve visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(valve, d, parent int) {
	w.visited[valve] = true
	w.res.Depth[valve] = d
	w.res.Parent[valve] = parent
	w.queue = append(w.queue, queueItem{valve: valve, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.valve)
		if err := w.opts.OnVisit(item.valve, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", w.net.Label(item.valve), err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, t := range w.net.Tunnels(item.valve) {
		if !w.opts.FilterNeighbor(item.valve, t.To) {
			continue
		}
		// first time seen?
		if !w.visited[t.To] {
			w.enqueue(t.To, nextDepth, item.valve)
		}
	}
}
