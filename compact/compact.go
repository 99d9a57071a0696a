package compact

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/valveset"
)

// Compact returns the network restricted to the start valve and all flow
// valves, with shortest-path tunnel lengths between them.
//
// Implementation:
//   - Stage 1: check that the flow valves fit in a valveset.Set.
//   - Stage 2: copy the adjacency into per-valve maps.
//   - Stage 3: eliminate zero-flow valves (except the start) in index order.
//   - Stage 4: re-index survivors and build the new Network.
//
// Errors: ErrNilNetwork; valveset.ErrCapacityExceeded (wrapped) when there are
// more than valveset.Capacity flow valves.
func Compact(n *network.Network, opts ...Option) (*network.Network, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	size, start := n.Len(), n.Start()
	keep := func(v int) bool { return v == start || n.Flow(v) > 0 }

	// Stage 1: capacity
	if _, err := valveset.NewIndex(size, func(v int) bool { return n.Flow(v) > 0 }); err != nil {
		return nil, fmt.Errorf("compact: %w", err)
	}

	// Stage 2: adjacency copy; adj[v][u] = tunnel length v–u
	adj := make([]map[int]int, size)
	for v := 0; v < size; v++ {
		ts := n.Tunnels(v)
		adj[v] = make(map[int]int, len(ts))
		for _, t := range ts {
			adj[v][t.To] = t.Dist
		}
	}

	// Stage 3: eliminate
	for v := 0; v < size; v++ {
		if keep(v) {
			continue
		}
		nbrs := sortedKeys(adj[v])
		for _, a := range nbrs {
			delete(adj[a], v)
		}
		for i, a := range nbrs {
			for _, b := range nbrs[i+1:] {
				relax(adj, a, b, adj[v][a]+adj[v][b])
			}
		}
		adj[v] = nil
		o.OnEliminate(n.Label(v), len(nbrs))
	}

	// Stage 4: re-index
	newIndex := make([]int, size)
	var survivors []int
	for v := 0; v < size; v++ {
		newIndex[v] = -1
		if keep(v) {
			newIndex[v] = len(survivors)
			survivors = append(survivors, v)
		}
	}
	valves := make([]network.Valve, len(survivors))
	for i, v := range survivors {
		valves[i] = network.Valve{Label: n.Valve(v).Label, Flow: n.Flow(v)}
		for _, u := range sortedKeys(adj[v]) {
			valves[i].Tunnels = append(valves[i].Tunnels, network.Tunnel{To: newIndex[u], Dist: adj[v][u]})
		}
	}

	return network.New(newIndex[start], valves)
}

// relax sets the a–b tunnel to d unless an equal or shorter one exists.
func relax(adj []map[int]int, a, b, d int) {
	if cur, ok := adj[a][b]; ok && cur <= d {
		return
	}
	adj[a][b] = d
	adj[b][a] = d
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
