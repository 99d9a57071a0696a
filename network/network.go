package network

import (
	"fmt"
	"strconv"
)

// New validates valves and returns a Network that owns a deep copy of them.
//
// Implementation:
//   - Stage 1: check start and flow rates.
//   - Stage 2: check every tunnel (range, self-loop, repeat, distance).
//   - Stage 3: check that every tunnel has its reverse with the same distance.
//   - Stage 4: copy valves and index non-empty labels.
//
// Errors: ErrStartOutOfRange, ErrNegativeFlow, ErrBadTunnel, ErrAsymmetric,
// ErrDuplicateLabel (all wrapped with the offending valve).
//
// Complexity: O(V + E·d) where d is the maximum degree.
func New(start int, valves []Valve) (*Network, error) {
	n := len(valves)
	// Stage 1: start and flows
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d of %d valves", ErrStartOutOfRange, start, n)
	}
	for i := range valves {
		if valves[i].Flow < 0 {
			return nil, fmt.Errorf("%w: valve %s has %d", ErrNegativeFlow, labelOf(valves, i), valves[i].Flow)
		}
	}

	// Stage 2: tunnel shape
	seen := make(map[int]struct{})
	for i := range valves {
		clear(seen)
		for _, t := range valves[i].Tunnels {
			switch {
			case t.To < 0 || t.To >= n:
				return nil, fmt.Errorf("%w: valve %s → %d out of range", ErrBadTunnel, labelOf(valves, i), t.To)
			case t.To == i:
				return nil, fmt.Errorf("%w: valve %s loops to itself", ErrBadTunnel, labelOf(valves, i))
			case t.Dist <= 0:
				return nil, fmt.Errorf("%w: valve %s → %s distance %d", ErrBadTunnel,
					labelOf(valves, i), labelOf(valves, t.To), t.Dist)
			}
			if _, dup := seen[t.To]; dup {
				return nil, fmt.Errorf("%w: valve %s lists %s twice", ErrBadTunnel,
					labelOf(valves, i), labelOf(valves, t.To))
			}
			seen[t.To] = struct{}{}
		}
	}

	// Stage 3: symmetry
	for i := range valves {
		for _, t := range valves[i].Tunnels {
			back, ok := distance(valves[t.To].Tunnels, i)
			if !ok || back != t.Dist {
				return nil, fmt.Errorf("%w: %s → %s (%d) has no matching reverse", ErrAsymmetric,
					labelOf(valves, i), labelOf(valves, t.To), t.Dist)
			}
		}
	}

	// Stage 4: copy and index
	net := &Network{
		valves:  cloneValves(valves),
		start:   start,
		byLabel: make(map[string]int, n),
	}
	for i, v := range net.valves {
		if v.Label == "" {
			continue
		}
		if prev, dup := net.byLabel[v.Label]; dup {
			return nil, fmt.Errorf("%w: %q at %d and %d", ErrDuplicateLabel, v.Label, prev, i)
		}
		net.byLabel[v.Label] = i
	}

	return net, nil
}

// Len returns the number of valves.
func (n *Network) Len() int { return len(n.valves) }

// Start returns the index of the start valve.
func (n *Network) Start() int { return n.start }

// Valve returns a copy of valve i. Panics if i is out of range.
func (n *Network) Valve(i int) Valve {
	v := n.valves[i]
	v.Tunnels = append([]Tunnel(nil), v.Tunnels...)

	return v
}

// Flow returns the flow rate of valve i.
func (n *Network) Flow(i int) int { return n.valves[i].Flow }

// Tunnels returns the tunnels of valve i without copying. Read-only.
func (n *Network) Tunnels(i int) []Tunnel { return n.valves[i].Tunnels }

// Label returns the label of valve i, or "#i" when it has none.
func (n *Network) Label(i int) string { return labelOf(n.valves, i) }

// Index looks up a valve by label.
func (n *Network) Index(label string) (int, bool) {
	i, ok := n.byLabel[label]

	return i, ok
}

// Distance returns the length of the direct tunnel a–b, if there is one.
func (n *Network) Distance(a, b int) (int, bool) {
	return distance(n.valves[a].Tunnels, b)
}

// FlowValves returns the indices of valves with Flow > 0, ascending.
func (n *Network) FlowValves() []int {
	out := make([]int, 0, len(n.valves))
	for i, v := range n.valves {
		if v.Flow > 0 {
			out = append(out, i)
		}
	}

	return out
}

// EdgeCount returns the number of undirected tunnels.
func (n *Network) EdgeCount() int {
	total := 0
	for _, v := range n.valves {
		total += len(v.Tunnels)
	}

	return total / 2
}

// Valves returns a deep copy of all valves, in index order.
func (n *Network) Valves() []Valve { return cloneValves(n.valves) }

// Clone returns a deep copy of n.
func (n *Network) Clone() *Network {
	c := &Network{
		valves:  cloneValves(n.valves),
		start:   n.start,
		byLabel: make(map[string]int, len(n.byLabel)),
	}
	for k, v := range n.byLabel {
		c.byLabel[k] = v
	}

	return c
}

// distance scans ts for a tunnel to b.
func distance(ts []Tunnel, b int) (int, bool) {
	for _, t := range ts {
		if t.To == b {
			return t.Dist, true
		}
	}

	return 0, false
}

func cloneValves(vs []Valve) []Valve {
	out := make([]Valve, len(vs))
	for i, v := range vs {
		out[i] = Valve{Label: v.Label, Flow: v.Flow, Tunnels: append([]Tunnel(nil), v.Tunnels...)}
	}

	return out
}

func labelOf(vs []Valve, i int) string {
	if i >= 0 && i < len(vs) && vs[i].Label != "" {
		return vs[i].Label
	}

	return "#" + strconv.Itoa(i)
}
