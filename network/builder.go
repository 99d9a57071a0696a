package network

import "fmt"

// Builder assembles a Network by label. Valves get indices in AddValve order.
//
// Connect is idempotent per pair: reconnecting keeps the shorter distance on
// both ends, so the tunnel lists stay symmetric at all times.
type Builder struct {
	valves  []Valve
	byLabel map[string]int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{byLabel: make(map[string]int)}
}

// AddValve declares a valve and returns its index.
// Errors: ErrEmptyLabel, ErrDuplicateLabel, ErrNegativeFlow.
func (b *Builder) AddValve(label string, flow int) (int, error) {
	if label == "" {
		return 0, ErrEmptyLabel
	}
	if _, dup := b.byLabel[label]; dup {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}
	if flow < 0 {
		return 0, fmt.Errorf("%w: valve %s has %d", ErrNegativeFlow, label, flow)
	}
	i := len(b.valves)
	b.valves = append(b.valves, Valve{Label: label, Flow: flow})
	b.byLabel[label] = i

	return i, nil
}

// Has reports whether label has been declared.
func (b *Builder) Has(label string) bool {
	_, ok := b.byLabel[label]

	return ok
}

// Connect adds the tunnel a–c of length dist on both ends.
// Errors: ErrUnknownLabel, ErrBadTunnel (self-loop or dist ≤ 0).
func (b *Builder) Connect(a, c string, dist int) error {
	ia, ok := b.byLabel[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, a)
	}
	ic, ok := b.byLabel[c]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, c)
	}
	if ia == ic {
		return fmt.Errorf("%w: valve %s loops to itself", ErrBadTunnel, a)
	}
	if dist <= 0 {
		return fmt.Errorf("%w: %s → %s distance %d", ErrBadTunnel, a, c, dist)
	}
	b.link(ia, ic, dist)
	b.link(ic, ia, dist)

	return nil
}

// link records from→to, keeping the minimum if the tunnel already exists.
func (b *Builder) link(from, to, dist int) {
	ts := b.valves[from].Tunnels
	for k := range ts {
		if ts[k].To == to {
			ts[k].Dist = min(ts[k].Dist, dist)
			return
		}
	}
	b.valves[from].Tunnels = append(ts, Tunnel{To: to, Dist: dist})
}

// Build validates and returns the Network, using the valve labelled start.
// Errors: ErrNoStart, plus anything New reports.
func (b *Builder) Build(start string) (*Network, error) {
	s, ok := b.byLabel[start]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoStart, start)
	}

	return New(s, b.valves)
}
