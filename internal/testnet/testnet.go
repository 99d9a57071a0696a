// Package testnet provides shared fixture networks for tests across the module.
package testnet

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/valvenet/network"
)

// ReferenceInput is the canonical ten-valve example. Its answers are 1651
// (one actor, 30 minutes) and 1707 (two actors, 26 minutes).
const ReferenceInput = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// Reference answers for ReferenceInput.
const (
	ReferenceSingle = 1651
	ReferenceDual   = 1707
)

// Reference parses ReferenceInput, panicking on failure.
func Reference() *network.Network {
	n, err := network.Parse(strings.NewReader(ReferenceInput))
	if err != nil {
		panic(fmt.Sprintf("testnet: reference input: %v", err))
	}

	return n
}

// Lone returns a network holding only the zero-flow start valve.
func Lone() *network.Network {
	b := network.NewBuilder()
	_, _ = b.AddValve(network.StartLabel, 0)
	n, err := b.Build(network.StartLabel)
	if err != nil {
		panic(fmt.Sprintf("testnet: lone: %v", err))
	}

	return n
}

// Random builds a connected unit-distance network with n valves (n ≥ 1).
// Valve 0 is the zero-flow start "AA"; roughly half of the others get a flow
// in [1, 25]. A spanning chain guarantees connectivity, then extra random
// tunnels are added. The generator is seeded, so output is reproducible.
func Random(seed int64, n, extra int) *network.Network {
	r := rand.New(rand.NewSource(seed))
	b := network.NewBuilder()
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = label(i)
		flow := 0
		if i > 0 && r.Intn(2) == 0 {
			flow = 1 + r.Intn(25)
		}
		if _, err := b.AddValve(labels[i], flow); err != nil {
			panic(err)
		}
	}
	for i := 1; i < n; i++ {
		// attach each valve to some earlier valve, so the graph is a tree plus extras
		if err := b.Connect(labels[i], labels[r.Intn(i)], 1); err != nil {
			panic(err)
		}
	}
	for k := 0; k < extra && n > 1; k++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if err := b.Connect(labels[u], labels[v], 1); err != nil {
			panic(err)
		}
	}
	net, err := b.Build(labels[0])
	if err != nil {
		panic(err)
	}

	return net
}

// label encodes i as a two-letter room name; 0 is "AA".
func label(i int) string {
	return string([]byte{byte('A' + i/26%26), byte('A' + i%26)})
}
