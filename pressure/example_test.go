package pressure_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/pressure"
)

// ExampleSolve parses the canonical example and prints both answers.
func ExampleSolve() {
	in := `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II`

	n, err := network.Parse(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rep, err := pressure.Solve(n)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Part one:", rep.PartOne)
	fmt.Println("Part two:", rep.PartTwo)
	// Output:
	// Part one: 1651
	// Part two: 1707
}
