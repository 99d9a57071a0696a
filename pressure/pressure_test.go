package pressure_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/compact"
	"github.com/katalvlaran/valvenet/explore"
	"github.com/katalvlaran/valvenet/internal/testnet"
	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/pressure"
	"github.com/katalvlaran/valvenet/valveset"
)

// exhaustive is the plain quadratic pairing Combine must agree with.
func exhaustive(bySet map[valveset.Set]int) int {
	best := 0
	for sa, pa := range bySet {
		for sb, pb := range bySet {
			if sa.Disjoint(sb) && pa+pb > best {
				best = pa + pb
			}
		}
	}

	return best
}

// TestSolve_Reference checks both canonical answers.
func TestSolve_Reference(t *testing.T) {
	n := testnet.Reference()

	one, err := pressure.PartOne(n)
	require.NoError(t, err)
	assert.Equal(t, testnet.ReferenceSingle, one)

	two, err := pressure.PartTwo(n)
	require.NoError(t, err)
	assert.Equal(t, testnet.ReferenceDual, two)

	rep, err := pressure.Solve(n)
	require.NoError(t, err)
	assert.Equal(t, pressure.Report{PartOne: 1651, PartTwo: 1707}, rep)
}

// TestSolve_Degenerate returns zero for the start-only network at any budget.
func TestSolve_Degenerate(t *testing.T) {
	n := testnet.Lone()
	for _, minutes := range []int{0, 1, 26, 30, 100} {
		one, err := pressure.SolveSingle(n, minutes)
		require.NoError(t, err)
		assert.Zero(t, one)
		two, err := pressure.SolveDual(n, minutes)
		require.NoError(t, err)
		assert.Zero(t, two)
	}
}

// TestSolve_DualAtLeastSingle: one actor idling reduces the dual case to the single one.
func TestSolve_DualAtLeastSingle(t *testing.T) {
	nets := []*network.Network{testnet.Reference()}
	for seed := int64(1); seed <= 5; seed++ {
		nets = append(nets, testnet.Random(seed, 16, 6))
	}
	for i, n := range nets {
		for _, minutes := range []int{0, 5, 12, 20} {
			one, err := pressure.SolveSingle(n, minutes)
			require.NoError(t, err)
			two, err := pressure.SolveDual(n, minutes)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, two, one, "net %d, %d minutes", i, minutes)
		}
	}
}

// TestSolve_SingleMonotone: a longer budget never yields less pressure.
func TestSolve_SingleMonotone(t *testing.T) {
	n := testnet.Reference()
	prev := 0
	for minutes := 0; minutes <= pressure.SingleMinutes; minutes++ {
		got, err := pressure.SolveSingle(n, minutes)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "minutes %d", minutes)
		prev = got
	}
}

// TestSolve_DoesNotMutateInput runs both parts and compares the network before and after.
func TestSolve_DoesNotMutateInput(t *testing.T) {
	n := testnet.Reference()
	before := n.Valves()
	_, err := pressure.Solve(n)
	require.NoError(t, err)
	assert.Equal(t, before, n.Valves())
}

// TestSolve_Errors propagates compaction and exploration failures.
func TestSolve_Errors(t *testing.T) {
	_, err := pressure.SolveSingle(nil, 30)
	assert.ErrorIs(t, err, compact.ErrNilNetwork)

	_, err = pressure.SolveDual(testnet.Reference(), -1)
	assert.ErrorIs(t, err, explore.ErrNegativeBudget)

	valves := make([]network.Valve, valveset.Capacity+2)
	for i := 1; i < len(valves); i++ {
		valves[i] = network.Valve{Flow: i, Tunnels: []network.Tunnel{{To: 0, Dist: 1}}}
		valves[0].Tunnels = append(valves[0].Tunnels, network.Tunnel{To: i, Dist: 1})
	}
	n, err := network.New(0, valves)
	require.NoError(t, err)
	_, err = pressure.Solve(n)
	assert.ErrorIs(t, err, valveset.ErrCapacityExceeded)
}

// TestCombine covers the pairing rule directly.
func TestCombine(t *testing.T) {
	s := func(bits ...int) valveset.Set {
		set, err := valveset.FromBits(bits...)
		require.NoError(t, err)
		return set
	}
	cases := []struct {
		name  string
		bySet map[valveset.Set]int
		want  int
	}{
		{"empty map", map[valveset.Set]int{}, 0},
		{"only empty set", map[valveset.Set]int{valveset.Empty: 0}, 0},
		{"single set pairs with empty", map[valveset.Set]int{valveset.Empty: 0, s(0): 10}, 10},
		{"single set cannot pair with itself", map[valveset.Set]int{s(0): 10}, 0},
		{"disjoint pair", map[valveset.Set]int{s(0): 10, s(1): 7, s(0, 1): 15}, 17},
		{"overlap rejected", map[valveset.Set]int{s(0, 1): 30, s(1, 2): 29, s(3): 1}, 31},
		{"best pair is not the best single", map[valveset.Set]int{
			s(0, 1, 2): 100, s(0, 3): 60, s(1, 2): 55, s(3): 10,
		}, 115},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pressure.Combine(tc.bySet))
			assert.Equal(t, tc.want, exhaustive(tc.bySet))
		})
	}
}

// TestCombine_TrueMaximum checks, on real explorations, that Combine equals the
// exhaustive scan and that no disjoint pair exceeds it.
func TestCombine_TrueMaximum(t *testing.T) {
	nets := []*network.Network{testnet.Reference()}
	for seed := int64(20); seed < 24; seed++ {
		nets = append(nets, testnet.Random(seed, 18, 8))
	}
	for i, n := range nets {
		t.Run(fmt.Sprintf("net-%d", i), func(t *testing.T) {
			c, err := compact.Compact(n)
			require.NoError(t, err)
			res, err := explore.Explore(c, pressure.DualMinutes)
			require.NoError(t, err)

			got := pressure.Combine(res.BySet)
			assert.Equal(t, exhaustive(res.BySet), got)

			dual, err := pressure.SolveDual(n, pressure.DualMinutes)
			require.NoError(t, err)
			assert.Equal(t, got, dual)

			for sa, pa := range res.BySet {
				for sb, pb := range res.BySet {
					if sa.Disjoint(sb) && pa+pb > dual {
						t.Fatalf("pair %v+%v = %d exceeds %d", sa, sb, pa+pb, dual)
					}
				}
			}
		})
	}
}

// TestSolve_ForwardsStageOptions checks that each hook reaches its stage once per solve.
func TestSolve_ForwardsStageOptions(t *testing.T) {
	var eliminated []string
	var compacted *network.Network
	var visited int
	got, err := pressure.SolveSingle(testnet.Reference(), pressure.SingleMinutes,
		pressure.WithCompact(compact.WithOnEliminate(func(label string, _ int) {
			eliminated = append(eliminated, label)
		})),
		pressure.WithOnCompacted(func(c *network.Network) { compacted = c }),
		pressure.WithExplore(explore.WithOnVisit(func(explore.State) { visited++ })),
		pressure.WithOnCompacted(nil),
	)
	require.NoError(t, err)
	assert.Equal(t, testnet.ReferenceSingle, got)
	assert.Equal(t, []string{"FF", "GG", "II"}, eliminated)
	require.NotNil(t, compacted)
	assert.Equal(t, 7, compacted.Len())
	assert.Positive(t, visited)
}
