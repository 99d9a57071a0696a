package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/network"
)

// TestNew_Errors verifies that every invariant violation is rejected with its sentinel.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		start  int
		valves []network.Valve
		want   error
	}{
		{"empty", 0, nil, network.ErrStartOutOfRange},
		{"negative start", -1, []network.Valve{{}}, network.ErrStartOutOfRange},
		{"negative flow", 0, []network.Valve{{Flow: -3}}, network.ErrNegativeFlow},
		{"out of range tunnel", 0, []network.Valve{{Tunnels: []network.Tunnel{{To: 4, Dist: 1}}}}, network.ErrBadTunnel},
		{"self loop", 0, []network.Valve{{Tunnels: []network.Tunnel{{To: 0, Dist: 1}}}}, network.ErrBadTunnel},
		{"zero distance", 0, []network.Valve{
			{Tunnels: []network.Tunnel{{To: 1, Dist: 0}}},
			{Tunnels: []network.Tunnel{{To: 0, Dist: 0}}},
		}, network.ErrBadTunnel},
		{"repeated tunnel", 0, []network.Valve{
			{Tunnels: []network.Tunnel{{To: 1, Dist: 1}, {To: 1, Dist: 2}}},
			{Tunnels: []network.Tunnel{{To: 0, Dist: 1}}},
		}, network.ErrBadTunnel},
		{"missing reverse", 0, []network.Valve{
			{Tunnels: []network.Tunnel{{To: 1, Dist: 1}}},
			{},
		}, network.ErrAsymmetric},
		{"reverse distance differs", 0, []network.Valve{
			{Tunnels: []network.Tunnel{{To: 1, Dist: 1}}},
			{Tunnels: []network.Tunnel{{To: 0, Dist: 2}}},
		}, network.ErrAsymmetric},
		{"duplicate label", 0, []network.Valve{{Label: "AA"}, {Label: "AA"}}, network.ErrDuplicateLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := network.New(tc.start, tc.valves)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNew_CopiesInput ensures later edits to the caller's slice do not leak in.
func TestNew_CopiesInput(t *testing.T) {
	valves := []network.Valve{
		{Label: "AA", Tunnels: []network.Tunnel{{To: 1, Dist: 2}}},
		{Label: "BB", Flow: 7, Tunnels: []network.Tunnel{{To: 0, Dist: 2}}},
	}
	n, err := network.New(0, valves)
	require.NoError(t, err)

	valves[1].Flow = 99
	valves[0].Tunnels[0].Dist = 9

	assert.Equal(t, 7, n.Flow(1))
	d, ok := n.Distance(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2, d)
}

// TestNetwork_Accessors exercises the read-only API on a small triangle.
func TestNetwork_Accessors(t *testing.T) {
	b := network.NewBuilder()
	for _, v := range []struct {
		label string
		flow  int
	}{{"AA", 0}, {"BB", 5}, {"CC", 0}, {"DD", 8}} {
		_, err := b.AddValve(v.label, v.flow)
		require.NoError(t, err)
	}
	require.NoError(t, b.Connect("AA", "BB", 1))
	require.NoError(t, b.Connect("BB", "CC", 1))
	require.NoError(t, b.Connect("CC", "AA", 3))
	require.NoError(t, b.Connect("CC", "DD", 1))
	// reconnect keeps the shorter distance on both ends
	require.NoError(t, b.Connect("AA", "CC", 2))
	require.NoError(t, b.Connect("CC", "AA", 5))

	n, err := b.Build("AA")
	require.NoError(t, err)

	assert.Equal(t, 4, n.Len())
	assert.Equal(t, 0, n.Start())
	assert.Equal(t, 4, n.EdgeCount())
	assert.Equal(t, []int{1, 3}, n.FlowValves())
	assert.Equal(t, "CC", n.Label(2))

	i, ok := n.Index("DD")
	require.True(t, ok)
	assert.Equal(t, 3, i)
	_, ok = n.Index("ZZ")
	assert.False(t, ok)

	d, ok := n.Distance(0, 2)
	require.True(t, ok)
	assert.Equal(t, 2, d)
	d, ok = n.Distance(2, 0)
	require.True(t, ok)
	assert.Equal(t, 2, d)
	_, ok = n.Distance(0, 3)
	assert.False(t, ok)

	// Valve returns a copy
	v := n.Valve(0)
	v.Tunnels[0].Dist = 42
	d, _ = n.Distance(0, v.Tunnels[0].To)
	assert.NotEqual(t, 42, d)
}

// TestNetwork_Clone verifies deep copy semantics.
func TestNetwork_Clone(t *testing.T) {
	n, err := network.New(0, []network.Valve{
		{Label: "AA", Tunnels: []network.Tunnel{{To: 1, Dist: 1}}},
		{Label: "BB", Flow: 3, Tunnels: []network.Tunnel{{To: 0, Dist: 1}}},
	})
	require.NoError(t, err)

	c := n.Clone()
	assert.Equal(t, n.Valves(), c.Valves())
	assert.Equal(t, n.Start(), c.Start())
	i, ok := c.Index("BB")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	vs := c.Valves()
	vs[0].Tunnels[0].Dist = 10
	d, _ := c.Distance(0, 1)
	assert.Equal(t, 1, d)
}

// TestNetwork_UnlabelledValves checks the "#i" fallback label.
func TestNetwork_UnlabelledValves(t *testing.T) {
	n, err := network.New(0, []network.Valve{{}, {}})
	require.NoError(t, err)
	assert.Equal(t, "#1", n.Label(1))
	_, ok := n.Index("")
	assert.False(t, ok)
}

// TestBuilder_Errors covers label and tunnel validation.
func TestBuilder_Errors(t *testing.T) {
	b := network.NewBuilder()
	_, err := b.AddValve("", 1)
	assert.ErrorIs(t, err, network.ErrEmptyLabel)
	_, err = b.AddValve("AA", -1)
	assert.ErrorIs(t, err, network.ErrNegativeFlow)
	_, err = b.AddValve("AA", 0)
	require.NoError(t, err)
	_, err = b.AddValve("AA", 0)
	assert.ErrorIs(t, err, network.ErrDuplicateLabel)
	assert.True(t, b.Has("AA"))

	assert.ErrorIs(t, b.Connect("AA", "BB", 1), network.ErrUnknownLabel)
	assert.ErrorIs(t, b.Connect("BB", "AA", 1), network.ErrUnknownLabel)
	assert.ErrorIs(t, b.Connect("AA", "AA", 1), network.ErrBadTunnel)

	_, err = b.AddValve("BB", 0)
	require.NoError(t, err)
	assert.ErrorIs(t, b.Connect("AA", "BB", 0), network.ErrBadTunnel)

	_, err = b.Build("ZZ")
	assert.ErrorIs(t, err, network.ErrNoStart)
}
