// Package network defines the valve network: rooms with a flow rate, joined by
// tunnels that take a whole number of minutes to walk.
//
// What
//
//   - Valve: a labelled room with a non-negative Flow and a list of Tunnels.
//   - Tunnel: (To, Dist), the neighbor index and walking time in minutes.
//   - Network: an immutable, validated collection of valves plus the start index.
//   - Builder: incremental, label-based construction (AddValve / Connect / Build).
//   - Parse / ParseFile: read the "Valve XX has flow rate=N; tunnels lead to ..." text format.
//
// Invariants (checked by New and Builder.Build)
//
//   - Start lies in [0, Len()).
//   - Flow ≥ 0 on every valve.
//   - Every tunnel targets another valve in range, with Dist > 0, at most once.
//   - Tunnels are symmetric: if A lists (B, d) then B lists (A, d).
//
// Determinism
//
//	Valve indices follow declaration order; tunnel order follows Connect order.
//	Nothing in this package iterates a map to produce output.
//
// Errors
//
//   - ErrStartOutOfRange, ErrNegativeFlow, ErrBadTunnel, ErrAsymmetric from New.
//   - ErrEmptyLabel, ErrDuplicateLabel, ErrUnknownLabel, ErrNoStart from Builder.
//   - ErrSyntax (wrapped with the line number) from Parse.
package network
