// Package compact shrinks a valve network to the rooms that matter.
//
// Every zero-flow valve other than the start is eliminated: its neighbors are
// connected to each other directly, with the tunnel length being the sum of
// the two tunnels through the eliminated room, or the existing length if that
// is already shorter. After all eliminations the surviving tunnels are exact
// shortest-path distances between the start and every flow valve.
//
// Eliminations only ever shorten tunnels, so the result does not depend on the
// elimination order; Compact uses ascending index order for reproducibility.
//
// The output is a new, densely re-indexed Network (labels preserved, tunnels
// sorted by target index). The input is never modified. Compacting an already
// compacted network returns an identical network.
//
// Complexity: O(Σ deg(v)²) over eliminated valves, using a copy of the adjacency.
package compact
