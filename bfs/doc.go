// Package bfs provides breadth-first search over a network.Network,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore valves in non-decreasing hop count from a start valve.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: per-valve hop count from start (Unreached if not visited)
//   - Parent: per-valve predecessor in the BFS tree
//   - Supports an OnVisit hook that may abort the walk with an error.
//   - Allows filtering of individual tunnels via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Unit-weight shortest paths in O(V + E): the ground truth that graph
//     compaction must reproduce.
//   - Reachability: flow valves the start cannot reach are reported, not opened.
//
// Determinism
//
//	Neighbors are enqueued in tunnel order, so the visit sequence is fully
//	reproducible for a given network.
//
// Complexity (V = valves, E = tunnels)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(n, n.Start(), bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrNetworkNil, ErrStartOutOfRange, ErrOptionViolation, or a hook error
//	}
//	path, _ := res.PathTo(target)
//
// Errors
//
//   - ErrNetworkNil       if the network pointer is nil.
//   - ErrStartOutOfRange  if the start index names no valve.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
