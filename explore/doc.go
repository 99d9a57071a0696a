// Package explore searches the state space of a valve network: which valve an
// actor stands at, which valves are open, and how many minutes are left.
//
// What
//
//   - Explore starts at (start, ∅, budget, 0) and drains a FIFO worklist.
//   - From each state it may open the current valve (one minute, the valve
//     then releases Flow for every remaining minute) or walk a tunnel (Dist
//     minutes, only if time remains afterwards).
//   - Every expanded state is also a terminal candidate: standing still until
//     the end keeps its pressure. Result.Best is the maximum over all of them;
//     Result.BySet is the maximum per opened-set.
//
// Dominance pruning
//
//	For each (valve, opened-set) key the explorer keeps best[t], the highest
//	pressure recorded at remaining time t, or unset if no visit covered t. A
//	popped state whose pressure does not beat a recorded best[TimeLeft] is
//	dropped.
//	Otherwise best[i] is raised to the state's pressure for every i ≤ TimeLeft
//	before the state is expanded: arriving here with more time and at least as
//	much pressure dominates any later, poorer arrival.
//
// Determinism
//
//	Tunnels are walked in network order and the queue is FIFO, so Stats are
//	reproducible for a given network; the answers do not depend on order.
//
// Complexity
//
//	Bounded by V · 2^F · (budget+1) keys·times, F = number of flow valves.
//	Run it on a compact.Compact output to keep V and F small.
//
// Errors
//
//   - ErrNilNetwork      if the network pointer is nil.
//   - ErrNegativeBudget  if budget < 0.
//   - valveset.ErrCapacityExceeded (wrapped) if the network has more than
//     valveset.Capacity flow valves.
package explore
