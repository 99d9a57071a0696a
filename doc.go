// Package valvenet finds the most pressure that can be released from a network
// of valves joined by tunnels, for one actor or two actors working in parallel.
//
// Under the hood, everything is organized in small subpackages:
//
//	valveset/ 64-bit opened-valve sets and the valve→bit index
//	network/  Valve, Tunnel, Network types, Builder and the text parser
//	bfs/      hop-count breadth-first search (reachability, ground truth)
//	compact/  removes zero-flow rooms, keeping shortest-path tunnel lengths
//	explore/  worklist search over (valve, opened-set, time left) with pruning
//	pressure/ single-actor and dual-actor answers, disjoint-set pairing
//
// Quick ASCII example:
//
//	BB(13)───AA(0)───II(0)───JJ(21)    →    BB──1──AA──2──JJ
//
// compaction drops II and joins AA to JJ with a two-minute tunnel.
//
// The command in cmd/valvenet reads an input file and prints both answers.
package valvenet
