// Package pressure answers the two valve puzzles on a parsed network.
//
//   - SolveSingle: one actor, the most pressure releasable in the budget
//     (PartOne uses 30 minutes).
//   - SolveDual: two actors sharing the budget, each opening a disjoint set of
//     valves (PartTwo uses 26 minutes).
//
// Both compact the network first and run their own exploration; nothing is
// shared between calls.
//
// The dual answer pairs every two opened-sets recorded by one exploration
// whose members do not overlap and keeps the best sum. An actor that opens
// nothing is the empty set, which is disjoint from everything, so the dual
// answer is never below the single answer for the same budget.
package pressure
