// Package valveset provides a fixed-width, bit-indexed set of opened valves.
//
// What
//
//   - Set is a 64-bit value; bit i is set when the valve mapped to bit i is open.
//   - Index maps dense valve indices of a network onto bit positions, so that only
//     flow-producing valves consume capacity (the start room usually has no flow).
//   - Set is a plain value type: comparable, usable as a map key, copied by assignment.
//
// Why
//
//	The explorer keys its memo tables by (valve, opened-set) and the dual-actor
//	combiner intersects opened-sets pairwise. A machine word makes both O(1).
//
// Capacity
//
//	Capacity is 64. NewIndex fails with ErrCapacityExceeded when asked to map more
//	members than that; nothing is ever silently truncated.
//
// Usage
//
//	idx, err := valveset.NewIndex(len(flows), func(i int) bool { return flows[i] > 0 })
//	if err != nil {
//	    // errors.Is(err, valveset.ErrCapacityExceeded)
//	}
//	var s valveset.Set
//	if bit, ok := idx.Bit(3); ok {
//	    s = s.With(bit)
//	}
package valveset
