package valveset

import "fmt"

// Index maps a dense domain [0, n) of valve indices onto Set bit positions.
// Only members (valves for which the membership predicate held) get a bit;
// bits are assigned in ascending valve order starting at 0.
type Index struct {
	bitOf   []int // valve index → bit position, -1 for non-members
	valveOf []int // bit position → valve index
}

// NewIndex assigns bits to every i in [0, n) for which member(i) is true.
// Returns ErrCapacityExceeded (wrapped with the member count) if more than
// Capacity members are found.
//
// Complexity: O(n).
func NewIndex(n int, member func(i int) bool) (*Index, error) {
	idx := &Index{
		bitOf:   make([]int, n),
		valveOf: make([]int, 0, min(n, Capacity)),
	}
	count := 0
	for i := 0; i < n; i++ {
		if !member(i) {
			idx.bitOf[i] = -1
			continue
		}
		count++
		if count > Capacity {
			continue // keep counting for the error message
		}
		idx.bitOf[i] = len(idx.valveOf)
		idx.valveOf = append(idx.valveOf, i)
	}
	if count > Capacity {
		return nil, fmt.Errorf("%w: %d members, capacity %d", ErrCapacityExceeded, count, Capacity)
	}

	return idx, nil
}

// Bit returns the bit assigned to valve, and false if valve is not a member
// or lies outside the domain.
func (x *Index) Bit(valve int) (int, bool) {
	if valve < 0 || valve >= len(x.bitOf) {
		return 0, false
	}
	b := x.bitOf[valve]

	return b, b >= 0
}

// Valve returns the valve index that owns bit.
func (x *Index) Valve(bit int) (int, bool) {
	if bit < 0 || bit >= len(x.valveOf) {
		return 0, false
	}

	return x.valveOf[bit], true
}

// Size returns the number of members.
func (x *Index) Size() int { return len(x.valveOf) }

// Domain returns n, the size of the indexed valve domain.
func (x *Index) Domain() int { return len(x.bitOf) }

// Valves translates the members of s back to valve indices, ascending by bit.
// Bits without an owner are ignored.
func (x *Index) Valves(s Set) []int {
	out := make([]int, 0, s.Len())
	for _, b := range s.Bits() {
		if v, ok := x.Valve(b); ok {
			out = append(out, v)
		}
	}

	return out
}
