package valveset

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Capacity is the maximum number of distinct members a Set can hold.
const Capacity = 64

// Sentinel errors for set construction.
var (
	// ErrCapacityExceeded is returned when more than Capacity members are requested.
	ErrCapacityExceeded = errors.New("valveset: capacity exceeded")

	// ErrBitOutOfRange is returned by FromBits for a bit outside [0, Capacity).
	ErrBitOutOfRange = errors.New("valveset: bit out of range")
)

// Set is a bit-indexed set of up to Capacity members. The zero value is empty.
type Set uint64

// Empty is the set with no members.
const Empty Set = 0

// FromBits builds a Set from explicit bit positions.
// Returns ErrBitOutOfRange if any bit is negative or ≥ Capacity.
func FromBits(positions ...int) (Set, error) {
	var s Set
	for _, b := range positions {
		if b < 0 || b >= Capacity {
			return Empty, fmt.Errorf("%w: %d", ErrBitOutOfRange, b)
		}
		s = s.With(b)
	}

	return s, nil
}

// Has reports whether bit is a member of s.
func (s Set) Has(bit int) bool {
	return s&(1<<uint(bit)) != 0
}

// With returns s with bit added. s itself is not modified.
func (s Set) With(bit int) Set {
	return s | 1<<uint(bit)
}

// Union returns the members of s or o.
func (s Set) Union(o Set) Set { return s | o }

// Intersects reports whether s and o share at least one member.
func (s Set) Intersects(o Set) bool { return s&o != 0 }

// Disjoint reports whether s and o share no member.
func (s Set) Disjoint(o Set) bool { return s&o == 0 }

// Len returns the number of members.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool { return s == Empty }

// Bits returns the member bit positions in ascending order.
func (s Set) Bits() []int {
	out := make([]int, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(rest))
	}

	return out
}

// String renders s as "{0,3,5}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range s.Bits() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(b))
	}
	sb.WriteByte('}')

	return sb.String()
}
