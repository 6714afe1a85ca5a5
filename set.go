package lights

import "math/bits"

// Set is a bit vector over lights or over buttons. Bit i is set iff member i
// is present. Sets combine with ^ for toggling.
type Set uint64

// maxMembers is the number of distinct members a Set can hold.
const maxMembers = 64

// SetOf returns the set containing each of the indices. Indices must be in
// [0, 64).
func SetOf(indices ...int) Set {
	var s Set
	for _, i := range indices {
		s |= 1 << uint(i)
	}
	return s
}

func (s Set) Has(i int) bool { return s>>uint(i)&1 == 1 }
func (s Set) Len() int       { return bits.OnesCount64(uint64(s)) }
func (s Set) Empty() bool    { return s == 0 }

// Indices returns the members of the set in increasing order.
func (s Set) Indices() []int {
	out := make([]int, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros64(v))
	}
	return out
}

// setOfBools packs a boolean vector, index 0 in the lowest bit.
func setOfBools(vals []bool) Set {
	var s Set
	for i, v := range vals {
		if v {
			s |= 1 << uint(i)
		}
	}
	return s
}

// paritySet returns the set of positions holding an odd value.
func paritySet(vals []uint16) Set {
	var s Set
	for i, v := range vals {
		s |= Set(v&1) << uint(i)
	}
	return s
}
