package lights

import "math/bits"

// Combination is a set of buttons pressed once each, along with how many
// buttons that is.
type Combination struct {
	Buttons Set
	Presses int
}

// Enumerate returns every combination of buttons whose toggles, applied to
// all-off lights, produce exactly target. Every one of the 2^len(buttons)
// combinations is checked, so len(buttons) must be small.
func Enumerate(buttons []Set, target Set) []Combination {
	var out []Combination

	// gray code order: step i flips the button at the lowest set bit of i,
	// so the running toggles only need one xor per combination.
	var combo, toggled Set
	for i, n := uint64(0), uint64(1)<<uint(len(buttons)); i < n; i++ {
		if i > 0 {
			b := bits.TrailingZeros64(i)
			combo ^= 1 << uint(b)
			toggled ^= buttons[b]
		}
		if toggled == target {
			out = append(out, Combination{
				Buttons: combo,
				Presses: combo.Len(),
			})
		}
	}

	return out
}
