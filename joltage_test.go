package lights

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

// applyCounts returns the counters reached by pressing button b counts[b] times.
func applyCounts(buttons []Set, counts []int, n int) []uint16 {
	out := make([]uint16, n)
	for b, c := range counts {
		for _, i := range buttons[b].Indices() {
			out[i] += uint16(c)
		}
	}
	return out
}

// bruteTotalPresses tries every press count up to the largest target.
func bruteTotalPresses(buttons []Set, joltage []uint16) (int, bool) {
	max := 0
	for _, v := range joltage {
		if int(v) > max {
			max = int(v)
		}
	}

	best, found := 0, false
	counts := make([]int, len(buttons))
	var walk func(b, total int)
	walk = func(b, total int) {
		if b == len(buttons) {
			got := applyCounts(buttons, counts, len(joltage))
			for i := range got {
				if got[i] != joltage[i] {
					return
				}
			}
			if !found || total < best {
				best, found = total, true
			}
			return
		}
		for c := 0; c <= max; c++ {
			counts[b] = c
			walk(b+1, total+c)
		}
		counts[b] = 0
	}
	walk(0, 0)

	return best, found
}

func randomJoltage(buttons []Set, n, max int) []uint16 {
	counts := make([]int, len(buttons))
	for b := range counts {
		counts[b] = int(pcg.Uint32n(uint32(max + 1)))
	}
	return applyCounts(buttons, counts, n)
}

func TestMinTotalPresses(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		n, err := MinTotalPresses([]Set{SetOf(0)}, []uint16{3})
		assert.NoError(t, err)
		assert.Equal(t, n, 3)
	})

	t.Run("Trivial", func(t *testing.T) {
		n, err := MinTotalPresses(nil, []uint16{0, 0})
		assert.NoError(t, err)
		assert.Equal(t, n, 0)

		n, err = MinTotalPresses(nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, n, 0)
	})

	t.Run("Examples", func(t *testing.T) {
		cases := []struct {
			buttons []Set
			joltage []uint16
			exp     int
		}{
			{
				buttons: []Set{SetOf(3), SetOf(1, 3), SetOf(2), SetOf(2, 3), SetOf(0, 2), SetOf(0, 1)},
				joltage: []uint16{3, 5, 4, 7},
				exp:     10,
			},
			{
				buttons: []Set{SetOf(0, 2, 3, 4), SetOf(2, 3), SetOf(0, 4), SetOf(0, 1, 2), SetOf(1, 2, 3, 4)},
				joltage: []uint16{7, 5, 12, 7, 2},
				exp:     12,
			},
			{
				buttons: []Set{SetOf(0, 1, 2, 3, 4), SetOf(0, 3, 4), SetOf(0, 1, 2, 4, 5), SetOf(1, 2)},
				joltage: []uint16{10, 11, 11, 5, 10, 5},
				exp:     11,
			},
		}

		for _, c := range cases {
			for _, memo := range []bool{false, true} {
				plan, err := Solver{Memo: memo}.plan(c.buttons, c.joltage)
				assert.NoError(t, err)
				assert.Equal(t, plan.Presses, c.exp)
			}
		}
	})

	t.Run("Unsolvable", func(t *testing.T) {
		_, err := MinTotalPresses([]Set{SetOf(0)}, []uint16{0, 1})
		assert.Error(t, err)
		assert.That(t, UnsolvableError.Has(err))

		_, err = MinTotalPresses(nil, []uint16{1})
		assert.That(t, UnsolvableError.Has(err))
	})

	t.Run("Out Of Range", func(t *testing.T) {
		_, err := MinTotalPresses([]Set{SetOf(2)}, []uint16{1, 1})
		assert.That(t, MalformedError.Has(err))
	})

	t.Run("Budget", func(t *testing.T) {
		m, err := NewMachine(1, [][]int{{0}}, []bool{false}, []uint16{3})
		assert.NoError(t, err)

		_, err = Solver{Budget: 1}.MinTotalPresses(m)
		assert.Error(t, err)
		assert.That(t, ExhaustedError.Has(err))

		n, err := Solver{Budget: 2}.MinTotalPresses(m)
		assert.NoError(t, err)
		assert.Equal(t, n, 3)
	})

	t.Run("Decomposition", func(t *testing.T) {
		for iter := 0; iter < 100; iter++ {
			m, n := int(pcg.Uint32n(6))+1, int(pcg.Uint32n(6))+1
			buttons := randomButtons(m, n)
			joltage := randomJoltage(buttons, n, 20)

			plan, err := Solver{Memo: iter%2 == 0}.plan(buttons, joltage)
			assert.NoError(t, err)

			rebuilt := make([]uint16, n)
			for k, plane := range plan.Planes {
				for _, b := range plane.Indices() {
					for _, i := range buttons[b].Indices() {
						rebuilt[i] += 1 << uint(k)
					}
				}
			}
			assert.DeepEqual(t, rebuilt, joltage)

			counts := plan.Counts(m)
			assert.DeepEqual(t, applyCounts(buttons, counts, n), joltage)

			total := 0
			for _, c := range counts {
				total += c
			}
			assert.Equal(t, total, plan.Presses)
		}
	})

	t.Run("Memo", func(t *testing.T) {
		for iter := 0; iter < 100; iter++ {
			m, n := int(pcg.Uint32n(5))+1, int(pcg.Uint32n(6))+1
			buttons := randomButtons(m, n)
			joltage := randomJoltage(buttons, n, 20)

			a, err := Solver{}.plan(buttons, joltage)
			assert.NoError(t, err)
			b, err := Solver{Memo: true}.plan(buttons, joltage)
			assert.NoError(t, err)
			assert.Equal(t, a.Presses, b.Presses)
		}
	})

	t.Run("Brute", func(t *testing.T) {
		for iter := 0; iter < 100; iter++ {
			m, n := int(pcg.Uint32n(3))+1, int(pcg.Uint32n(4))+1
			buttons := randomButtons(m, n)
			joltage := randomJoltage(buttons, n, 4)

			exp, ok := bruteTotalPresses(buttons, joltage)
			assert.That(t, ok)

			got, err := MinTotalPresses(buttons, joltage)
			assert.NoError(t, err)
			assert.Equal(t, got, exp)
		}
	})

	t.Run("Monotonic", func(t *testing.T) {
		// with every button touching a single counter the answer is the sum
		// of the targets, so raising any target can only raise it.
		for iter := 0; iter < 100; iter++ {
			n := int(pcg.Uint32n(5)) + 1
			buttons := make([]Set, n)
			for i := range buttons {
				buttons[i] = SetOf(i)
			}
			joltage := randomJoltage(buttons, n, 40)

			before, err := MinTotalPresses(buttons, joltage)
			assert.NoError(t, err)

			joltage[pcg.Uint32n(uint32(n))]++
			after, err := MinTotalPresses(buttons, joltage)
			assert.NoError(t, err)
			assert.That(t, after >= before)
			assert.Equal(t, after, before+1)
		}
	})

	t.Run("Not Monotonic", func(t *testing.T) {
		// a shared button makes raising one target cheaper.
		buttons := []Set{SetOf(0, 1, 2), SetOf(0), SetOf(1)}

		before, err := MinTotalPresses(buttons, []uint16{1, 1, 0})
		assert.NoError(t, err)
		assert.Equal(t, before, 2)

		after, err := MinTotalPresses(buttons, []uint16{1, 1, 1})
		assert.NoError(t, err)
		assert.Equal(t, after, 1)
	})
}

func TestPlanCounts(t *testing.T) {
	plan := Plan{Presses: 8, Planes: []Set{SetOf(0, 2), SetOf(2), SetOf(1)}}
	assert.DeepEqual(t, plan.Counts(3), []int{1, 4, 3})
	assert.DeepEqual(t, Plan{}.Counts(2), []int{0, 0})
}

func BenchmarkMinTotalPresses(b *testing.B) {
	buttons := randomButtons(8, 8)
	joltage := randomJoltage(buttons, 8, 30)

	for _, memo := range []bool{false, true} {
		name := "Plain"
		if memo {
			name = "Memo"
		}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Solver{Memo: memo}.plan(buttons, joltage)
			}
		})
	}
}
