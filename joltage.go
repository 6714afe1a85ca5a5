package lights

import "github.com/zeebo/mon"

// Solver finds the fewest total button presses that raise every counter of a
// machine to its joltage target. The zero value searches exhaustively with no
// cache and no limit.
type Solver struct {
	// Memo caches the result of every remaining joltage vector seen during a
	// solve. The same remainder is often reached through different
	// combinations on earlier planes.
	Memo bool

	// Budget is the maximum number of bit planes a single solve may expand.
	// Zero means no limit.
	Budget int
}

// Plan is the winning decomposition of a joltage vector into bit planes.
type Plan struct {
	// Presses is the total number of button presses.
	Presses int

	// Planes holds the buttons pressed on each plane, least significant
	// first. Buttons in Planes[k] are pressed 1<<k times.
	Planes []Set
}

// Counts returns how many times each of the n buttons is pressed.
func (p Plan) Counts(n int) []int {
	out := make([]int, n)
	for k, plane := range p.Planes {
		for _, b := range plane.Indices() {
			if b < n {
				out[b] += 1 << uint(k)
			}
		}
	}
	return out
}

// MinTotalPresses returns the fewest presses that take the counters from zero
// to joltage. Each button adds one to every counter it touches.
func MinTotalPresses(buttons []Set, joltage []uint16) (int, error) {
	plan, err := Solver{}.plan(buttons, joltage)
	return plan.Presses, err
}

// MinTotalPresses returns the fewest presses that reach the machine's joltage
// targets.
func (s Solver) MinTotalPresses(m *Machine) (int, error) {
	plan, err := s.Plan(m)
	return plan.Presses, err
}

var planThunk mon.Thunk

// Plan returns a cheapest decomposition of the machine's joltage targets.
func (s Solver) Plan(m *Machine) (p Plan, err error) {
	timer := planThunk.Start()
	defer timer.Stop(&err)

	return s.plan(m.buttons, m.joltage)
}

func (s Solver) plan(buttons []Set, joltage []uint16) (Plan, error) {
	if len(buttons) > maxButtons {
		return Plan{}, MalformedError.New("%d buttons exceeds maximum of %d", len(buttons), maxButtons)
	}
	if len(joltage) > maxMembers {
		return Plan{}, MalformedError.New("%d counters exceeds maximum of %d", len(joltage), maxMembers)
	}

	for b, set := range buttons {
		if set>>uint(len(joltage)) != 0 {
			return Plan{}, MalformedError.New("button %d touches counters outside [0, %d)", b, len(joltage))
		}
	}

	sr := newSearch(buttons, joltage, s)
	res, err := sr.solve(joltage)
	if err != nil {
		return Plan{}, err
	}
	if !res.ok {
		return Plan{}, UnsolvableError.New("no presses of %d buttons reach joltage %v", len(buttons), joltage)
	}
	return Plan{Presses: res.cost, Planes: res.planes}, nil
}

// outcome is the cheapest way to finish from some remaining vector.
type outcome struct {
	ok     bool
	cost   int
	planes []Set // shared between outcomes, never mutated
}

type search struct {
	buttons []Set
	columns []Set // columns[i] is the set of buttons touching counter i
	budget  int
	planes  int

	memo   map[string]outcome
	packer bitPacker
}

func newSearch(buttons []Set, joltage []uint16, s Solver) *search {
	columns := make([]Set, len(joltage))
	for b, set := range buttons {
		for i := range columns {
			if set.Has(i) {
				columns[i] |= 1 << uint(b)
			}
		}
	}

	sr := &search{
		buttons: buttons,
		columns: columns,
		budget:  s.Budget,
	}
	if s.Memo {
		w := joltageWidth(joltage)
		sr.memo = make(map[string]outcome)
		sr.packer = newBitPacker(make([]byte, packedSize(len(joltage), w)), w)
	}
	return sr
}

// solve finds the cheapest way to reach rem. Pressing the buttons of a
// combination once adds delta to the counters. Any solution presses each
// button some number of times, and the low bits of those counts form a
// combination matching the parity of rem, so every solution is of the form
// combo + 2*(solution of (rem - delta)/2).
func (sr *search) solve(rem []uint16) (out outcome, err error) {
	if allZero(rem) {
		return outcome{ok: true}, nil
	}

	var key string
	if sr.memo != nil {
		key = sr.packer.Key(rem)
		if cached, ok := sr.memo[key]; ok {
			return cached, nil
		}
	}

	sr.planes++
	if sr.budget > 0 && sr.planes > sr.budget {
		return outcome{}, ExhaustedError.New("expanded more than %d planes", sr.budget)
	}

	next := make([]uint16, len(rem))
	for _, c := range Enumerate(sr.buttons, paritySet(rem)) {
		if !sr.halve(rem, c.Buttons, next) {
			continue
		}

		sub, err := sr.solve(next)
		if err != nil {
			return outcome{}, err
		}
		if !sub.ok {
			continue
		}

		cost := 2*sub.cost + c.Presses
		if !out.ok || cost < out.cost {
			planes := make([]Set, 0, len(sub.planes)+1)
			planes = append(planes, c.Buttons)
			out = outcome{
				ok:     true,
				cost:   cost,
				planes: append(planes, sub.planes...),
			}
		}
	}

	if sr.memo != nil {
		sr.memo[key] = out
	}
	return out, nil
}

// halve stores (rem - delta) / 2 into next where delta counts the buttons of
// combo touching each counter. It reports false if combo overshoots any
// counter, which no later plane can undo.
func (sr *search) halve(rem []uint16, combo Set, next []uint16) bool {
	for i, r := range rem {
		delta := uint16((combo & sr.columns[i]).Len())
		if delta > r {
			return false
		}
		next[i] = (r - delta) / 2
	}
	return true
}

func allZero(vals []uint16) bool {
	for _, v := range vals {
		if v != 0 {
			return false
		}
	}
	return true
}
