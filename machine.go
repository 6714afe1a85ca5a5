package lights

// Machine is an immutable description of a set of lights and the buttons
// that toggle them, along with both kinds of targets.
type Machine struct {
	lights  int
	buttons []Set
	target  Set
	joltage []uint16
}

// maxButtons keeps every combination of buttons representable as a Set.
const maxButtons = maxMembers - 1

// NewMachine validates and builds a machine with the given number of lights.
// Each button lists the lights it toggles. target and joltage must both have
// one entry per light.
func NewMachine(lights int, buttons [][]int, target []bool, joltage []uint16) (*Machine, error) {
	if lights < 1 || lights > maxMembers {
		return nil, MalformedError.New("light count %d not in [1, %d]", lights, maxMembers)
	}
	if len(buttons) > maxButtons {
		return nil, MalformedError.New("%d buttons exceeds maximum of %d", len(buttons), maxButtons)
	}
	if len(target) != lights {
		return nil, MalformedError.New("target has %d entries for %d lights", len(target), lights)
	}
	if len(joltage) != lights {
		return nil, MalformedError.New("joltage has %d entries for %d lights", len(joltage), lights)
	}

	sets := make([]Set, len(buttons))
	for b, idxs := range buttons {
		for _, i := range idxs {
			if i < 0 || i >= lights {
				return nil, MalformedError.New("button %d: light %d out of range [0, %d)", b, i, lights)
			}
			if sets[b].Has(i) {
				return nil, MalformedError.New("button %d: light %d listed twice", b, i)
			}
			sets[b] |= 1 << uint(i)
		}
	}

	return &Machine{
		lights:  lights,
		buttons: sets,
		target:  setOfBools(target),
		joltage: append([]uint16(nil), joltage...),
	}, nil
}

func (m *Machine) Lights() int       { return m.lights }
func (m *Machine) NumButtons() int   { return len(m.buttons) }
func (m *Machine) Target() Set       { return m.target }
func (m *Machine) Buttons() []Set    { return append([]Set(nil), m.buttons...) }
func (m *Machine) Joltage() []uint16 { return append([]uint16(nil), m.joltage...) }

// MinActivations returns the fewest buttons that toggle the lights from all
// off to the target pattern.
func (m *Machine) MinActivations() (int, error) {
	return MinActivations(m.buttons, m.target)
}

// MinTotalPresses returns the fewest total presses that raise every counter
// to its joltage target, using the zero Solver.
func (m *Machine) MinTotalPresses() (int, error) {
	return Solver{}.MinTotalPresses(m)
}
