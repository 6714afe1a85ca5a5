package lights

import "github.com/zeebo/mon"

var activationsThunk mon.Thunk

// MinActivations returns the fewest buttons whose combined toggles turn the
// lights from all off to exactly target.
func MinActivations(buttons []Set, target Set) (n int, err error) {
	timer := activationsThunk.Start()
	defer timer.Stop(&err)

	n = -1
	for _, c := range Enumerate(buttons, target) {
		if n < 0 || c.Presses < n {
			n = c.Presses
		}
	}
	if n < 0 {
		return 0, UnsolvableError.New("no combination of %d buttons toggles %b", len(buttons), uint64(target))
	}
	return n, nil
}
