package lights

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
	"github.com/zeebo/mon"
)

// Parse reads one machine per line. Blank lines are skipped. A line looks like
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// with the target lights in brackets, one parenthesized group per button and
// the joltage targets in braces.
func Parse(r io.Reader) (ms []*Machine, err error) {
	defer mon.Start().Stop(&err)

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		m, err := ParseMachine(text)
		if err != nil {
			return nil, MalformedError.New("line %d: %v", line, err)
		}
		ms = append(ms, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.Wrap(err)
	}

	return ms, nil
}

// ParseMachine parses a single machine line.
func ParseMachine(line string) (*Machine, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, MalformedError.New("want lights and joltage, got %q", line)
	}

	diagram, ok := trimGroup(fields[0], '[', ']')
	if !ok {
		return nil, MalformedError.New("bad light diagram %q", fields[0])
	}
	target := make([]bool, len(diagram))
	for i, ch := range []byte(diagram) {
		switch ch {
		case '#':
			target[i] = true
		case '.':
		default:
			return nil, MalformedError.New("bad light %q in %q", ch, fields[0])
		}
	}

	last := fields[len(fields)-1]
	body, ok := trimGroup(last, '{', '}')
	if !ok {
		return nil, MalformedError.New("bad joltage %q", last)
	}
	vals, err := parseInts(body, 16)
	if err != nil {
		return nil, MalformedError.New("joltage %q: %v", last, err)
	}
	joltage := make([]uint16, len(vals))
	for i, v := range vals {
		joltage[i] = uint16(v)
	}

	var buttons [][]int
	for _, field := range fields[1 : len(fields)-1] {
		body, ok := trimGroup(field, '(', ')')
		if !ok {
			return nil, MalformedError.New("bad button %q", field)
		}
		idxs, err := parseInts(body, 8)
		if err != nil {
			return nil, MalformedError.New("button %q: %v", field, err)
		}
		button := make([]int, len(idxs))
		for i, v := range idxs {
			button[i] = int(v)
		}
		buttons = append(buttons, button)
	}

	return NewMachine(len(target), buttons, target, joltage)
}

func trimGroup(field string, open, close byte) (string, bool) {
	if len(field) < 2 || field[0] != open || field[len(field)-1] != close {
		return "", false
	}
	return field[1 : len(field)-1], true
}

func parseInts(body string, bits int) ([]uint64, error) {
	if body == "" {
		return nil, nil
	}
	parts := strings.Split(body, ",")
	out := make([]uint64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, bits)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
