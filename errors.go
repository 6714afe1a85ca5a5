package lights

import "github.com/zeebo/errs"

var (
	// Error wraps failures that fit no more specific class.
	Error = errs.Class("lights")

	// MalformedError is returned for machines that violate their
	// invariants: indices out of range, mismatched vector lengths or
	// input that does not parse.
	MalformedError = errs.Class("malformed machine")

	// UnsolvableError is returned when no combination of button presses
	// reaches the target.
	UnsolvableError = errs.Class("unsolvable")

	// ExhaustedError is returned when a solve expands more bit planes than
	// its budget allows.
	ExhaustedError = errs.Class("budget exhausted")
)
