package planner

import "errors"

// Planning failures fall into three kinds. Callers match them with errors.Is;
// the wrapped message carries the specific violated precondition.
var (
	// ErrInvalidGeometry reports non-positive dimensions or altitude, or a
	// field of view outside (0°, 180°).
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidParameters reports overlap fractions >= 1, or non-positive
	// speed, battery capacity, or trigger spacing.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrLegExceedsBattery reports a single leg whose flight time alone
	// exceeds the battery budget. The mission cannot be flown as specified
	// and must be rejected rather than split mid-leg.
	ErrLegExceedsBattery = errors.New("leg exceeds battery capacity")
)
