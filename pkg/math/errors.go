package math

import "errors"

var (
	// ErrDegenerateVector is returned when a zero-length vector is normalized.
	ErrDegenerateVector = errors.New("math: degenerate vector")

	// ErrDegenerateAxis is returned when a rotation axis has zero length.
	ErrDegenerateAxis = errors.New("math: degenerate rotation axis")

	// ErrInvalidAngle is returned for NaN or infinite angles.
	ErrInvalidAngle = errors.New("math: invalid angle")
)
