package math

import (
	"fmt"
	"math"
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// checkAngle rejects angles that would turn into NaN after cos/sin.
func checkAngle(name string, angle float64) error {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return fmt.Errorf("%s = %v: %w", name, angle, ErrInvalidAngle)
	}
	return nil
}

// AngleCosine returns the cosine of the angle at vertex c between the rays
// towards p0 and p1. Both rays are normalized first, so the result is in [-1, 1].
func AngleCosine(p0, p1, c Vec3) (float64, error) {
	a, err := p0.Sub(c).Normalize()
	if err != nil {
		return 0, fmt.Errorf("ray c->p0: %w", err)
	}
	b, err := p1.Sub(c).Normalize()
	if err != nil {
		return 0, fmt.Errorf("ray c->p1: %w", err)
	}
	return a.Dot(b), nil
}

// AngleBetween returns the angle at vertex c in degrees.
func AngleBetween(p0, p1, c Vec3) (float64, error) {
	cos, err := AngleCosine(p0, p1, c)
	if err != nil {
		return 0, err
	}
	// Rounding can push a unit dot product slightly past 1.
	cos = math.Max(-1, math.Min(1, cos))
	return Degrees(math.Acos(cos)), nil
}
