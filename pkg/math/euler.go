package math

import (
	"fmt"
	"math"
)

// Yaw returns the rotation about the Z axis (XY plane).
// angle is in radians.
func Yaw(angle float64) (Mat3, error) {
	if err := checkAngle("yaw", angle); err != nil {
		return Mat3{}, err
	}
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}, nil
}

// Pitch returns the rotation about the Y axis (XZ plane).
// angle is in radians. The sine terms are placed so that Pitch(θ) turns
// +X towards +Z, which is the opposite sense of a right-handed Y rotation.
func Pitch(angle float64) (Mat3, error) {
	if err := checkAngle("pitch", angle); err != nil {
		return Mat3{}, err
	}
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}, nil
}

// Roll returns the rotation about the X axis (YZ plane).
// angle is in radians.
func Roll(angle float64) (Mat3, error) {
	if err := checkAngle("roll", angle); err != nil {
		return Mat3{}, err
	}
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}, nil
}

// EulerMatrices holds the three elemental rotations of an Euler triple.
type EulerMatrices struct {
	Yaw, Pitch, Roll Mat3
}

// NewEulerMatrices builds the elemental rotations from angles in degrees:
// angleX drives roll, angleY drives pitch and angleZ drives yaw.
func NewEulerMatrices(angleXDeg, angleYDeg, angleZDeg float64) (EulerMatrices, error) {
	var em EulerMatrices
	var err error
	if em.Roll, err = Roll(Radians(angleXDeg)); err != nil {
		return EulerMatrices{}, fmt.Errorf("angle x: %w", err)
	}
	if em.Pitch, err = Pitch(Radians(angleYDeg)); err != nil {
		return EulerMatrices{}, fmt.Errorf("angle y: %w", err)
	}
	if em.Yaw, err = Yaw(Radians(angleZDeg)); err != nil {
		return EulerMatrices{}, fmt.Errorf("angle z: %w", err)
	}
	return em, nil
}

// Compose returns Pitch · Roll · Yaw: points are yawed first, then rolled,
// then pitched.
func (em EulerMatrices) Compose() Mat3 {
	return em.Pitch.Mul(em.Roll.Mul(em.Yaw))
}

// ComposeEuler returns the orientation matrix for angles in degrees.
// The application order is fixed: v' = Pitch(y) · (Roll(x) · (Yaw(z) · v)).
func ComposeEuler(angleXDeg, angleYDeg, angleZDeg float64) (Mat3, error) {
	em, err := NewEulerMatrices(angleXDeg, angleYDeg, angleZDeg)
	if err != nil {
		return Mat3{}, err
	}
	return em.Compose(), nil
}

// ApplyToSequence transforms every point by m. The result has the same
// length and order as points.
func ApplyToSequence(m Mat3, points []Vec3) []Vec3 {
	out := make([]Vec3, len(points))
	for i, p := range points {
		out[i] = m.MulVec(p)
	}
	return out
}
