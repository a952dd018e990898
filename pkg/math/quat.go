package math

import (
	"fmt"
	"math"
)

// Quat represents a quaternion w + xi + yj + zk.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
	W float64 `yaml:"w" json:"w"`
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// PureQuat embeds a point as a quaternion with zero scalar part.
func PureQuat(v Vec3) Quat {
	return Quat{X: v.X, Y: v.Y, Z: v.Z, W: 0}
}

// NewQuat builds a quaternion from its vector and scalar parts.
func NewQuat(v Vec3, s float64) Quat {
	return Quat{X: v.X, Y: v.Y, Z: v.Z, W: s}
}

// QuatFromAxisAngle creates a unit quaternion rotating by angle around axis.
// The axis is normalized here, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float64) (Quat, error) {
	if err := checkAngle("angle", angle); err != nil {
		return Quat{}, err
	}
	n, err := axis.Normalize()
	if err != nil || !axis.IsFinite() {
		return Quat{}, fmt.Errorf("axis %v: %w", axis, ErrDegenerateAxis)
	}
	halfAngle := angle / 2
	return NewQuat(n.Scale(math.Sin(halfAngle)), math.Cos(halfAngle)), nil
}

// Vector returns the vector part (X, Y, Z).
func (q Quat) Vector() Vec3 {
	return Vec3{q.X, q.Y, q.Z}
}

// Scalar returns the scalar part W.
func (q Quat) Scalar() float64 {
	return q.W
}

// Length returns the quaternion norm.
func (q Quat) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := q.Length()
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Conjugate negates the vector part. For unit quaternions it is the inverse.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Mul returns the Hamilton product q · other.
//
//	s = s1·s2 − v1·v2
//	v = s1·v2 + s2·v1 + v1 × v2
func (q Quat) Mul(other Quat) Quat {
	s1, s2 := q.W, other.W
	v1, v2 := q.Vector(), other.Vector()

	s := s1*s2 - v1.Dot(v2)
	v := v2.Scale(s1).Add(v1.Scale(s2)).Add(v1.Cross(v2))
	return NewQuat(v, s)
}

// Sandwich returns q · p · q̄ with the products taken left to right.
func (q Quat) Sandwich(p Quat) Quat {
	return q.Mul(p).Mul(q.Conjugate())
}

// Rotate rotates point by q and returns the vector part of q · p · q̄.
func (q Quat) Rotate(point Vec3) Vec3 {
	return q.Sandwich(PureQuat(point)).Vector()
}

// QuatRotate rotates point around axis by angleDeg degrees.
func QuatRotate(point, axis Vec3, angleDeg float64) (Vec3, error) {
	q, err := QuatFromAxisAngle(axis, Radians(angleDeg))
	if err != nil {
		return Vec3{}, err
	}
	return q.Rotate(point), nil
}
