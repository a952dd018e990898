package math

import "math"

// Mat3 is a 3x3 matrix in row-major order.
// Layout: [m0 m1 m2]
//
//	[m3 m4 m5]
//	[m6 m7 m8]
type Mat3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// At returns the entry at row r, column c.
func (m Mat3) At(r, c int) float64 {
	return m[r*3+c]
}

// CrossMatrix returns the skew-symmetric matrix M(q) with M(q)·p = p × q.
// The matrix is built from the second cross operand.
func CrossMatrix(q Vec3) Mat3 {
	return Mat3{
		0, q.Z, -q.Y,
		-q.Z, 0, q.X,
		q.Y, -q.X, 0,
	}
}

// CrossViaMatrix computes p × q as the linear map CrossMatrix(q) applied to p.
func CrossViaMatrix(p, q Vec3) Vec3 {
	return CrossMatrix(q).MulVec(p)
}

// MulVec returns m · v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Mul returns m · other. Applied to a vector, other acts first.
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			result[row*3+col] =
				m[row*3+0]*other[0*3+col] +
					m[row*3+1]*other[1*3+col] +
					m[row*3+2]*other[2*3+col]
		}
	}
	return result
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns det(m).
func (m Mat3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// IsRotation reports whether m is orthonormal with determinant +1 within tol.
func (m Mat3) IsRotation(tol float64) bool {
	p := m.Transpose().Mul(m)
	id := Identity3()
	for i := range p {
		if math.Abs(p[i]-id[i]) > tol {
			return false
		}
	}
	return math.Abs(m.Determinant()-1) <= tol
}

// IsSkewSymmetric reports whether m equals the negative of its transpose within tol.
func (m Mat3) IsSkewSymmetric(tol float64) bool {
	t := m.Transpose()
	for i := range m {
		if math.Abs(m[i]+t[i]) > tol {
			return false
		}
	}
	return true
}
