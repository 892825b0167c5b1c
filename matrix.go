package anima

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Matrix represents a 4x4 transformation matrix stored as 16 values in
// column-major order, the layout expected by GPU uniform buffers.
type Matrix [16]float32

// MatrixIdent returns the identity matrix.
func MatrixIdent() Matrix {
	var m Matrix
	m[0] = 1
	m[5] = 1
	m[10] = 1
	m[15] = 1
	return m
}

// MatrixFromMat4 creates a Matrix from an f32.Mat4 holding values in
// column-major order.
func MatrixFromMat4(m f32.Mat4) Matrix {
	return Matrix(m)
}

// Trans returns the matrix translated by a vector.
// The translation is applied to the left (t * m).
func (m Matrix) Trans(v Vector) Matrix {
	return Matrix{
		m[0] + m[3]*v.X,
		m[1] + m[3]*v.Y,
		m[2] + m[3]*v.Z,
		m[3],
		m[4] + m[7]*v.X,
		m[5] + m[7]*v.Y,
		m[6] + m[7]*v.Z,
		m[7],
		m[8] + m[11]*v.X,
		m[9] + m[11]*v.Y,
		m[10] + m[11]*v.Z,
		m[11],
		m[12] + m[15]*v.X,
		m[13] + m[15]*v.Y,
		m[14] + m[15]*v.Z,
		m[15],
	}
}

// Scale returns the matrix scaled by a vector, component per axis.
// The scaling is applied to the left (s * m).
func (m Matrix) Scale(v Vector) Matrix {
	return Matrix{
		m[0] * v.X,
		m[1] * v.Y,
		m[2] * v.Z,
		m[3],
		m[4] * v.X,
		m[5] * v.Y,
		m[6] * v.Z,
		m[7],
		m[8] * v.X,
		m[9] * v.Y,
		m[10] * v.Z,
		m[11],
		m[12] * v.X,
		m[13] * v.Y,
		m[14] * v.Z,
		m[15],
	}
}

// Rot returns the matrix rotated by a quaternion.
// The rotation is applied to the left (r * m).
func (m Matrix) Rot(q Quaternion) Matrix {
	r := Matrix{
		1 - 2*(q.Y*q.Y+q.Z*q.Z),
		2 * (q.X*q.Y + q.Z*q.W),
		2 * (q.X*q.Z - q.Y*q.W),
		0,
		2 * (q.X*q.Y - q.Z*q.W),
		1 - 2*(q.X*q.X+q.Z*q.Z),
		2 * (q.Y*q.Z + q.X*q.W),
		0,
		2 * (q.X*q.Z + q.Y*q.W),
		2 * (q.Y*q.Z - q.X*q.W),
		1 - 2*(q.X*q.X+q.Y*q.Y),
		0,
		0, 0, 0, 1,
	}
	return r.Mul(m)
}

// RotAround returns the matrix rotated by a quaternion around a point.
// The rotation is applied to the left (r * m).
func (m Matrix) RotAround(q Quaternion, point Vector) Matrix {
	return m.Trans(point.Neg()).Rot(q).Trans(point)
}

// Mul multiplies two matrices (m * other).
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			r[col*4+row] = m[row]*o[col*4] +
				m[4+row]*o[col*4+1] +
				m[8+row]*o[col*4+2] +
				m[12+row]*o[col*4+3]
		}
	}
	return r
}

// MulVec applies the transformation to a point, including the homogeneous
// perspective divide.
func (m Matrix) MulVec(v Vector) Vector {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	return Vector{X: x / w, Y: y / w, Z: z / w}
}

// Inv returns the inverse matrix and whether the matrix was invertible.
// For singular matrices the identity matrix is returned with ok false.
func (m Matrix) Inv() (inv Matrix, ok bool) {
	s0 := m[0]*m[5] - m[1]*m[4]
	s1 := m[0]*m[9] - m[1]*m[8]
	s2 := m[0]*m[13] - m[1]*m[12]
	s3 := m[4]*m[9] - m[5]*m[8]
	s4 := m[4]*m[13] - m[5]*m[12]
	s5 := m[8]*m[13] - m[9]*m[12]

	c5 := m[10]*m[15] - m[11]*m[14]
	c4 := m[6]*m[15] - m[7]*m[14]
	c3 := m[6]*m[11] - m[7]*m[10]
	c2 := m[2]*m[15] - m[3]*m[14]
	c1 := m[2]*m[11] - m[3]*m[10]
	c0 := m[2]*m[7] - m[3]*m[6]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if math.Abs(float64(det)) < 1e-10 {
		return MatrixIdent(), false
	}

	d := 1 / det
	return Matrix{
		(m[5]*c5 - m[9]*c4 + m[13]*c3) * d,
		(-m[1]*c5 + m[9]*c2 - m[13]*c1) * d,
		(m[1]*c4 - m[5]*c2 + m[13]*c0) * d,
		(-m[1]*c3 + m[5]*c1 - m[9]*c0) * d,
		(-m[4]*c5 + m[8]*c4 - m[12]*c3) * d,
		(m[0]*c5 - m[8]*c2 + m[12]*c1) * d,
		(-m[0]*c4 + m[4]*c2 - m[12]*c0) * d,
		(m[0]*c3 - m[4]*c1 + m[8]*c0) * d,
		(m[7]*s5 - m[11]*s4 + m[15]*s3) * d,
		(-m[3]*s5 + m[11]*s2 - m[15]*s1) * d,
		(m[3]*s4 - m[7]*s2 + m[15]*s0) * d,
		(-m[3]*s3 + m[7]*s1 - m[11]*s0) * d,
		(-m[6]*s5 + m[10]*s4 - m[14]*s3) * d,
		(m[2]*s5 - m[10]*s2 + m[14]*s1) * d,
		(-m[2]*s4 + m[6]*s2 - m[14]*s0) * d,
		(m[2]*s3 - m[6]*s1 + m[10]*s0) * d,
	}, true
}

// Mat4 returns the matrix as an f32.Mat4, values in column-major order.
func (m Matrix) Mat4() f32.Mat4 {
	return f32.Mat4(m)
}
