package anima

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Quaternion represents a rotation. X, Y and Z are the imaginary i, j and k
// values; W is the real value.
type Quaternion struct {
	X, Y, Z, W float32
}

// Quat is a convenience function to create a Quaternion.
func Quat(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// QuatRot creates the quaternion equivalent to a rotation of angle radians
// around a direction. The direction does not need to be normalized.
func QuatRot(direction Vector, angle float32) Quaternion {
	d := direction.Norm()
	sin := float32(math.Sin(float64(angle) / 2))
	return Quaternion{
		X: d.X * sin,
		Y: d.Y * sin,
		Z: d.Z * sin,
		W: float32(math.Cos(float64(angle) / 2)),
	}
}

// QuatSphRot creates the quaternion equivalent to the shortest rotation
// moving the direction start to the direction finish.
func QuatSphRot(start, finish Vector) Quaternion {
	direction := finish.Cross(start)
	angle := start.Angle(finish)
	return QuatRot(direction, angle)
}

// QuaternionIdent returns the identity (0, 0, 0, 1) quaternion.
func QuaternionIdent() Quaternion {
	return Quaternion{W: 1}
}

// QuatFromVec4 creates a Quaternion from an f32.Vec4 laid out as x, y, z, w.
func QuatFromVec4(v f32.Vec4) Quaternion {
	return Quaternion{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// Conj returns the conjugate of the quaternion.
func (q Quaternion) Conj() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inv returns the inverse of the quaternion.
func (q Quaternion) Inv() Quaternion {
	norm := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	return Quaternion{
		X: -q.X / norm,
		Y: -q.Y / norm,
		Z: -q.Z / norm,
		W: q.W / norm,
	}
}

// Dot returns the dot product of two quaternions.
func (q Quaternion) Dot(o Quaternion) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Angle returns the angle in radians between two rotations.
func (q Quaternion) Angle(o Quaternion) float32 {
	cos := q.Dot(o)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return float32(math.Acos(float64(cos))) * 2
}

// Mul returns the combined rotation that applies q first, then o.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: o.W*q.X + o.X*q.W + o.Y*q.Z - o.Z*q.Y,
		Y: o.W*q.Y - o.X*q.Z + o.Y*q.W + o.Z*q.X,
		Z: o.W*q.Z + o.X*q.Y - o.Y*q.X + o.Z*q.W,
		W: o.W*q.W - o.X*q.X - o.Y*q.Y - o.Z*q.Z,
	}
}

// Interpolate performs spherical linear interpolation between two rotations.
// ratio=0 returns q, ratio=1 returns o. Opposing rotations have no unique
// shortest arc; in that case q is returned unchanged.
func (q Quaternion) Interpolate(o Quaternion, ratio float32) Quaternion {
	cosHalf := float64(q.Dot(o))
	if cosHalf > 1 {
		cosHalf = 1
	} else if cosHalf < -1 {
		cosHalf = -1
	}
	half := math.Acos(cosHalf)
	sinHalf := math.Sin(half)
	if math.Abs(sinHalf) < 1e-6 {
		return q
	}

	r1 := float32(math.Sin((1-float64(ratio))*half) / sinHalf)
	r2 := float32(math.Sin(float64(ratio)*half) / sinHalf)

	return Quaternion{
		X: q.X*r1 + o.X*r2,
		Y: q.Y*r1 + o.Y*r2,
		Z: q.Z*r1 + o.Z*r2,
		W: q.W*r1 + o.W*r2,
	}
}

// Vec4 returns the quaternion as an f32.Vec4 laid out as x, y, z, w.
func (q Quaternion) Vec4() f32.Vec4 {
	return f32.Vec4{q.X, q.Y, q.Z, q.W}
}
