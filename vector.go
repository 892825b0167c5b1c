package anima

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Vector represents a 3D point or direction.
type Vector struct {
	X, Y, Z float32
}

// Vec is a convenience function to create a Vector.
func Vec(x, y, z float32) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// VecArr creates a Vector from a 3-element array.
func VecArr(a [3]float32) Vector {
	return Vector{X: a[0], Y: a[1], Z: a[2]}
}

// VecUniform creates a Vector with all components set to v.
func VecUniform(v float32) Vector {
	return Vector{X: v, Y: v, Z: v}
}

// VecFromVec3 creates a Vector from an f32.Vec3.
func VecFromVec3(v f32.Vec3) Vector {
	return Vector{X: v[0], Y: v[1], Z: v[2]}
}

// Common directions and constants. The zero Vector is Vector{}.
var (
	// One is the vector with all components set to 1.
	One = Vector{X: 1, Y: 1, Z: 1}
	// Up is the +Y axis.
	Up = Vector{Y: 1}
	// Down is the -Y axis.
	Down = Vector{Y: -1}
	// Right is the +X axis.
	Right = Vector{X: 1}
	// Left is the -X axis.
	Left = Vector{X: -1}
	// Forward is the -Z axis (into the screen).
	Forward = Vector{Z: -1}
	// Back is the +Z axis (toward the viewer).
	Back = Vector{Z: 1}
)

// Add returns the sum of two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Neg returns the vector with all components negated.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Mul returns the component-wise product of two vectors.
func (v Vector) Mul(o Vector) Vector {
	return Vector{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Scale returns the vector scaled by a scalar.
func (v Vector) Scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Length returns the length of the vector.
func (v Vector) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Dist returns the distance between two points.
func (v Vector) Dist(o Vector) float32 {
	return v.Sub(o).Length()
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(o Vector) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of two vectors.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector) Norm() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return Vector{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Angle returns the angle in radians between two vectors.
func (v Vector) Angle(o Vector) float32 {
	cos := v.Norm().Dot(o.Norm())
	// Guard acos against drift outside [-1, 1].
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return float32(math.Acos(float64(cos)))
}

// Rot returns the vector rotated by a quaternion.
func (v Vector) Rot(q Quaternion) Vector {
	u := Vector{X: q.X, Y: q.Y, Z: q.Z}
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}

// Interpolate performs linear interpolation between two vectors.
// ratio=0 returns v, ratio=1 returns o, intermediate values interpolate.
func (v Vector) Interpolate(o Vector, ratio float32) Vector {
	return Vector{
		X: v.X + (o.X-v.X)*ratio,
		Y: v.Y + (o.Y-v.Y)*ratio,
		Z: v.Z + (o.Z-v.Z)*ratio,
	}
}

// Vec3 returns the vector as an f32.Vec3 for GPU-style buffers.
func (v Vector) Vec3() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}
