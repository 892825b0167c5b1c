// Package anima provides the core building blocks of the Anima game engine.
//
// # Overview
//
// anima is a pure Go engine core centered on linear math for graphics and
// animation. The root package holds the math types; game running and input
// processing live in sub-packages.
//
// # Quick Start
//
//	import "github.com/anima-engine/anima"
//
//	// Move a point halfway along a quadratic Bézier curve.
//	b := anima.QuadBezier(
//		anima.Vec(1, 0, 0),
//		anima.Vec(1, 1, 0),
//		anima.Vec(0, 1, 0),
//	)
//	v := b.Interpolate(0.5)
//
//	// Rotate it a quarter turn around the Y axis.
//	v = v.Rot(anima.QuatRot(anima.Up, math.Pi/2))
//
// # Architecture
//
// The module is organized into:
//   - Root package: Vector, Quaternion, Matrix, Bezier, Path, Interpolator
//   - game: the Game interface, the frame loop, and loop configuration
//   - input: raw-to-intermediate input event processing
//   - event: a typed publish/subscribe bus for frame events
//
// # Coordinate System
//
// Right-handed OpenGL-style coordinates:
//   - X increases right
//   - Y increases up
//   - Z increases toward the viewer (Forward is -Z)
//   - Angles in radians
//
// All math types use float32, matching typical GPU vertex formats; see the
// f32 conversions on Vector, Quaternion and Matrix for buffer interop.
package anima

// Version information
const (
	// Version is the current version of the engine core
	Version = "0.2.0"
)
