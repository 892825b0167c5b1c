package anima

// Bezier represents a quadratic or cubic Bézier curve.
type Bezier struct {
	// V1 is the start point.
	V1 Vector
	// V2 is the first control point.
	V2 Vector
	// V3 is the second control point for cubic curves, the end point for
	// quadratic ones.
	V3 Vector
	// V4 is the end point for cubic curves; unused for quadratic ones.
	V4 Vector

	cubic bool
}

// QuadBezier creates a quadratic Bézier from v1 to v3 curving toward v2.
func QuadBezier(v1, v2, v3 Vector) Bezier {
	return Bezier{V1: v1, V2: v2, V3: v3}
}

// CubicBezier creates a cubic Bézier from v1 to v4 curving toward v2 and v3.
func CubicBezier(v1, v2, v3, v4 Vector) Bezier {
	return Bezier{V1: v1, V2: v2, V3: v3, V4: v4, cubic: true}
}

// Cubic reports whether the curve is cubic.
func (b Bezier) Cubic() bool {
	return b.cubic
}

// Start returns the starting point of the curve.
func (b Bezier) Start() Vector {
	return b.V1
}

// End returns the ending point of the curve.
func (b Bezier) End() Vector {
	if b.cubic {
		return b.V4
	}
	return b.V3
}

// Interpolate evaluates the Bernstein form of the curve at ratio.
// ratio=0 returns the start point, ratio=1 the end point; values outside
// [0, 1] extrapolate along the curve polynomial.
func (b Bezier) Interpolate(ratio float32) Vector {
	mr := 1 - ratio
	if b.cubic {
		return b.V1.Scale(mr * mr * mr).
			Add(b.V2.Scale(3 * mr * mr * ratio)).
			Add(b.V3.Scale(3 * mr * ratio * ratio)).
			Add(b.V4.Scale(ratio * ratio * ratio))
	}
	return b.V1.Scale(mr * mr).
		Add(b.V2.Scale(2 * mr * ratio)).
		Add(b.V3.Scale(ratio * ratio))
}

// Length approximates the arc length of the curve by summing the distances
// between steps uniformly distributed consecutive points.
func (b Bezier) Length(steps int) float32 {
	var length float32
	prev := b.V1
	for i := 1; i <= steps; i++ {
		next := b.Interpolate(float32(i) / float32(steps))
		length += prev.Dist(next)
		prev = next
	}
	return length
}

// pathSteps is the sampling used when normalizing curve lengths in a Path.
const pathSteps = 20

// Path is a sequence of connected Bézier curves. Interpolation over the
// path distributes the ratio across curves proportionally to arc length.
type Path struct {
	// Curves are the Bézier curves forming the path.
	Curves []Bezier
	// Lengths holds the arc length of each curve, normalized so the
	// lengths sum to 1.
	Lengths []float32
}

// NewPath creates a path from connected Bézier curves.
func NewPath(curves []Bezier) Path {
	lengths := make([]float32, len(curves))
	var sum float32
	for i, c := range curves {
		lengths[i] = c.Length(pathSteps)
		sum += lengths[i]
	}
	if sum > 0 {
		for i := range lengths {
			lengths[i] /= sum
		}
	}
	return Path{Curves: curves, Lengths: lengths}
}

// Interpolate evaluates the path at ratio, walking curves proportionally to
// their arc length. Ratios past 1 extrapolate along the last curve.
// An empty path evaluates to the zero Vector.
func (p Path) Interpolate(ratio float32) Vector {
	if len(p.Curves) == 0 {
		return Vector{}
	}

	var sum float32
	for i, length := range p.Lengths {
		if ratio <= sum+length {
			return p.Curves[i].Interpolate((ratio - sum) / length)
		}
		sum += length
	}

	last := len(p.Curves) - 1
	length := p.Lengths[last]
	return p.Curves[last].Interpolate((ratio - sum + length) / length)
}

// Length approximates the arc length of the path by summing the lengths of
// its curves, each sampled with steps points.
func (p Path) Length(steps int) float32 {
	var sum float32
	for _, c := range p.Curves {
		sum += c.Length(steps)
	}
	return sum
}
