package anima

import (
	"math"
	"testing"
)

func TestBezier_InterpolateQuad(t *testing.T) {
	b := QuadBezier(
		Vec(1, 0, 0),
		Vec(1, 1, 0),
		Vec(0, 1, 0),
	)

	if got := b.Interpolate(0.5); !vecsEqual(got, Vec(0.75, 0.75, 0), epsilon) {
		t.Errorf("Interpolate(0.5) = %v, want (0.75, 0.75, 0)", got)
	}
	if got := b.Interpolate(0); got != b.Start() {
		t.Errorf("Interpolate(0) = %v, want start %v", got, b.Start())
	}
	if got := b.Interpolate(1); got != b.End() {
		t.Errorf("Interpolate(1) = %v, want end %v", got, b.End())
	}
}

func TestBezier_InterpolateCubic(t *testing.T) {
	b := CubicBezier(
		Vec(0, 0, 0),
		Vec(0, 1, 0),
		Vec(1, 1, 0),
		Vec(1, 0, 0),
	)

	if got := b.Interpolate(0.5); !vecsEqual(got, Vec(0.5, 0.75, 0), epsilon) {
		t.Errorf("Interpolate(0.5) = %v, want (0.5, 0.75, 0)", got)
	}
	if got := b.End(); got != Vec(1, 0, 0) {
		t.Errorf("End() = %v, want (1, 0, 0)", got)
	}
	if !b.Cubic() {
		t.Error("Cubic() = false for a cubic curve")
	}
}

func TestBezier_Length(t *testing.T) {
	// Cubic approximation of a radius 1 circle arc.
	b := CubicBezier(
		Vec(0, 0, 0),
		Vec(0, 0.55228, 0),
		Vec(0.44772, 1, 0),
		Vec(1, 1, 0),
	)

	if got := b.Length(20); abs32(got-math.Pi/2) > 1e-3 {
		t.Errorf("Length(20) = %v, want %v", got, math.Pi/2)
	}
}

func TestPath_Lengths(t *testing.T) {
	p := NewPath([]Bezier{QuadBezier(
		Vec(0, 0, 0),
		Vec(1, 0, 0),
		Vec(2, 0, 0),
	)})

	if len(p.Lengths) != 1 || abs32(p.Lengths[0]-1) > epsilon {
		t.Errorf("Lengths = %v, want [1]", p.Lengths)
	}
}

func TestPath_Interpolate(t *testing.T) {
	b1 := QuadBezier(
		Vec(0, 0, 0),
		Vec(1, 1, 0),
		Vec(2, 2, 0),
	)
	b2 := QuadBezier(
		Vec(2, 2, 0),
		Vec(6, 6, 0),
		Vec(10, 10, 0),
	)
	p := NewPath([]Bezier{b1, b2})

	tests := []struct {
		name  string
		ratio float32
		want  Vector
	}{
		{"start", 0, Vec(0, 0, 0)},
		{"halfway by arc length", 0.5, Vec(5, 5, 0)},
		{"end", 1, Vec(10, 10, 0)},
		{"extrapolated", 1.2, Vec(12, 12, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Interpolate(tt.ratio); !vecsEqual(got, tt.want, 1e-4) {
				t.Errorf("Interpolate(%v) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestPath_InterpolateEmpty(t *testing.T) {
	var p Path
	if got := p.Interpolate(0.5); got != (Vector{}) {
		t.Errorf("empty path Interpolate = %v, want zero vector", got)
	}
}

func TestPath_Length(t *testing.T) {
	b1 := QuadBezier(
		Vec(0, 0, 0),
		Vec(1, 1, 0),
		Vec(2, 2, 0),
	)
	b2 := QuadBezier(
		Vec(2, 2, 0),
		Vec(6, 6, 0),
		Vec(10, 10, 0),
	)
	p := NewPath([]Bezier{b1, b2})

	if got := p.Length(20); abs32(got-14.142137) > 1e-3 {
		t.Errorf("Length(20) = %v, want 14.142137", got)
	}

	normalized := p.Lengths[0] + p.Lengths[1]
	if abs32(normalized-1) > epsilon {
		t.Errorf("normalized lengths sum to %v, want 1", normalized)
	}
}

func BenchmarkPath_Interpolate(b *testing.B) {
	curves := make([]Bezier, 8)
	for i := range curves {
		f := float32(i)
		curves[i] = CubicBezier(
			Vec(f, 0, 0),
			Vec(f+0.3, 1, 0),
			Vec(f+0.6, -1, 0),
			Vec(f+1, 0, 0),
		)
	}
	p := NewPath(curves)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Interpolate(float32(i%1000) / 1000)
	}
}
