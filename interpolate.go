package anima

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Interpolated is implemented by types that support two-way interpolation,
// not necessarily linear. Vector and Quaternion implement it.
//
// Example:
//
//	type Object struct {
//		Height float32
//	}
//
//	func (o Object) Interpolate(other Object, ratio float32) Object {
//		return Object{Height: (1-ratio)*o.Height + ratio*other.Height}
//	}
type Interpolated[T any] interface {
	Interpolate(other T, ratio float32) T
}

// Behavior selects the easing applied by an Interpolator.
type Behavior int

const (
	// Linear easing, i(t) = t.
	Linear Behavior = iota
	// Acc accelerates, i(t) = t².
	Acc
	// Dec decelerates, i(t) = 1 - (1-t)².
	Dec
	// AccDec accelerates then decelerates, i(t) = cos((t+1)π)/2 + 0.5.
	AccDec
)

// String returns the behavior name as used in animation data files.
func (b Behavior) String() string {
	switch b {
	case Linear:
		return "linear"
	case Acc:
		return "acc"
	case Dec:
		return "dec"
	case AccDec:
		return "accdec"
	}
	return fmt.Sprintf("Behavior(%d)", int(b))
}

// MarshalYAML encodes the behavior as its name.
func (b Behavior) MarshalYAML() (interface{}, error) {
	switch b {
	case Linear, Acc, Dec, AccDec:
		return b.String(), nil
	}
	return nil, fmt.Errorf("anima: unknown behavior %d", int(b))
}

// UnmarshalYAML decodes a behavior from its name.
func (b *Behavior) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("anima: decode behavior: %w", err)
	}
	switch name {
	case "linear":
		*b = Linear
	case "acc":
		*b = Acc
	case "dec":
		*b = Dec
	case "accdec":
		*b = AccDec
	default:
		return fmt.Errorf("anima: behavior must be one of linear, acc, dec, accdec; got %q", name)
	}
	return nil
}

// Interpolator computes interpolation ratios over a time window.
//
// Example:
//
//	i := anima.NewInterpolator(10, 5, anima.Linear)
//	r := i.Ratio(12.5) // 0.5
type Interpolator struct {
	// Start is the time that maps to ratio 0.
	Start float32 `yaml:"start"`
	// Duration is the window length; Start+Duration maps to ratio 1.
	Duration float32 `yaml:"duration"`
	// Behavior is the easing applied to the ratio.
	Behavior Behavior `yaml:"behavior"`
}

// NewInterpolator creates an interpolator from its starting time, duration
// and easing behavior.
func NewInterpolator(start, duration float32, behavior Behavior) Interpolator {
	return Interpolator{Start: start, Duration: duration, Behavior: behavior}
}

// Ratio computes the eased ratio for a given time. Times inside the window
// produce ratios between 0 and 1.
func (i Interpolator) Ratio(time float32) float32 {
	ratio := (time - i.Start) / i.Duration
	switch i.Behavior {
	case Acc:
		return ratio * ratio
	case Dec:
		return 1 - (1-ratio)*(1-ratio)
	case AccDec:
		return float32(math.Cos(float64(ratio+1)*math.Pi))/2 + 0.5
	}
	return ratio
}
