// Profiling:
// go build ./profile/path
// go tool pprof -http=":8000" -nodefraction=0.001 ./path cpu.pprof

package main

import (
	"github.com/anima-engine/anima"
	"github.com/pkg/profile"
)

func main() {
	rounds := 100
	samples := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, samples)
	p.Stop()
}

func run(rounds, samples int) {
	path := anima.NewPath([]anima.Bezier{
		anima.CubicBezier(
			anima.Vec(0, 0, 0),
			anima.Vec(0, 4, 0),
			anima.Vec(4, 4, 0),
			anima.Vec(4, 0, 0),
		),
		anima.QuadBezier(
			anima.Vec(4, 0, 0),
			anima.Vec(8, 0, 0),
			anima.Vec(8, 4, 0),
		),
	})

	var sink anima.Vector
	for range rounds {
		for i := range samples {
			ratio := float32(i) / float32(samples)
			sink = path.Interpolate(ratio)
		}
	}
	_ = sink
}
