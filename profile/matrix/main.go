// Profiling:
// go build ./profile/matrix
// go tool pprof -http=":8000" -nodefraction=0.001 ./matrix mem.pprof

package main

import (
	"math"

	"github.com/anima-engine/anima"
	"github.com/pkg/profile"
)

func main() {
	rounds := 100
	iters := 100000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters)
	p.Stop()
}

func run(rounds, iters int) {
	q := anima.QuatRot(anima.Up, float32(math.Pi)/3)

	var sink anima.Matrix
	for range rounds {
		m := anima.MatrixIdent()
		for i := range iters {
			m = m.Rot(q).Trans(anima.Vec(1, 0, 0)).Scale(anima.VecUniform(1))
			if i%1000 == 0 {
				if inv, ok := m.Inv(); ok {
					sink = inv
				}
				m = anima.MatrixIdent()
			}
		}
	}
	_ = sink
}
