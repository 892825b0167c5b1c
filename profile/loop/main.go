// Profiling:
// go build ./profile/loop
// go tool pprof -http=":8000" -nodefraction=0.001 ./loop cpu.pprof

package main

import (
	"context"
	"log"
	"time"

	"github.com/anima-engine/anima"
	"github.com/anima-engine/anima/game"
	"github.com/pkg/profile"
)

// stepClock drives the loop without sleeping so the profile measures
// update work, not waiting.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(16 * time.Millisecond)
	return c.now
}

func (c *stepClock) Sleep(time.Duration) {}

func main() {
	updates := 1000000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(updates)
	p.Stop()
}

func run(updates int) {
	q := anima.QuatRot(anima.Up, 0.01)
	pos := anima.Vec(1, 0, 0)

	n := 0
	g := game.GameFunc(func(dt time.Duration) bool {
		pos = pos.Rot(q)
		n++
		return n < updates
	})

	loop := game.NewLoop(g,
		game.WithFixedStep(16*time.Millisecond),
		game.WithClock(&stepClock{now: time.Unix(0, 0)}))
	if err := loop.Run(context.Background()); err != nil {
		log.Fatalf("Loop failed: %v", err)
	}
}
