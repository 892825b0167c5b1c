package game

import (
	"context"
	"errors"
	"testing"
	"time"
)

// manualClock advances by a fixed amount on every Now call and records
// sleeps instead of blocking.
type manualClock struct {
	now   time.Time
	step  time.Duration
	slept []time.Duration
}

func newManualClock(step time.Duration) *manualClock {
	return &manualClock{now: time.Unix(0, 0), step: step}
}

func (c *manualClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func (c *manualClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
}

func TestLoop_VariableStep(t *testing.T) {
	var dts []time.Duration
	game := GameFunc(func(dt time.Duration) bool {
		dts = append(dts, dt)
		return len(dts) < 3
	})

	l := NewLoop(game, WithClock(newManualClock(10*time.Millisecond)))
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(dts) != 3 {
		t.Fatalf("got %d updates, want 3", len(dts))
	}
	for i, dt := range dts {
		if dt != 10*time.Millisecond {
			t.Errorf("update %d: dt = %s, want 10ms", i, dt)
		}
	}
}

func TestLoop_MaxFrameTime(t *testing.T) {
	var got time.Duration
	game := GameFunc(func(dt time.Duration) bool {
		got = dt
		return false
	})

	l := NewLoop(game,
		WithClock(newManualClock(500*time.Millisecond)),
		WithMaxFrameTime(100*time.Millisecond))
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got != 100*time.Millisecond {
		t.Errorf("dt = %s, want clamped 100ms", got)
	}
}

func TestLoop_FixedStep(t *testing.T) {
	var dts []time.Duration
	game := GameFunc(func(dt time.Duration) bool {
		dts = append(dts, dt)
		return len(dts) < 4
	})

	clock := newManualClock(25 * time.Millisecond)
	l := NewLoop(game, WithClock(clock), WithFixedStep(10*time.Millisecond))
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// 25ms frames produce two 10ms updates each, so the game stops during
	// the second frame.
	if len(dts) != 4 {
		t.Fatalf("got %d updates, want 4", len(dts))
	}
	for i, dt := range dts {
		if dt != 10*time.Millisecond {
			t.Errorf("update %d: dt = %s, want fixed 10ms", i, dt)
		}
	}
	// The first frame left 5ms in the accumulator.
	if len(clock.slept) != 1 || clock.slept[0] != 5*time.Millisecond {
		t.Errorf("slept = %v, want [5ms]", clock.slept)
	}
}

func TestLoop_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	game := GameFunc(func(time.Duration) bool {
		cancel()
		return true
	})

	l := NewLoop(game, WithClock(newManualClock(10*time.Millisecond)))
	if err := l.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}

func TestGameFunc(t *testing.T) {
	called := false
	f := GameFunc(func(dt time.Duration) bool {
		called = true
		return dt > 0
	})

	if !f.Update(time.Second) {
		t.Error("Update(1s) = false, want true")
	}
	if !called {
		t.Error("GameFunc did not call the wrapped function")
	}
}
