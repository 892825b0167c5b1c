package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/anima-engine/anima"
)

// Option configures a Loop during creation.
//
// Example:
//
//	// Variable timestep, as fast as the game runs.
//	loop := game.NewLoop(myGame)
//
//	// Fixed 60 updates per second.
//	loop := game.NewLoop(myGame, game.WithFixedStep(time.Second/60))
type Option func(*Loop)

// WithFixedStep switches the loop to a fixed timestep: frame time
// accumulates and the game is updated in steps of exactly d. A step of 0
// restores the variable timestep.
func WithFixedStep(d time.Duration) Option {
	return func(l *Loop) {
		l.fixedStep = d
	}
}

// WithMaxFrameTime clamps the measured frame time to d, so a stall (debugger
// pause, window drag) does not flood the game with a giant dt. Zero disables
// clamping.
func WithMaxFrameTime(d time.Duration) Option {
	return func(l *Loop) {
		l.maxFrame = d
	}
}

// WithClock sets the clock used for frame timing. Tests inject a manual
// clock to drive frames deterministically.
func WithClock(c Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

// Loop runs a Game, feeding it the time between frames.
type Loop struct {
	game      Game
	clock     Clock
	fixedStep time.Duration
	maxFrame  time.Duration
}

// NewLoop creates a Loop for a game. Without options the loop uses a
// variable timestep on the wall clock.
func NewLoop(game Game, opts ...Option) *Loop {
	l := &Loop{game: game, clock: realClock{}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run updates the game until it returns false or the context is canceled.
// It returns nil when the game stopped itself and ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	log := anima.Logger()
	log.Info("loop started",
		slog.Duration("fixed_step", l.fixedStep),
		slog.Duration("max_frame_time", l.maxFrame))

	var acc time.Duration
	last := l.clock.Now()

	for {
		select {
		case <-ctx.Done():
			log.Info("loop canceled", slog.Any("cause", context.Cause(ctx)))
			return ctx.Err()
		default:
		}

		now := l.clock.Now()
		dt := now.Sub(last)
		last = now

		if l.maxFrame > 0 && dt > l.maxFrame {
			log.Warn("frame time clamped",
				slog.Duration("dt", dt),
				slog.Duration("max", l.maxFrame))
			dt = l.maxFrame
		}

		if l.fixedStep <= 0 {
			if !l.game.Update(dt) {
				log.Info("loop stopped")
				return nil
			}
			continue
		}

		acc += dt
		updates := 0
		for acc >= l.fixedStep {
			acc -= l.fixedStep
			updates++
			if !l.game.Update(l.fixedStep) {
				log.Info("loop stopped")
				return nil
			}
		}
		log.Debug("frame",
			slog.Duration("dt", dt),
			slog.Int("updates", updates))

		// Nothing due yet; give the accumulator time to fill.
		if wait := l.fixedStep - acc; wait > 0 {
			l.clock.Sleep(wait)
		}
	}
}
