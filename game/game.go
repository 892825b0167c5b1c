// Package game runs games in a frame loop. A Game receives the time since
// the last update and reports whether it wants to keep running; the Loop
// handles timing, clamping and cancellation around it.
package game

import "time"

// Game is run by a Loop. dt is the time since the last update. Update
// returns false when the game needs to stop.
//
// Example:
//
//	type MyGame struct{}
//
//	func (MyGame) Update(dt time.Duration) bool {
//		// Advance game state by dt.
//		// Return false when the game needs to stop.
//		return false
//	}
//
//	game.NewLoop(MyGame{}).Run(context.Background())
type Game interface {
	Update(dt time.Duration) bool
}

// GameFunc adapts a plain function to the Game interface.
type GameFunc func(dt time.Duration) bool

// Update calls f.
func (f GameFunc) Update(dt time.Duration) bool {
	return f(dt)
}
