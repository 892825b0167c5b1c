package input

import "time"

// buttonOrder fixes the emit order of held-button events so processing is
// deterministic frame to frame.
var buttonOrder = [...]MouseButton{LeftButton, RightButton, MiddleButton}

// Cursor folds raw mouse events into cursor state and emits cursor events.
// While a button stays down, CursorPressed is re-emitted every frame at the
// last known cursor position.
type Cursor struct {
	x, y    int
	hasPos  bool
	pressed map[MouseButton]bool
}

// NewCursor creates a Cursor without an initial position and without any
// pressed buttons.
func NewCursor() *Cursor {
	return &Cursor{pressed: make(map[MouseButton]bool)}
}

// Pos returns the last known cursor position. ok is false until the first
// RawMove has been processed.
func (c *Cursor) Pos() (x, y int, ok bool) {
	return c.x, c.y, c.hasPos
}

// Process consumes raw mouse events and appends cursor events for held
// buttons. Events it does not understand pass through unchanged.
func (c *Cursor) Process(events []Event, _ time.Duration) []Event {
	out := events[:0]
	for _, ev := range events {
		switch ev := ev.(type) {
		case RawMove:
			c.x, c.y = ev.X, ev.Y
			c.hasPos = true
		case RawMouse:
			switch ev.State {
			case Pressed:
				c.pressed[ev.Button] = true
			case Released:
				c.pressed[ev.Button] = false
				if c.hasPos {
					out = append(out, CursorReleased{X: c.x, Y: c.y, Button: ev.Button})
				}
			}
		default:
			out = append(out, ev)
		}
	}

	if c.hasPos {
		for _, b := range buttonOrder {
			if c.pressed[b] {
				out = append(out, CursorPressed{X: c.x, Y: c.y, Button: b})
			}
		}
	}

	return out
}
