package input

import "time"

// Button converts cursor and touch events into on-screen button events for a
// rectangular hit area. A press latches: once the button is down, it keeps
// reporting ButtonPressed until released or canceled, even if the pointer
// leaves the area.
type Button struct {
	// ID identifies the button in emitted events.
	ID uint32
	// X, Y is the top-left corner of the hit area.
	X, Y int
	// Width, Height are the hit area dimensions.
	Width, Height int

	pressed bool
}

// NewButton creates a rectangular Button with the given ID.
func NewButton(id uint32, x, y, width, height int) *Button {
	return &Button{ID: id, X: x, Y: y, Width: width, Height: height}
}

func (b *Button) inside(x, y int) bool {
	dx := x - b.X
	dy := y - b.Y
	return 0 <= dx && dx <= b.Width && 0 <= dy && dy <= b.Height
}

// Process consumes cursor and touch events aimed at the button and replaces
// them with button events. Everything else passes through unchanged.
func (b *Button) Process(events []Event, _ time.Duration) []Event {
	out := events[:0]
	for _, ev := range events {
		switch ev := ev.(type) {
		case CursorPressed:
			switch {
			case ev.Button == LeftButton && b.inside(ev.X, ev.Y):
				b.pressed = true
				out = append(out, ButtonPressed{ID: b.ID})
			case ev.Button == LeftButton && b.pressed:
				out = append(out, ButtonPressed{ID: b.ID})
			default:
				out = append(out, ev)
			}
		case CursorReleased:
			if ev.Button == LeftButton && b.pressed {
				b.pressed = false
				if b.inside(ev.X, ev.Y) {
					out = append(out, ButtonReleased{ID: b.ID})
				} else {
					out = append(out, ButtonCanceled{ID: b.ID})
				}
			} else {
				out = append(out, ev)
			}
		case RawTouch:
			out = b.processTouch(out, ev)
		default:
			out = append(out, ev)
		}
	}
	return out
}

func (b *Button) processTouch(out []Event, touch RawTouch) []Event {
	switch touch.Phase {
	case TouchStarted:
		if b.pressed {
			return append(out, ButtonPressed{ID: b.ID})
		}
		if b.inside(touch.X, touch.Y) {
			b.pressed = true
			return append(out, ButtonPressed{ID: b.ID})
		}
	case TouchMoved:
		if b.pressed {
			return append(out, ButtonPressed{ID: b.ID})
		}
	case TouchEnded:
		if b.pressed {
			b.pressed = false
			if b.inside(touch.X, touch.Y) {
				return append(out, ButtonReleased{ID: b.ID})
			}
			return append(out, ButtonCanceled{ID: b.ID})
		}
	case TouchCanceled:
		if b.pressed {
			b.pressed = false
			return append(out, ButtonCanceled{ID: b.ID})
		}
	}
	return append(out, touch)
}
