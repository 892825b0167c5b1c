package input

import "time"

// Special configures a secondary selection button for an Area.
//
// TODO: treat a touch held for TouchTime as the special button, so special
// selections work on touch devices.
type Special struct {
	Button    MouseButton
	TouchTime time.Duration
}

// Area converts cursor events into selection events for a rectangular
// region. The left button selects and drags; an optional special button
// produces a parallel stream of special selection events.
//
// A selection anchors at the first pressed position: while the cursor stays
// on the anchor the area reports SelectablePressed, and once it moves the
// area reports SelectableDragged at the new position.
type Area struct {
	// ID identifies the area in emitted events.
	ID uint32
	// X, Y is the top-left corner of the area.
	X, Y int
	// Width, Height are the area dimensions.
	Width, Height int

	special       *Special
	pressedAnchor anchor
	specialAnchor anchor
}

type anchor struct {
	x, y int
	set  bool
}

// NewArea creates a rectangular Area with the given ID. special may be nil.
func NewArea(id uint32, x, y, width, height int, special *Special) *Area {
	return &Area{ID: id, X: x, Y: y, Width: width, Height: height, special: special}
}

func (a *Area) inside(x, y int) bool {
	dx := x - a.X
	dy := y - a.Y
	return 0 <= dx && dx <= a.Width && 0 <= dy && dy <= a.Height
}

func (a *Area) isSpecial(b MouseButton) bool {
	return a.special != nil && a.special.Button == b
}

// Process consumes cursor events inside the area and replaces them with
// selection events. Everything else passes through unchanged.
func (a *Area) Process(events []Event, _ time.Duration) []Event {
	out := events[:0]
	for _, ev := range events {
		switch ev := ev.(type) {
		case CursorPressed:
			switch {
			case ev.Button == LeftButton && !a.pressedAnchor.set && a.inside(ev.X, ev.Y):
				a.pressedAnchor = anchor{x: ev.X, y: ev.Y, set: true}
				out = append(out, SelectablePressed{ID: a.ID, X: ev.X, Y: ev.Y})
			case ev.Button == LeftButton && a.pressedAnchor.set && a.inside(ev.X, ev.Y):
				if a.pressedAnchor.x == ev.X && a.pressedAnchor.y == ev.Y {
					out = append(out, SelectablePressed{ID: a.ID, X: ev.X, Y: ev.Y})
				} else {
					out = append(out, SelectableDragged{ID: a.ID, X: ev.X, Y: ev.Y})
				}
			case a.isSpecial(ev.Button) && !a.specialAnchor.set && a.inside(ev.X, ev.Y):
				a.specialAnchor = anchor{x: ev.X, y: ev.Y, set: true}
				out = append(out, SelectableSpecialPressed{ID: a.ID, X: ev.X, Y: ev.Y})
			case a.isSpecial(ev.Button) && a.specialAnchor.set && a.inside(ev.X, ev.Y):
				if a.specialAnchor.x == ev.X && a.specialAnchor.y == ev.Y {
					out = append(out, SelectableSpecialPressed{ID: a.ID, X: ev.X, Y: ev.Y})
				} else {
					out = append(out, SelectableSpecialDragged{ID: a.ID, X: ev.X, Y: ev.Y})
				}
			default:
				out = append(out, ev)
			}
		case CursorReleased:
			switch {
			case ev.Button == LeftButton && a.pressedAnchor.set && a.inside(ev.X, ev.Y):
				a.pressedAnchor = anchor{}
				out = append(out, SelectableReleased{ID: a.ID, X: ev.X, Y: ev.Y})
			case a.isSpecial(ev.Button) && a.specialAnchor.set && a.inside(ev.X, ev.Y):
				a.specialAnchor = anchor{}
				out = append(out, SelectableSpecialReleased{ID: a.ID, X: ev.X, Y: ev.Y})
			default:
				out = append(out, ev)
			}
		default:
			out = append(out, ev)
		}
	}
	return out
}
