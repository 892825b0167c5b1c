// Package input converts raw device events into higher-level intermediate
// events through chains of processors. Raw events enter the pipeline once
// per frame; processors consume the events they understand and pass the
// rest along untouched.
package input

// MouseButton identifies a mouse button.
type MouseButton int

const (
	// LeftButton is the primary mouse button.
	LeftButton MouseButton = iota
	// RightButton is the secondary mouse button.
	RightButton
	// MiddleButton is the wheel button.
	MiddleButton
)

// String returns the button name as used in layout files.
func (b MouseButton) String() string {
	switch b {
	case LeftButton:
		return "left"
	case RightButton:
		return "right"
	case MiddleButton:
		return "middle"
	}
	return "unknown"
}

// ElementState reports whether a device element went down or up.
type ElementState int

const (
	// Pressed means the element went down.
	Pressed ElementState = iota
	// Released means the element went up.
	Released
)

// TouchPhase describes the lifecycle stage of a touch.
type TouchPhase int

const (
	// TouchStarted is the first contact of a touch.
	TouchStarted TouchPhase = iota
	// TouchMoved is a position update of an ongoing touch.
	TouchMoved
	// TouchEnded is a touch lifted normally.
	TouchEnded
	// TouchCanceled is a touch aborted by the system.
	TouchCanceled
)

// Event is either a raw device event or an intermediate event produced by a
// processor. The set of events is closed; processors type-switch over it.
type Event interface {
	event()
}

// RawMove is a raw mouse movement to an absolute position.
type RawMove struct {
	X, Y int
}

// RawMouse is a raw mouse button state change.
type RawMouse struct {
	State  ElementState
	Button MouseButton
}

// RawTouch is a raw touch update at an absolute position.
type RawTouch struct {
	Phase TouchPhase
	X, Y  int
}

// CursorPressed reports a held mouse button at the cursor position. Cursor
// re-emits it every frame while the button stays down.
type CursorPressed struct {
	X, Y   int
	Button MouseButton
}

// CursorReleased reports a mouse button release at the cursor position.
type CursorReleased struct {
	X, Y   int
	Button MouseButton
}

// ButtonPressed reports a held on-screen button.
type ButtonPressed struct {
	ID uint32
}

// ButtonReleased reports an on-screen button released inside its bounds.
type ButtonReleased struct {
	ID uint32
}

// ButtonCanceled reports a press that ended outside the button bounds.
type ButtonCanceled struct {
	ID uint32
}

// SelectablePressed reports a press held at its anchor inside an area.
type SelectablePressed struct {
	ID   uint32
	X, Y int
}

// SelectableDragged reports a press moved away from its anchor inside an area.
type SelectableDragged struct {
	ID   uint32
	X, Y int
}

// SelectableReleased reports a press released inside an area.
type SelectableReleased struct {
	ID   uint32
	X, Y int
}

// SelectableSpecialPressed is SelectablePressed for an area's special button.
type SelectableSpecialPressed struct {
	ID   uint32
	X, Y int
}

// SelectableSpecialDragged is SelectableDragged for an area's special button.
type SelectableSpecialDragged struct {
	ID   uint32
	X, Y int
}

// SelectableSpecialReleased is SelectableReleased for an area's special button.
type SelectableSpecialReleased struct {
	ID   uint32
	X, Y int
}

func (RawMove) event()  {}
func (RawMouse) event() {}
func (RawTouch) event() {}

func (CursorPressed) event()  {}
func (CursorReleased) event() {}

func (ButtonPressed) event()  {}
func (ButtonReleased) event() {}
func (ButtonCanceled) event() {}

func (SelectablePressed) event()         {}
func (SelectableDragged) event()         {}
func (SelectableReleased) event()        {}
func (SelectableSpecialPressed) event()  {}
func (SelectableSpecialDragged) event()  {}
func (SelectableSpecialReleased) event() {}
