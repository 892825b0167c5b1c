package input

import (
	"testing"

	"github.com/anima-engine/anima/event"
)

func TestPipeline_RawToIntermediate(t *testing.T) {
	p := NewPipeline(
		NewCursor(),
		NewButton(1, 40, 40, 20, 20),
	)

	events := p.Process([]Event{
		RawMove{X: 50, Y: 50},
		RawMouse{State: Pressed, Button: LeftButton},
	}, 0)

	if len(events) != 1 || events[0] != (ButtonPressed{ID: 1}) {
		t.Errorf("events = %v, want [ButtonPressed 1]", events)
	}
}

func TestPipeline_OrderMatters(t *testing.T) {
	// The button sits inside the area; the button runs first and consumes
	// the press before the area sees it.
	p := NewPipeline(
		NewCursor(),
		NewButton(1, 40, 40, 20, 20),
		NewArea(2, 0, 0, 100, 100, nil),
	)

	events := p.Process([]Event{
		RawMove{X: 50, Y: 50},
		RawMouse{State: Pressed, Button: LeftButton},
	}, 0)

	if len(events) != 1 || events[0] != (ButtonPressed{ID: 1}) {
		t.Errorf("events = %v, want [ButtonPressed 1]", events)
	}
}

func TestPipeline_Append(t *testing.T) {
	p := NewPipeline(NewCursor())
	p.Append(NewButton(1, 0, 0, 10, 10))

	events := p.Process([]Event{
		RawMove{X: 5, Y: 5},
		RawMouse{State: Pressed, Button: LeftButton},
	}, 0)

	if len(events) != 1 || events[0] != (ButtonPressed{ID: 1}) {
		t.Errorf("events = %v, want [ButtonPressed 1]", events)
	}
}

func TestDispatch(t *testing.T) {
	var bus event.Bus
	var pressed []uint32
	var released []uint32

	event.Subscribe(&bus, func(e ButtonPressed) { pressed = append(pressed, e.ID) })
	event.Subscribe(&bus, func(e ButtonReleased) { released = append(released, e.ID) })

	Dispatch(&bus, []Event{
		ButtonPressed{ID: 1},
		ButtonPressed{ID: 2},
		ButtonReleased{ID: 1},
		RawMove{X: 1, Y: 1}, // raw events are not published
	})

	if len(pressed) != 2 || pressed[0] != 1 || pressed[1] != 2 {
		t.Errorf("pressed = %v, want [1 2]", pressed)
	}
	if len(released) != 1 || released[0] != 1 {
		t.Errorf("released = %v, want [1]", released)
	}
}
