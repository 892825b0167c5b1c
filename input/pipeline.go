package input

import (
	"time"

	"github.com/anima-engine/anima/event"
)

// Processor transforms the frame's event stream, consuming the events it
// understands and passing the rest through.
type Processor interface {
	Process(events []Event, dt time.Duration) []Event
}

// Pipeline applies processors in order, once per frame. A typical pipeline
// starts with a Cursor followed by the frame's buttons and areas.
type Pipeline struct {
	procs []Processor
}

// NewPipeline creates a pipeline from processors applied in argument order.
func NewPipeline(procs ...Processor) *Pipeline {
	return &Pipeline{procs: procs}
}

// Append adds processors to the end of the pipeline.
func (p *Pipeline) Append(procs ...Processor) {
	p.procs = append(p.procs, procs...)
}

// Process runs the frame's events through every processor in order and
// returns what remains.
func (p *Pipeline) Process(events []Event, dt time.Duration) []Event {
	for _, proc := range p.procs {
		events = proc.Process(events, dt)
	}
	return events
}

// Dispatch publishes intermediate events onto a bus, one typed publish per
// event. Raw events that survived the pipeline are not published.
func Dispatch(bus *event.Bus, events []Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case CursorPressed:
			event.Publish(bus, ev)
		case CursorReleased:
			event.Publish(bus, ev)
		case ButtonPressed:
			event.Publish(bus, ev)
		case ButtonReleased:
			event.Publish(bus, ev)
		case ButtonCanceled:
			event.Publish(bus, ev)
		case SelectablePressed:
			event.Publish(bus, ev)
		case SelectableDragged:
			event.Publish(bus, ev)
		case SelectableReleased:
			event.Publish(bus, ev)
		case SelectableSpecialPressed:
			event.Publish(bus, ev)
		case SelectableSpecialDragged:
			event.Publish(bus, ev)
		case SelectableSpecialReleased:
			event.Publish(bus, ev)
		}
	}
}
