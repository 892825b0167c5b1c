// Package event provides a typed publish/subscribe bus for decoupled
// communication between engine systems, such as fanning input events out to
// game code once per frame.
package event

import "reflect"

// MaxTypes defines the maximum number of unique event types that can be
// registered on a Bus.
const MaxTypes = 256

// Bus routes published values to handlers subscribed to their type.
// Handlers run synchronously in subscription order; Publish does not
// allocate, making it safe to call from the frame loop.
//
// A Bus must not be shared between goroutines without external locking;
// engine systems publish from the frame loop only.
type Bus struct {
	typeIDs  map[reflect.Type]uint8
	handlers [MaxTypes][]interface{}
	nextID   uint8
}

// Subscribe registers a handler for events of type T. Handlers are called in
// the order they were subscribed.
func Subscribe[T any](bus *Bus, handler func(T)) {
	t := reflect.TypeFor[T]()
	id := bus.typeID(t)
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]interface{}, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish delivers an event of type T to every handler subscribed to T.
// Publishing a type with no subscribers is a no-op.
func Publish[T any](bus *Bus, ev T) {
	t := reflect.TypeFor[T]()
	if id, ok := bus.typeIDs[t]; ok {
		for _, h := range bus.handlers[id] {
			h.(func(T))(ev)
		}
	}
}

// typeID retrieves or assigns the ID for an event type.
func (bus *Bus) typeID(t reflect.Type) uint8 {
	if bus.typeIDs == nil {
		bus.typeIDs = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.typeIDs[t]; ok {
		return id
	}
	id := bus.nextID
	bus.nextID++
	if int(id) >= MaxTypes {
		panic("event: too many event types")
	}
	bus.typeIDs[t] = id
	return id
}
