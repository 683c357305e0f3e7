package flyweight

import "github.com/google/uuid"

// Event classifies a factory cache operation.
type Event string

// Event kinds delivered to observers.
const (
	// EventHit means Acquire returned an already-cached instance.
	EventHit Event = "hit"
	// EventConstruct means Acquire constructed and cached a new instance.
	EventConstruct Event = "construct"
	// EventError means construction failed; nothing was cached.
	EventError Event = "error"
)

// EventData describes a single factory cache operation.
type EventData struct {
	// ID uniquely identifies this event.
	ID string
	// Event is the kind of operation.
	Event Event
	// Identifier is the identifier passed to Acquire.
	Identifier string
	// Key is the derived cache key.
	Key string
}

// Observer receives factory cache events. Implementations must be safe
// for concurrent use; On is called synchronously from Acquire.
type Observer interface {
	On(EventData)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(EventData)

// On implements Observer.
func (f ObserverFunc) On(data EventData) {
	f(data)
}

// notify delivers an event to the configured observer, if any.
func (f *Factory[V]) notify(event Event, identifier, key string) {
	if f.opts.observer == nil {
		return
	}
	f.opts.observer.On(EventData{
		ID:         uuid.NewString(),
		Event:      event,
		Identifier: identifier,
		Key:        key,
	})
}
