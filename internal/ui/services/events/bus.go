package events

import (
	"fmt"
)

// Bus dispatches view events to the handlers registered for them.
// Handlers run synchronously, in registration order, on the caller's goroutine.
type Bus struct {
	listeners map[string][]*listener
}

type listener struct {
	handler func(interface{})
	once    bool
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]*listener),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.listeners[eventType] = append(b.listeners[eventType], &listener{handler: handler})
}

// SubscribeOnce registers a listener that is removed after its first call
func (b *Bus) SubscribeOnce(eventType string, handler func(interface{})) {
	b.listeners[eventType] = append(b.listeners[eventType], &listener{handler: handler, once: true})
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	eventType := TypeOf(event)

	handlers := b.listeners[eventType]
	if len(handlers) == 0 {
		return
	}

	// Drop one-shot listeners before running them so re-entrant publishes skip them
	kept := handlers[:0:0]
	for _, l := range handlers {
		if !l.once {
			kept = append(kept, l)
		}
	}
	b.listeners[eventType] = kept

	for _, l := range handlers {
		l.handler(event)
	}
}

// TypeOf returns the event type key of an event value
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
