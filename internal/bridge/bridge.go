package bridge

import (
	"encoding/json"
	"fmt"
	"log"
	"runtime/debug"
	"sync"

	"launchview/internal/domain"
)

// outboxSize bounds the number of messages waiting for the sink
const outboxSize = 1000

// Sink is the host's message ingestion entry point
type Sink interface {
	Post(message []byte) error
}

// Emitter sends typed events to the host
type Emitter interface {
	Emit(event domain.HostEvent)
}

// Bridge is the one-way, fire-and-forget channel from the view to the host
type Bridge struct {
	sink   Sink
	outbox chan []byte
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// New creates a bridge delivering to sink
func New(sink Sink) *Bridge {
	b := &Bridge{
		sink:   sink,
		outbox: make(chan []byte, outboxSize),
	}

	// Start the dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Send encodes {type, ...payload} and hands it to the host.
// It never blocks on the host and never reports failures.
func (b *Bridge) Send(eventType domain.EventType, payload domain.Payload) {
	message, err := Encode(eventType, payload)
	if err != nil {
		log.Printf("Bridge: dropping %s event: %v", eventType, err)
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		log.Printf("Bridge: closed, dropping %s event", eventType)
		return
	}

	select {
	case b.outbox <- message:
	default:
		// Outbox full, log and drop
		log.Printf("Bridge: outbox full, dropping %s event", eventType)
	}
}

// Emit sends a typed event
func (b *Bridge) Emit(event domain.HostEvent) {
	b.Send(event.Type(), event.Payload())
}

// Close delivers pending messages and stops the dispatcher
func (b *Bridge) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.outbox)
	b.mu.Unlock()

	b.wg.Wait()
}

// dispatch delivers messages to the sink in the order they were sent
func (b *Bridge) dispatch() {
	defer b.wg.Done()

	for message := range b.outbox {
		b.post(message)
	}
}

func (b *Bridge) post(message []byte) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Bridge: sink panic: %v\nStack: %s", r, debug.Stack())
		}
	}()
	if err := b.sink.Post(message); err != nil {
		log.Printf("Bridge: host unavailable: %v", err)
	}
}

// Encode builds the wire form of an event. Payload keys are merged after
// "type", so a payload "type" key replaces the event type.
func Encode(eventType domain.EventType, payload domain.Payload) ([]byte, error) {
	message := make(map[string]any, len(payload)+1)
	message["type"] = string(eventType)
	for k, v := range payload {
		message[k] = v
	}
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s event: %w", eventType, err)
	}
	return data, nil
}
