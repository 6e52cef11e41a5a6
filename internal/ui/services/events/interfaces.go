package events

// Publisher is the side of the bus services emit on
type Publisher interface {
	Publish(event interface{})
}

// EventBus routes UI events to handlers registered by event type
type EventBus interface {
	Publisher
	Subscribe(eventType string, handler func(interface{}))
	SubscribeOnce(eventType string, handler func(interface{}))
}

// Discard drops everything published to it. Services fall back to it when
// constructed without a bus.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(interface{}) {}
