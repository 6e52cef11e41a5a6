package domain

// EventType represents the type of an event sent to the host
type EventType string

// Event types understood by the host
const (
	EventSearch  EventType = "search"
	EventKeydown EventType = "keydown"
	EventClick   EventType = "click"
	EventScroll  EventType = "scroll"
)

// ClickType distinguishes single from double clicks
type ClickType string

const (
	ClickSingle ClickType = "single"
	ClickDouble ClickType = "double"
)

// Payload holds the event fields merged next to "type" on the wire
type Payload map[string]any

// HostEvent is the interface for all events forwarded to the host
type HostEvent interface {
	Type() EventType
	Payload() Payload
}

// SearchEvent is emitted when the search text changes
type SearchEvent struct {
	Value string
}

func (e SearchEvent) Type() EventType { return EventSearch }
func (e SearchEvent) Payload() Payload {
	return Payload{"value": e.Value}
}

// KeydownEvent is emitted for every key press
type KeydownEvent struct {
	Key   string
	Ctrl  bool
	Shift bool
}

func (e KeydownEvent) Type() EventType { return EventKeydown }
func (e KeydownEvent) Payload() Payload {
	return Payload{"key": e.Key, "ctrl": e.Ctrl, "shift": e.Shift}
}

// ClickEvent is emitted when a row is clicked or double-clicked
type ClickEvent struct {
	ClickType ClickType
	ID        string
}

func (e ClickEvent) Type() EventType { return EventClick }
func (e ClickEvent) Payload() Payload {
	return Payload{"click_type": string(e.ClickType), "id": e.ID}
}

// ScrollEvent is emitted whenever the results container scrolls
type ScrollEvent struct {
	Y    int
	MaxY int
}

func (e ScrollEvent) Type() EventType { return EventScroll }
func (e ScrollEvent) Payload() Payload {
	return Payload{"y": e.Y, "maxy": e.MaxY}
}
