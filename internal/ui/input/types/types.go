package types

import "time"

// KeyInput is a key press delivered at document scope
type KeyInput struct {
	Key   string // DOM key name, e.g. "ArrowUp", "Enter", "a"
	Ctrl  bool
	Shift bool
	Alt   bool

	defaultPrevented bool
}

// PreventDefault stops the key from reaching the search field or the results container
func (k *KeyInput) PreventDefault() {
	k.defaultPrevented = true
}

// DefaultPrevented reports whether a handler suppressed the default handling
func (k *KeyInput) DefaultPrevented() bool {
	return k.defaultPrevented
}

// PointerInput is a button press on the element with the given id
type PointerInput struct {
	ID string
	At time.Time
}

// SearchInput reports the search field value after it changed
type SearchInput struct {
	Value string
}

// ReadyInput is published once when the view is ready for input
type ReadyInput struct{}
