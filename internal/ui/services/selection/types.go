package selection

import (
	"launchview/internal/dom"
)

// State holds the navigation state of the result list
type State struct {
	Position    int
	Subposition *int // nil while no submenu is open
}

// InSubmenu reports whether an action of the current result is highlighted
func (s State) InSubmenu() bool {
	return s.Subposition != nil
}

// Document is the view tree the controller marks
type Document interface {
	ElementByID(id string) *dom.Element
	ElementsByClass(class string) []*dom.Element
	SetInnerHTML(markup string) error
	AppendHTML(markup string) error
}

// Scroller brings an element into the visible part of the results container
type Scroller interface {
	ScrollIntoView(el *dom.Element, smooth bool)
}
