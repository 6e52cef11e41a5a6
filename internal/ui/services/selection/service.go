package selection

import (
	"log"

	"launchview/internal/domain"
)

// Service keeps the selection state and the view tree marks consistent
type Service struct {
	state    *State
	doc      Document
	scroller Scroller
}

// NewService creates a new selection service
func NewService(doc Document, scroller Scroller) *Service {
	return &Service{
		state:    &State{},
		doc:      doc,
		scroller: scroller,
	}
}

// State returns a copy of the current selection state
func (s *Service) State() State {
	st := *s.state
	if st.Subposition != nil {
		sub := *st.Subposition
		st.Subposition = &sub
	}
	return st
}

// Reset removes the active and selected marks from every element
func (s *Service) Reset() {
	for _, class := range []string{domain.ClassActive, domain.ClassSelected} {
		for _, el := range s.doc.ElementsByClass(class) {
			el.RemoveClass(class)
		}
	}
}

// SetPos selects the result at pos and scrolls it into view.
// Unknown positions leave nothing selected and the state untouched.
func (s *Service) SetPos(pos int, smooth bool) {
	s.Reset()

	current := s.doc.ElementByID(domain.ResultID(pos))
	if current == nil {
		return
	}
	current.AddClass(domain.ClassSelected)
	s.state.Position = pos
	s.state.Subposition = nil

	s.scroller.ScrollIntoView(current, smooth)
}

// SubPos opens the actions of the result at pos and selects action sub.
// When the container exists but the action does not, the container stays
// active with nothing selected.
func (s *Service) SubPos(pos, sub int) {
	s.Reset()

	actions := s.doc.ElementByID(domain.ActionsID(pos))
	if actions == nil {
		return
	}
	actions.AddClass(domain.ClassActive)

	action := s.doc.ElementByID(domain.ActionID(pos, sub))
	if action == nil {
		return
	}
	action.AddClass(domain.ClassSelected)
	s.state.Position = pos
	s.state.Subposition = &sub
}

// Update replaces all results and selects the first one
func (s *Service) Update(markup string) {
	if err := s.doc.SetInnerHTML(markup); err != nil {
		log.Printf("Selection: update failed: %v", err)
	}
	s.SetPos(0, false)
}

// Append adds results after the current ones. A nil pos keeps the selection.
func (s *Service) Append(pos *int, markup string, smooth bool) {
	if err := s.doc.AppendHTML(markup); err != nil {
		log.Printf("Selection: append failed: %v", err)
	}
	if pos != nil {
		s.SetPos(*pos, smooth)
	}
}
