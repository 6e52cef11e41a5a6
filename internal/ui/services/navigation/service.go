package navigation

import (
	"launchview/internal/ui/services/events"
)

// Service owns the scroll offset of the results container
type Service struct {
	state *State
	bus   events.Publisher
}

// NewService creates a new navigation service
func NewService(bus events.Publisher) *Service {
	if bus == nil {
		bus = events.Discard
	}
	return &Service{
		state: &State{
			ViewportHeight: 1, // Updated on first resize
		},
		bus: bus,
	}
}

// State returns a copy of the current scroll state
func (s *Service) State() State {
	return *s.state
}

// Offset returns the current scroll offset
func (s *Service) Offset() int {
	return s.state.Offset
}

// MaxOffset returns scrollHeight - clientHeight
func (s *Service) MaxOffset() int {
	return s.state.MaxOffset()
}

// SetViewportHeight updates the visible height
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.clamp()
}

// SetContentHeight updates the total content height
func (s *Service) SetContentHeight(height int) {
	if height < 0 {
		height = 0
	}
	s.state.ContentHeight = height
	s.clamp()
}

// ScrollBy scrolls by delta lines, cancelling any running animation
func (s *Service) ScrollBy(delta int) {
	s.state.animating = false
	s.scrollTo(s.state.Offset + delta)
}

// ScrollIntoView centers the line span [start, end) in the viewport.
// Smooth scrolling moves there over several Step calls.
func (s *Service) ScrollIntoView(start, end int, smooth bool) {
	if end < start {
		end = start
	}
	target := s.clampIndex(start + (end-start)/2 - s.state.ViewportHeight/2)

	if !smooth {
		s.state.animating = false
		s.scrollTo(target)
		return
	}
	s.state.target = target
	s.state.animating = target != s.state.Offset
}

// Animating reports whether a smooth scroll is in progress
func (s *Service) Animating() bool {
	return s.state.animating
}

// Step advances a smooth scroll by one frame and reports whether more frames remain
func (s *Service) Step() bool {
	if !s.state.animating {
		return false
	}
	diff := s.state.target - s.state.Offset
	step := diff / 3
	if step == 0 {
		step = diff
	}
	s.scrollTo(s.state.Offset + step)
	if s.state.Offset == s.state.target {
		s.state.animating = false
	}
	return s.state.animating
}

// Helper methods
func (s *Service) clampIndex(offset int) int {
	if offset < 0 {
		return 0
	}
	if maxOffset := s.state.MaxOffset(); offset > maxOffset {
		return maxOffset
	}
	return offset
}

func (s *Service) clamp() {
	s.state.target = s.clampIndex(s.state.target)
	s.scrollTo(s.state.Offset)
	if s.state.target == s.state.Offset {
		s.state.animating = false
	}
}

func (s *Service) scrollTo(offset int) {
	offset = s.clampIndex(offset)
	if offset == s.state.Offset {
		return
	}
	s.state.Offset = offset
	s.bus.Publish(ScrollChangedEvent{
		Y:    s.state.Offset,
		MaxY: s.state.MaxOffset(),
	})
}
