package navigation

// State holds the scroll state of the results container
type State struct {
	Offset         int // scrollTop, in lines
	ContentHeight  int // scrollHeight
	ViewportHeight int // clientHeight

	target    int
	animating bool
}

// MaxOffset is the largest valid offset, scrollHeight - clientHeight
func (s State) MaxOffset() int {
	if s.ContentHeight <= s.ViewportHeight {
		return 0
	}
	return s.ContentHeight - s.ViewportHeight
}

// ScrollChangedEvent is published after every change of the scroll offset
type ScrollChangedEvent struct {
	Y    int
	MaxY int
}
