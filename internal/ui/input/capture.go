package input

import (
	"time"

	"launchview/internal/bridge"
	"launchview/internal/domain"
	"launchview/internal/ui/input/types"
	"launchview/internal/ui/services/events"
	"launchview/internal/ui/services/navigation"
)

// DefaultDoubleClickWindow is the longest gap between two presses that still counts as a double click
const DefaultDoubleClickWindow = 400 * time.Millisecond

// Capture translates raw view input into bridge events
type Capture struct {
	emitter           bridge.Emitter
	doubleClickWindow time.Duration

	lastClickID string
	lastClickAt time.Time
}

// NewCapture creates an input capture forwarding to emitter
func NewCapture(emitter bridge.Emitter, doubleClickWindow time.Duration) *Capture {
	if doubleClickWindow <= 0 {
		doubleClickWindow = DefaultDoubleClickWindow
	}
	return &Capture{
		emitter:           emitter,
		doubleClickWindow: doubleClickWindow,
	}
}

// Register binds the capture handlers to their input sources
func (c *Capture) Register(bus events.EventBus) {
	bus.Subscribe(events.TypeOf(&types.KeyInput{}), func(e interface{}) {
		c.Keydown(e.(*types.KeyInput))
	})
	bus.Subscribe(events.TypeOf(types.SearchInput{}), func(e interface{}) {
		c.Search(e.(types.SearchInput))
	})
	bus.Subscribe(events.TypeOf(types.PointerInput{}), func(e interface{}) {
		c.Click(e.(types.PointerInput))
	})
	bus.Subscribe(events.TypeOf(navigation.ScrollChangedEvent{}), func(e interface{}) {
		c.Scroll(e.(navigation.ScrollChangedEvent))
	})
}

// Search forwards the search field value
func (c *Capture) Search(in types.SearchInput) {
	c.emitter.Emit(domain.SearchEvent{Value: in.Value})
}

// Keydown forwards a key press; navigation keys lose their default handling
func (c *Capture) Keydown(in *types.KeyInput) {
	if PreventsDefault(in.Key) {
		in.PreventDefault()
	}
	c.emitter.Emit(domain.KeydownEvent{Key: in.Key, Ctrl: in.Ctrl, Shift: in.Shift})
}

// Click forwards a press on a row, followed by a double click when it
// repeats a press on the same row within the double-click window
func (c *Capture) Click(in types.PointerInput) {
	c.emitter.Emit(domain.ClickEvent{ClickType: domain.ClickSingle, ID: in.ID})

	if in.ID == c.lastClickID && !c.lastClickAt.IsZero() && in.At.Sub(c.lastClickAt) <= c.doubleClickWindow {
		c.emitter.Emit(domain.ClickEvent{ClickType: domain.ClickDouble, ID: in.ID})
		// A third press starts a new pair
		c.lastClickID = ""
		c.lastClickAt = time.Time{}
		return
	}
	c.lastClickID = in.ID
	c.lastClickAt = in.At
}

// Scroll forwards the results container scroll position
func (c *Capture) Scroll(ev navigation.ScrollChangedEvent) {
	c.emitter.Emit(domain.ScrollEvent{Y: ev.Y, MaxY: ev.MaxY})
}
