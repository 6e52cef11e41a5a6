package input

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchview/internal/domain"
	"launchview/internal/ui/input/types"
	"launchview/internal/ui/services/events"
	"launchview/internal/ui/services/navigation"
)

type sent struct {
	Type    domain.EventType
	Payload domain.Payload
}

type recordingSender struct {
	sent []sent
}

func (r *recordingSender) Emit(event domain.HostEvent) {
	r.sent = append(r.sent, sent{Type: event.Type(), Payload: event.Payload()})
}

func newRegisteredCapture(t *testing.T) (*events.Bus, *recordingSender) {
	t.Helper()
	bus := events.NewBus()
	sender := &recordingSender{}
	NewCapture(sender, 300*time.Millisecond).Register(bus)
	return bus, sender
}

func TestNavigationKeysArePreventedAndForwardedOnce(t *testing.T) {
	for _, tc := range []struct {
		msg   tea.KeyMsg
		key   string
		ctrl  bool
		shift bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, "ArrowUp", false, false},
		{tea.KeyMsg{Type: tea.KeyDown}, "ArrowDown", false, false},
		{tea.KeyMsg{Type: tea.KeyShiftDown}, "ArrowDown", false, true},
		{tea.KeyMsg{Type: tea.KeyCtrlUp}, "ArrowUp", true, false},
	} {
		bus, sender := newRegisteredCapture(t)
		keys := FromKeyMsg(tc.msg)
		require.Len(t, keys, 1)

		in := keys[0]
		bus.Publish(&in)
		assert.True(t, in.DefaultPrevented(), tc.key)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, sent{
			Type:    domain.EventKeydown,
			Payload: domain.Payload{"key": tc.key, "ctrl": tc.ctrl, "shift": tc.shift},
		}, sender.sent[0])
	}
}

func TestOtherKeysKeepDefault(t *testing.T) {
	bus, sender := newRegisteredCapture(t)

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune{'f'}},
		{Type: tea.KeyLeft},
		{Type: tea.KeyEsc},
	} {
		keys := FromKeyMsg(msg)
		require.Len(t, keys, 1)
		in := keys[0]
		bus.Publish(&in)
		assert.False(t, in.DefaultPrevented(), in.Key)
	}
	assert.Len(t, sender.sent, 4)
}

func TestFromKeyMsgNames(t *testing.T) {
	for _, tc := range []struct {
		msg  tea.KeyMsg
		want types.KeyInput
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, types.KeyInput{Key: "Enter"}},
		{tea.KeyMsg{Type: tea.KeyEsc}, types.KeyInput{Key: "Escape"}},
		{tea.KeyMsg{Type: tea.KeyTab}, types.KeyInput{Key: "Tab"}},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, types.KeyInput{Key: "Tab", Shift: true}},
		{tea.KeyMsg{Type: tea.KeyBackspace}, types.KeyInput{Key: "Backspace"}},
		{tea.KeyMsg{Type: tea.KeySpace}, types.KeyInput{Key: " "}},
		{tea.KeyMsg{Type: tea.KeyPgDown}, types.KeyInput{Key: "PageDown"}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, types.KeyInput{Key: "a"}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'A'}}, types.KeyInput{Key: "A", Shift: true}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, types.KeyInput{Key: "x", Alt: true}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, types.KeyInput{Key: "c", Ctrl: true}},
		{tea.KeyMsg{Type: tea.KeyCtrlN}, types.KeyInput{Key: "n", Ctrl: true}},
		{tea.KeyMsg{Type: tea.KeyCtrlA}, types.KeyInput{Key: "a", Ctrl: true}},
		{tea.KeyMsg{Type: tea.KeyCtrlZ}, types.KeyInput{Key: "z", Ctrl: true}},
		{tea.KeyMsg{Type: tea.KeyCtrlAt}, types.KeyInput{Key: " ", Ctrl: true}},
		{tea.KeyMsg{Type: tea.KeyCtrlBackslash}, types.KeyInput{Key: "\\", Ctrl: true}},
		{tea.KeyMsg{Type: tea.KeyCtrlCloseBracket}, types.KeyInput{Key: "]", Ctrl: true}},
		{tea.KeyMsg{Type: tea.KeyCtrlCaret}, types.KeyInput{Key: "^", Ctrl: true}},
		{tea.KeyMsg{Type: tea.KeyCtrlUnderscore}, types.KeyInput{Key: "_", Ctrl: true}},
		{tea.KeyMsg{Type: tea.KeyF20}, types.KeyInput{Key: "f20"}},
	} {
		got := FromKeyMsg(tc.msg)
		require.Len(t, got, 1, tc.want.Key)
		assert.Equal(t, tc.want, got[0])
	}
}

func TestFromKeyMsgSplitsRunes(t *testing.T) {
	assert.Equal(t, []types.KeyInput{
		{Key: "a"},
		{Key: "B", Shift: true},
		{Key: "c"},
	}, FromKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("aBc")}))
}

func TestFromKeyMsgIgnoresPaste(t *testing.T) {
	assert.Empty(t, FromKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pasted"), Paste: true}))
}

func TestSearchForwardsValue(t *testing.T) {
	bus, sender := newRegisteredCapture(t)
	bus.Publish(types.SearchInput{Value: "fire"})
	bus.Publish(types.SearchInput{Value: ""})

	assert.Equal(t, []sent{
		{Type: domain.EventSearch, Payload: domain.Payload{"value": "fire"}},
		{Type: domain.EventSearch, Payload: domain.Payload{"value": ""}},
	}, sender.sent)
}

func TestClickAndDoubleClick(t *testing.T) {
	bus, sender := newRegisteredCapture(t)
	start := time.Unix(1000, 0)

	bus.Publish(types.PointerInput{ID: "result-1", At: start})
	bus.Publish(types.PointerInput{ID: "result-1", At: start.Add(200 * time.Millisecond)})
	// Third press begins a new pair
	bus.Publish(types.PointerInput{ID: "result-1", At: start.Add(250 * time.Millisecond)})
	// Different row never pairs
	bus.Publish(types.PointerInput{ID: "result-2", At: start.Add(300 * time.Millisecond)})
	// Too slow
	bus.Publish(types.PointerInput{ID: "result-2", At: start.Add(900 * time.Millisecond)})

	var got []domain.Payload
	for _, s := range sender.sent {
		require.Equal(t, domain.EventClick, s.Type)
		got = append(got, s.Payload)
	}
	assert.Equal(t, []domain.Payload{
		{"click_type": "single", "id": "result-1"},
		{"click_type": "single", "id": "result-1"},
		{"click_type": "double", "id": "result-1"},
		{"click_type": "single", "id": "result-1"},
		{"click_type": "single", "id": "result-2"},
		{"click_type": "single", "id": "result-2"},
	}, got)
}

func TestScrollReportsOffsetAndMax(t *testing.T) {
	bus, sender := newRegisteredCapture(t)
	nav := navigation.NewService(bus)
	nav.SetViewportHeight(10)
	nav.SetContentHeight(35)

	nav.ScrollBy(7)
	nav.ScrollBy(100)
	nav.ScrollBy(-100)

	assert.Equal(t, []sent{
		{Type: domain.EventScroll, Payload: domain.Payload{"y": 7, "maxy": 25}},
		{Type: domain.EventScroll, Payload: domain.Payload{"y": 25, "maxy": 25}},
		{Type: domain.EventScroll, Payload: domain.Payload{"y": 0, "maxy": 25}},
	}, sender.sent)
}

func TestDefaultDoubleClickWindow(t *testing.T) {
	c := NewCapture(&recordingSender{}, 0)
	assert.Equal(t, DefaultDoubleClickWindow, c.doubleClickWindow)
}
