package input

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"launchview/internal/ui/input/types"
)

type keySpec struct {
	key   string
	ctrl  bool
	shift bool
}

// namedKeys maps terminal key types to DOM key names
var namedKeys = map[tea.KeyType]keySpec{
	tea.KeyUp:     {key: "ArrowUp"},
	tea.KeyDown:   {key: "ArrowDown"},
	tea.KeyLeft:   {key: "ArrowLeft"},
	tea.KeyRight:  {key: "ArrowRight"},
	tea.KeyEnter:  {key: "Enter"},
	tea.KeyEsc:    {key: "Escape"},
	tea.KeyTab:    {key: "Tab"},
	tea.KeySpace:  {key: " "},
	tea.KeyHome:   {key: "Home"},
	tea.KeyEnd:    {key: "End"},
	tea.KeyPgUp:   {key: "PageUp"},
	tea.KeyPgDown: {key: "PageDown"},
	tea.KeyDelete: {key: "Delete"},
	tea.KeyInsert: {key: "Insert"},

	tea.KeyBackspace: {key: "Backspace"},
	tea.KeyShiftTab:  {key: "Tab", shift: true},

	tea.KeyShiftUp:    {key: "ArrowUp", shift: true},
	tea.KeyShiftDown:  {key: "ArrowDown", shift: true},
	tea.KeyShiftLeft:  {key: "ArrowLeft", shift: true},
	tea.KeyShiftRight: {key: "ArrowRight", shift: true},
	tea.KeyShiftHome:  {key: "Home", shift: true},
	tea.KeyShiftEnd:   {key: "End", shift: true},

	tea.KeyCtrlUp:     {key: "ArrowUp", ctrl: true},
	tea.KeyCtrlDown:   {key: "ArrowDown", ctrl: true},
	tea.KeyCtrlLeft:   {key: "ArrowLeft", ctrl: true},
	tea.KeyCtrlRight:  {key: "ArrowRight", ctrl: true},
	tea.KeyCtrlHome:   {key: "Home", ctrl: true},
	tea.KeyCtrlEnd:    {key: "End", ctrl: true},
	tea.KeyCtrlPgUp:   {key: "PageUp", ctrl: true},
	tea.KeyCtrlPgDown: {key: "PageDown", ctrl: true},

	tea.KeyCtrlShiftUp:    {key: "ArrowUp", ctrl: true, shift: true},
	tea.KeyCtrlShiftDown:  {key: "ArrowDown", ctrl: true, shift: true},
	tea.KeyCtrlShiftLeft:  {key: "ArrowLeft", ctrl: true, shift: true},
	tea.KeyCtrlShiftRight: {key: "ArrowRight", ctrl: true, shift: true},

	tea.KeyF1:  {key: "F1"},
	tea.KeyF2:  {key: "F2"},
	tea.KeyF3:  {key: "F3"},
	tea.KeyF4:  {key: "F4"},
	tea.KeyF5:  {key: "F5"},
	tea.KeyF6:  {key: "F6"},
	tea.KeyF7:  {key: "F7"},
	tea.KeyF8:  {key: "F8"},
	tea.KeyF9:  {key: "F9"},
	tea.KeyF10: {key: "F10"},
	tea.KeyF11: {key: "F11"},
	tea.KeyF12: {key: "F12"},

	tea.KeyCtrlAt:           {key: " ", ctrl: true},
	tea.KeyCtrlBackslash:    {key: "\\", ctrl: true},
	tea.KeyCtrlCloseBracket: {key: "]", ctrl: true},
	tea.KeyCtrlCaret:        {key: "^", ctrl: true},
	tea.KeyCtrlUnderscore:   {key: "_", ctrl: true},
}

// FromKeyMsg converts a terminal key message into document key events.
// Characters typed faster than the terminal is read arrive in one message
// and yield one event each. Input that is not a key press, such as a
// bracketed paste, yields none.
func FromKeyMsg(msg tea.KeyMsg) []types.KeyInput {
	if msg.Paste {
		return nil
	}

	if spec, found := namedKeys[msg.Type]; found {
		return []types.KeyInput{{Key: spec.key, Ctrl: spec.ctrl, Shift: spec.shift, Alt: msg.Alt}}
	}

	switch {
	case msg.Type == tea.KeyRunes:
		keys := make([]types.KeyInput, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, types.KeyInput{Key: string(r), Shift: unicode.IsUpper(r), Alt: msg.Alt})
		}
		return keys

	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		// Control letters; Tab and Enter share codes with ctrl+i and ctrl+m and are matched above
		r := rune('a' + int(msg.Type-tea.KeyCtrlA))
		return []types.KeyInput{{Key: string(r), Ctrl: true, Alt: msg.Alt}}
	}

	// Anything else is still a key press; forward bubbletea's name for it
	return []types.KeyInput{{Key: tea.Key{Type: msg.Type}.String(), Alt: msg.Alt}}
}

// PreventsDefault reports whether key is a navigation key whose default
// scrolling must be suppressed
func PreventsDefault(key string) bool {
	return key == "ArrowUp" || key == "ArrowDown"
}
