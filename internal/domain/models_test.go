package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifiers(t *testing.T) {
	assert.Equal(t, "result-0", ResultID(0))
	assert.Equal(t, "result-12-actions", ActionsID(12))
	assert.Equal(t, "result-3-action-1", ActionID(3, 1))
}

func TestParseID(t *testing.T) {
	target, ok := ParseID("result-4")
	require.True(t, ok)
	assert.Equal(t, Target{Pos: 4, Sub: -1}, target)

	target, ok = ParseID("result-4-actions")
	require.True(t, ok)
	assert.Equal(t, Target{Pos: 4, Sub: -1}, target)

	target, ok = ParseID("result-4-action-2")
	require.True(t, ok)
	assert.True(t, target.IsAction)
	assert.Equal(t, 2, target.Sub)

	for _, id := range []string{"", "search", "result-", "result-x", "result--1", "result-1-action-", "result-1-foo"} {
		_, ok := ParseID(id)
		assert.False(t, ok, "id %q", id)
	}
}

func TestEventPayloads(t *testing.T) {
	assert.Equal(t, Payload{"value": "fire"}, SearchEvent{Value: "fire"}.Payload())
	assert.Equal(t, Payload{"key": "ArrowDown", "ctrl": true, "shift": false},
		KeydownEvent{Key: "ArrowDown", Ctrl: true}.Payload())
	assert.Equal(t, Payload{"click_type": "double", "id": "result-1"},
		ClickEvent{ClickType: ClickDouble, ID: "result-1"}.Payload())
	assert.Equal(t, Payload{"y": 0, "maxy": 40}, ScrollEvent{MaxY: 40}.Payload())
}
