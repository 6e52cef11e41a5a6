package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Class marks placed on view elements
const (
	ClassSelected = "selected"
	ClassActive   = "active"
)

// ResultID returns the element id of the result at pos
func ResultID(pos int) string {
	return fmt.Sprintf("result-%d", pos)
}

// ActionsID returns the element id of the action container of the result at pos
func ActionsID(pos int) string {
	return fmt.Sprintf("result-%d-actions", pos)
}

// ActionID returns the element id of action sub of the result at pos
func ActionID(pos, sub int) string {
	return fmt.Sprintf("result-%d-action-%d", pos, sub)
}

// Target is a parsed element identifier
type Target struct {
	Pos      int
	Sub      int  // -1 unless IsAction
	IsAction bool // result-<pos>-action-<sub>
}

// ParseID parses an element id following the result identifier convention.
// ok is false for ids outside the convention.
func ParseID(id string) (Target, bool) {
	rest, found := strings.CutPrefix(id, "result-")
	if !found {
		return Target{}, false
	}
	parts := strings.Split(rest, "-")
	pos, err := strconv.Atoi(parts[0])
	if err != nil || pos < 0 {
		return Target{}, false
	}
	switch {
	case len(parts) == 1:
		return Target{Pos: pos, Sub: -1}, true
	case len(parts) == 2 && parts[1] == "actions":
		// The actions container stands for its result
		return Target{Pos: pos, Sub: -1}, true
	case len(parts) == 3 && parts[1] == "action":
		sub, err := strconv.Atoi(parts[2])
		if err != nil || sub < 0 {
			return Target{}, false
		}
		return Target{Pos: pos, Sub: sub, IsAction: true}, true
	}
	return Target{}, false
}
