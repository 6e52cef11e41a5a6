package host

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"launchview/internal/domain"
)

// ErrUnknownOp is returned for commands with an op the view does not support
var ErrUnknownOp = errors.New("unknown op")

// message is the wire form of a host command
type message struct {
	Op     domain.CommandOp `json:"op"`
	HTML   string           `json:"html"`
	Pos    json.RawMessage  `json:"pos"`
	Sub    json.RawMessage  `json:"sub"`
	Smooth bool             `json:"smooth"`
}

// DecodeCommand parses one line written by the host
func DecodeCommand(line []byte) (domain.Command, error) {
	var msg message
	if err := json.Unmarshal(line, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode command: %w", err)
	}

	switch msg.Op {
	case domain.OpUpdate:
		return domain.UpdateCommand{HTML: msg.HTML}, nil

	case domain.OpAppend:
		cmd := domain.AppendCommand{HTML: msg.HTML, Smooth: msg.Smooth}
		// Anything but an integer position leaves the selection alone
		if pos, ok := integer(msg.Pos); ok {
			cmd.Pos = &pos
		}
		return cmd, nil

	case domain.OpFocus:
		return domain.FocusCommand{}, nil

	case domain.OpSetPos:
		pos, ok := integer(msg.Pos)
		if !ok {
			return nil, fmt.Errorf("setpos: invalid pos %s", string(msg.Pos))
		}
		return domain.SetPosCommand{Pos: pos, Smooth: msg.Smooth}, nil

	case domain.OpSubPos:
		pos, ok := integer(msg.Pos)
		if !ok {
			return nil, fmt.Errorf("subpos: invalid pos %s", string(msg.Pos))
		}
		sub, ok := integer(msg.Sub)
		if !ok {
			return nil, fmt.Errorf("subpos: invalid sub %s", string(msg.Sub))
		}
		return domain.SubPosCommand{Pos: pos, Sub: sub}, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownOp, msg.Op)
}

// integer reads raw as a whole JSON number
func integer(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// EncodeCommand renders cmd in the wire form DecodeCommand reads
func EncodeCommand(cmd domain.Command) ([]byte, error) {
	out := map[string]any{"op": cmd.Op()}
	switch c := cmd.(type) {
	case domain.UpdateCommand:
		out["html"] = c.HTML
	case domain.AppendCommand:
		out["html"] = c.HTML
		out["smooth"] = c.Smooth
		if c.Pos != nil {
			out["pos"] = *c.Pos
		} else {
			out["pos"] = nil
		}
	case domain.FocusCommand:
	case domain.SetPosCommand:
		out["pos"] = c.Pos
		out["smooth"] = c.Smooth
	case domain.SubPosCommand:
		out["pos"] = c.Pos
		out["sub"] = c.Sub
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownOp, cmd.Op())
	}
	return json.Marshal(out)
}
