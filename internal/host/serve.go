package host

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"

	"launchview/internal/domain"
)

// maxLineSize bounds one command line; whole result pages travel in a single line
const maxLineSize = 16 * 1024 * 1024

// API is the view surface host commands are applied to
type API interface {
	Update(markup string)
	Append(pos *int, markup string, smooth bool)
	Focus()
	SetPos(pos int, smooth bool)
	SubPos(pos, sub int)
}

// Serve reads commands from r, one per line, and applies them to api in
// order until r is exhausted. Malformed lines are logged and skipped.
func Serve(r io.Reader, api API) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		cmd, err := DecodeCommand(line)
		if err != nil {
			log.Printf("Host: skipping command: %v", err)
			continue
		}
		Dispatch(api, cmd)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read host output: %w", err)
	}
	return nil
}

// Dispatch applies a decoded command to api
func Dispatch(api API, cmd domain.Command) {
	switch c := cmd.(type) {
	case domain.UpdateCommand:
		api.Update(c.HTML)
	case domain.AppendCommand:
		api.Append(c.Pos, c.HTML, c.Smooth)
	case domain.FocusCommand:
		api.Focus()
	case domain.SetPosCommand:
		api.SetPos(c.Pos, c.Smooth)
	case domain.SubPosCommand:
		api.SubPos(c.Pos, c.Sub)
	}
}
