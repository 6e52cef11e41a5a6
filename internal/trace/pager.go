package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/noborus/ov/oviewer"
)

const timeLayout = "15:04:05.000"

// Format renders a trace file as one readable line per message
func Format(r io.Reader) (string, error) {
	var b strings.Builder

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			fmt.Fprintf(&b, "line %d: unreadable entry: %v\n", n, err)
			continue
		}

		arrow := "→"
		if entry.Direction == FromHost {
			arrow = "←"
		}
		fmt.Fprintf(&b, "%s %s %s\n", entry.Time.Format(timeLayout), arrow, entry.Message)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read trace: %w", err)
	}
	return b.String(), nil
}

// ShowFile pages the trace file at path
func ShowFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer f.Close()

	content, err := Format(f)
	if err != nil {
		return err
	}
	return Show(content)
}

// Show runs ov over content; it takes over the terminal until the user quits
func Show(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
