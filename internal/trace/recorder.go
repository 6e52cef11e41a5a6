package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Direction tells which way a traced message travelled
type Direction string

const (
	ToHost   Direction = "out"
	FromHost Direction = "in"
)

// Entry is one line of a trace file
type Entry struct {
	Time      time.Time       `json:"time"`
	Direction Direction       `json:"dir"`
	Message   json.RawMessage `json:"msg"`
}

// Recorder appends bridge traffic to a trace file
type Recorder struct {
	mu   sync.Mutex
	file *os.File
	w    *bufio.Writer
	now  func() time.Time
}

// Open creates or appends to the trace file at path
func Open(path string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create trace directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	return &Recorder{file: f, w: bufio.NewWriter(f), now: time.Now}, nil
}

// Post records an outbound message; it lets a Recorder sit in a bridge.TeeSink
func (r *Recorder) Post(message []byte) error {
	return r.Record(ToHost, message)
}

// Record writes one entry. Messages that are not JSON are stored as strings.
func (r *Recorder) Record(dir Direction, message []byte) error {
	raw := json.RawMessage(message)
	if !json.Valid(message) {
		quoted, err := json.Marshal(string(message))
		if err != nil {
			return err
		}
		raw = quoted
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	line, err := json.Marshal(Entry{Time: r.now(), Direction: dir, Message: raw})
	if err != nil {
		return fmt.Errorf("failed to encode trace entry: %w", err)
	}
	line = append(line, '\n')
	if _, err := r.w.Write(line); err != nil {
		return fmt.Errorf("failed to write trace entry: %w", err)
	}
	return r.w.Flush()
}

// Tap returns a reader that records every line read through it as inbound traffic
func (r *Recorder) Tap(src io.Reader) io.Reader {
	pr, pw := io.Pipe()
	go func() {
		scanner := bufio.NewScanner(src)
		scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) > 0 {
				_ = r.Record(FromHost, line)
			}
			if _, err := pw.Write(append(append([]byte{}, line...), '\n')); err != nil {
				return
			}
		}
		pw.CloseWithError(scanner.Err())
	}()
	return pr
}

// Close flushes and closes the trace file
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.w.Flush(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
