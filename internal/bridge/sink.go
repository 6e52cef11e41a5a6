package bridge

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// WriterSink writes one message per line to an io.Writer, e.g. the host's stdin
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing newline-delimited messages to w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Post writes message followed by a newline
func (s *WriterSink) Post(message []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := make([]byte, 0, len(message)+1)
	line = append(line, message...)
	line = append(line, '\n')
	if _, err := s.w.Write(line); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// TeeSink posts every message to all of its sinks, in order
type TeeSink []Sink

// Post delivers message to each sink and joins their errors
func (t TeeSink) Post(message []byte) error {
	var errs []error
	for _, s := range t {
		if err := s.Post(message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(message []byte) error

func (f SinkFunc) Post(message []byte) error { return f(message) }
