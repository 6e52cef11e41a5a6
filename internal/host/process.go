package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"

	"launchview/internal/bridge"
)

// Process is a running host. Events posted to it are written to its stdin;
// its stdout carries commands for the view.
type Process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
	sink   *bridge.WriterSink

	closeOnce sync.Once
	waitOnce  sync.Once
	waitErr   error
}

// Start launches command with args. env entries are added to the current environment.
func Start(ctx context.Context, command string, args, env []string) (*Process, error) {
	if command == "" {
		return nil, errors.New("no host command configured")
	}

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stderr = logWriter{prefix: "Host stderr: "}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open host stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open host stdout: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start host %s: %w", command, err)
	}
	log.Printf("Started host %s (pid %d)", command, cmd.Process.Pid)

	return &Process{
		cmd:    cmd,
		stdin:  stdin,
		stdout: stdout,
		sink:   bridge.NewWriterSink(stdin),
	}, nil
}

// Post writes one event line to the host's stdin
func (p *Process) Post(message []byte) error {
	return p.sink.Post(message)
}

// Stdout returns the host's command stream
func (p *Process) Stdout() io.Reader {
	return p.stdout
}

// Close closes the host's stdin, signalling it to finish
func (p *Process) Close() error {
	var err error
	p.closeOnce.Do(func() {
		err = p.stdin.Close()
	})
	return err
}

// Wait waits for the host to exit. Must be called after Stdout has been drained.
func (p *Process) Wait() error {
	p.waitOnce.Do(func() {
		p.waitErr = p.cmd.Wait()
		if p.waitErr != nil {
			log.Printf("Host exited: %v", p.waitErr)
		}
	})
	return p.waitErr
}

// logWriter forwards host diagnostics to the log
type logWriter struct {
	prefix string
}

func (w logWriter) Write(p []byte) (int, error) {
	log.Printf("%s%s", w.prefix, p)
	return len(p), nil
}
