package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"launchview/internal/domain"
	"launchview/internal/host"
)

var _ host.API = (*ProgramAPI)(nil)

// ProgramAPI delivers host calls to a running program, so they are applied
// on the UI event loop in the order they were made
type ProgramAPI struct {
	program *tea.Program
}

// NewProgramAPI creates the host API for p
func NewProgramAPI(p *tea.Program) *ProgramAPI {
	return &ProgramAPI{program: p}
}

func (a *ProgramAPI) Update(markup string) {
	a.send(domain.UpdateCommand{HTML: markup})
}

func (a *ProgramAPI) Append(pos *int, markup string, smooth bool) {
	a.send(domain.AppendCommand{Pos: pos, HTML: markup, Smooth: smooth})
}

func (a *ProgramAPI) Focus() {
	a.send(domain.FocusCommand{})
}

func (a *ProgramAPI) SetPos(pos int, smooth bool) {
	a.send(domain.SetPosCommand{Pos: pos, Smooth: smooth})
}

func (a *ProgramAPI) SubPos(pos, sub int) {
	a.send(domain.SubPosCommand{Pos: pos, Sub: sub})
}

// HostExited tells the program the host is gone
func (a *ProgramAPI) HostExited(err error) {
	a.program.Send(HostExitedMsg{Err: err})
}

func (a *ProgramAPI) send(cmd domain.Command) {
	a.program.Send(HostCommandMsg{Command: cmd})
}
