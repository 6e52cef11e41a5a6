package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"launchview/internal/domain"
)

// scrollFrameInterval paces smooth scrolling
const scrollFrameInterval = 16 * time.Millisecond

// HostCommandMsg carries a render command issued by the host
type HostCommandMsg struct {
	Command domain.Command
}

// HostExitedMsg reports that the host process ended
type HostExitedMsg struct {
	Err error
}

// readyMsg is delivered once the program has started
type readyMsg struct{}

// scrollFrameMsg advances a smooth scroll
type scrollFrameMsg time.Time

func ready() tea.Msg {
	return readyMsg{}
}

func scrollFrame() tea.Cmd {
	return tea.Tick(scrollFrameInterval, func(t time.Time) tea.Msg {
		return scrollFrameMsg(t)
	})
}
