package ui

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"launchview/internal/bridge"
	"launchview/internal/config"
	"launchview/internal/dom"
	"launchview/internal/domain"
	"launchview/internal/ui/input"
	"launchview/internal/ui/input/types"
	"launchview/internal/ui/services/events"
	"launchview/internal/ui/services/navigation"
	"launchview/internal/ui/services/selection"
	"launchview/internal/ui/views"
)

// ResultsID is the element id of the results container
const ResultsID = "results"

// Model is the launcher view: a search field above the results container
type Model struct {
	config *config.Config

	// View tree and the services that own its state
	bus       *events.Bus
	doc       *dom.Document
	nav       *navigation.Service
	selection *selection.Service
	capture   *input.Capture

	// Rendering
	styles  *views.Styles
	results *views.Results
	search  *textinput.Model // nil when the search bar is disabled

	width          int
	height         int
	frameScheduled bool
	quitKeys       map[string]bool
	now            func() time.Time
}

// NewModel creates the view and performs its one-time setup: initial
// selection, input registration and the focus hook for when it is ready
func NewModel(cfg *config.Config, emitter bridge.Emitter) *Model {
	bus := events.NewBus()
	doc := dom.New(ResultsID)
	nav := navigation.NewService(bus)
	styles := views.NewStyles(cfg.Styles)
	results := views.NewResults(doc, nav, views.LayoutRules{HiddenUnlessActive: cfg.UI.HiddenUnlessActive}, styles)

	m := &Model{
		config:    cfg,
		bus:       bus,
		doc:       doc,
		nav:       nav,
		selection: selection.NewService(doc, results),
		capture:   input.NewCapture(emitter, time.Duration(cfg.UI.DoubleClickMS)*time.Millisecond),
		styles:    styles,
		results:   results,
		quitKeys:  make(map[string]bool),
		now:       time.Now,
	}

	if cfg.UI.SearchBar {
		ti := textinput.New()
		ti.Prompt = cfg.UI.Prompt
		ti.Placeholder = cfg.UI.Placeholder
		ti.PromptStyle = styles.Prompt
		ti.PlaceholderStyle = styles.Dim
		m.search = &ti
	}
	for _, key := range cfg.UI.QuitKeys {
		m.quitKeys[key] = true
	}

	// Start position at zero
	m.selection.SetPos(0, false)

	// Capture input, and focus the search field once the view is ready
	m.capture.Register(bus)
	bus.SubscribeOnce(events.TypeOf(types.ReadyInput{}), func(interface{}) {
		m.Focus()
	})

	return m
}

// Init returns the initial command
func (m *Model) Init() tea.Cmd {
	return ready
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case readyMsg:
		m.bus.Publish(types.ReadyInput{})
		if m.search != nil {
			cmds = append(cmds, textinput.Blink)
		}

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case HostCommandMsg:
		m.Apply(msg.Command)

	case HostExitedMsg:
		if msg.Err != nil {
			log.Printf("Host exited: %v", msg.Err)
		} else {
			log.Printf("Host exited")
		}
		return m, tea.Quit

	case scrollFrameMsg:
		m.frameScheduled = false
		m.nav.Step()

	default:
		// Cursor blink and other text input housekeeping
		if m.search != nil {
			var cmd tea.Cmd
			*m.search, cmd = m.search.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Keep the scroll container in step with the view tree
	m.results.Sync()
	if m.nav.Animating() && !m.frameScheduled {
		m.frameScheduled = true
		cmds = append(cmds, scrollFrame())
	}

	return m, tea.Batch(cmds...)
}

// View renders the search field and the results container
func (m *Model) View() string {
	var b strings.Builder
	if m.search != nil {
		b.WriteString(m.search.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Divider.Render(strings.Repeat("─", max(m.width, 1))))
		b.WriteString("\n")
	}
	b.WriteString(m.results.View())
	return b.String()
}

// Apply runs a host command against the view
func (m *Model) Apply(cmd domain.Command) {
	switch c := cmd.(type) {
	case domain.UpdateCommand:
		m.selection.Update(c.HTML)
	case domain.AppendCommand:
		m.selection.Append(c.Pos, c.HTML, c.Smooth)
	case domain.FocusCommand:
		m.Focus()
	case domain.SetPosCommand:
		m.selection.SetPos(c.Pos, c.Smooth)
	case domain.SubPosCommand:
		m.selection.SubPos(c.Pos, c.Sub)
	default:
		log.Printf("Ignoring unknown host command %T", cmd)
	}
}

// Focus moves input focus to the search field. Safe to call at any time,
// including when there is no search field.
func (m *Model) Focus() {
	if m.search == nil || m.search.Focused() {
		return
	}
	m.search.Focus()
}

// Selection returns the current selection state
func (m *Model) Selection() selection.State {
	return m.selection.State()
}

// Document returns the results container view tree
func (m *Model) Document() *dom.Document {
	return m.doc
}

// SearchFocused reports whether the search field has input focus
func (m *Model) SearchFocused() bool {
	return m.search != nil && m.search.Focused()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	prevented := false
	for _, in := range input.FromKeyMsg(msg) {
		m.bus.Publish(&in)
		prevented = prevented || in.DefaultPrevented()
	}

	if m.quitKeys[msg.String()] {
		return tea.Quit
	}
	if prevented {
		return nil
	}

	// Default handling: edit the search field
	if m.search == nil || !m.search.Focused() {
		return nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	*m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != before {
		m.bus.Publish(types.SearchInput{Value: value})
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	row := msg.Y - m.resultsTop()
	if row < 0 {
		return
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.results.ScrollBy(-m.config.UI.WheelLines)
	case msg.Button == tea.MouseButtonWheelDown:
		m.results.ScrollBy(m.config.UI.WheelLines)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if id := m.results.HitTest(row); id != "" {
			m.bus.Publish(types.PointerInput{ID: id, At: m.now()})
		}
	}
}

// resultsTop is the screen row of the first results line
func (m *Model) resultsTop() int {
	if m.search != nil {
		return 2
	}
	return 0
}

func (m *Model) resize() {
	if m.search != nil {
		m.search.Width = max(m.width-lipgloss.Width(m.search.Prompt)-1, 1)
	}
	m.results.SetSize(m.width, m.height-m.resultsTop())
}
