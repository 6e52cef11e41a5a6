package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/net/html"

	"launchview/internal/domain"
	"launchview/internal/host"
)

// Entry is one launchable item
type Entry struct {
	Name    string   `toml:"name"`
	Comment string   `toml:"comment"`
	Actions []string `toml:"actions"`
}

type entriesFile struct {
	Entries []Entry `toml:"entry"`
}

var defaultEntries = []Entry{
	{Name: "Firefox", Comment: "Web Browser", Actions: []string{"New Window", "New Private Window"}},
	{Name: "Files", Comment: "Access and organize files"},
	{Name: "Terminal", Comment: "Use the command line", Actions: []string{"New Tab"}},
	{Name: "Text Editor", Comment: "Edit text files"},
	{Name: "Calculator", Comment: "Perform arithmetic"},
}

// LoadEntries reads entries from a TOML file
func LoadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	var file entriesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse entries: %w", err)
	}
	return file.Entries, nil
}

// event is the wire form of a view event
type event struct {
	Type      domain.EventType `json:"type"`
	Value     string           `json:"value"`
	Key       string           `json:"key"`
	Ctrl      bool             `json:"ctrl"`
	Shift     bool             `json:"shift"`
	ClickType domain.ClickType `json:"click_type"`
	ID        string           `json:"id"`
	Y         int              `json:"y"`
	MaxY      int              `json:"maxy"`
}

// Launcher filters entries and drives the view's selection
type Launcher struct {
	entries      []Entry
	pageSize     int
	exitOnLaunch bool
	out          io.Writer

	matches []int // indexes into entries
	loaded  int   // matches rendered so far
	pos     int
	sub     int // 0 while no action is selected
}

// NewLauncher creates a launcher writing view commands to out
func NewLauncher(entries []Entry, pageSize int, exitOnLaunch bool, out io.Writer) *Launcher {
	return &Launcher{
		entries:      entries,
		pageSize:     pageSize,
		exitOnLaunch: exitOnLaunch,
		out:          out,
	}
}

// Start shows every entry
func (l *Launcher) Start() error {
	return l.search("")
}

// HandleLine applies one event line. done reports that the host should exit.
func (l *Launcher) HandleLine(line []byte) (done bool, err error) {
	var ev event
	if err := json.Unmarshal(line, &ev); err != nil {
		log.Printf("samplehost: bad event %q: %v", line, err)
		return false, nil
	}

	switch ev.Type {
	case domain.EventSearch:
		return false, l.search(ev.Value)
	case domain.EventKeydown:
		return l.keydown(ev)
	case domain.EventClick:
		return l.click(ev)
	case domain.EventScroll:
		if ev.Y >= ev.MaxY && l.loaded < len(l.matches) {
			return false, l.loadMore(nil)
		}
	}
	return false, nil
}

func (l *Launcher) search(query string) error {
	query = strings.ToLower(query)
	l.matches = l.matches[:0]
	for i, e := range l.entries {
		if query == "" || strings.Contains(strings.ToLower(e.Name), query) || strings.Contains(strings.ToLower(e.Comment), query) {
			l.matches = append(l.matches, i)
		}
	}

	l.pos, l.sub = 0, 0
	l.loaded = l.pageEnd(0)
	return l.send(domain.UpdateCommand{HTML: l.render(0, l.loaded)})
}

func (l *Launcher) keydown(ev event) (bool, error) {
	switch ev.Key {
	case "ArrowDown":
		return false, l.moveDown()
	case "ArrowUp":
		return false, l.moveUp()
	case "ArrowRight":
		if l.sub == 0 && l.current() != nil && len(l.current().Actions) > 0 {
			l.sub = 1
			return false, l.send(domain.SubPosCommand{Pos: l.pos, Sub: l.sub})
		}
	case "ArrowLeft":
		if l.sub > 0 {
			l.sub = 0
			return false, l.send(domain.SetPosCommand{Pos: l.pos})
		}
	case "Escape":
		if l.sub > 0 {
			l.sub = 0
			return false, l.send(domain.SetPosCommand{Pos: l.pos})
		}
		return true, nil
	case "Enter":
		return l.launch(l.pos, l.sub), nil
	}
	return false, nil
}

func (l *Launcher) moveDown() error {
	if e := l.current(); e != nil && l.sub > 0 && l.sub < len(e.Actions) {
		l.sub++
		return l.send(domain.SubPosCommand{Pos: l.pos, Sub: l.sub})
	}
	l.sub = 0
	switch {
	case l.pos+1 < l.loaded:
		l.pos++
		return l.send(domain.SetPosCommand{Pos: l.pos, Smooth: true})
	case l.pos+1 < len(l.matches):
		l.pos++
		pos := l.pos
		return l.loadMore(&pos)
	}
	return l.send(domain.SetPosCommand{Pos: l.pos, Smooth: true})
}

func (l *Launcher) moveUp() error {
	switch {
	case l.sub > 1:
		l.sub--
		return l.send(domain.SubPosCommand{Pos: l.pos, Sub: l.sub})
	case l.sub == 1:
		l.sub = 0
	case l.pos > 0:
		l.pos--
	}
	return l.send(domain.SetPosCommand{Pos: l.pos, Smooth: true})
}

func (l *Launcher) click(ev event) (bool, error) {
	target, ok := domain.ParseID(ev.ID)
	if !ok || target.Pos >= l.loaded {
		return false, nil
	}

	l.pos, l.sub = target.Pos, 0
	if target.IsAction {
		l.sub = target.Sub
	}

	if ev.ClickType == domain.ClickDouble {
		return l.launch(l.pos, l.sub), nil
	}
	if l.sub > 0 {
		return false, l.send(domain.SubPosCommand{Pos: l.pos, Sub: l.sub})
	}
	return false, l.send(domain.SetPosCommand{Pos: l.pos})
}

func (l *Launcher) launch(pos, sub int) bool {
	if pos >= len(l.matches) {
		return false
	}
	e := l.entries[l.matches[pos]]
	if sub > 0 && sub <= len(e.Actions) {
		log.Printf("launch %s: %s", e.Name, e.Actions[sub-1])
	} else {
		log.Printf("launch %s", e.Name)
	}
	return l.exitOnLaunch
}

// loadMore appends the next page; pos moves the selection when non-nil
func (l *Launcher) loadMore(pos *int) error {
	from := l.loaded
	l.loaded = l.pageEnd(from)
	return l.send(domain.AppendCommand{Pos: pos, HTML: l.render(from, l.loaded), Smooth: true})
}

func (l *Launcher) pageEnd(from int) int {
	if l.pageSize <= 0 || from+l.pageSize > len(l.matches) {
		return len(l.matches)
	}
	return from + l.pageSize
}

func (l *Launcher) current() *Entry {
	if l.pos >= len(l.matches) {
		return nil
	}
	return &l.entries[l.matches[l.pos]]
}

// render produces the markup for matches [from, to)
func (l *Launcher) render(from, to int) string {
	var b strings.Builder
	for pos := from; pos < to; pos++ {
		e := l.entries[l.matches[pos]]
		b.WriteString(`<div class="result-entry">`)
		fmt.Fprintf(&b, `<div id="%s" class="result"><div class="name">%s</div><div class="comment">%s</div></div>`,
			domain.ResultID(pos), html.EscapeString(e.Name), html.EscapeString(e.Comment))
		fmt.Fprintf(&b, `<div id="%s" class="actions">`, domain.ActionsID(pos))
		for i, action := range e.Actions {
			fmt.Fprintf(&b, `<div id="%s" class="action"><div class="action-name">%s</div></div>`,
				domain.ActionID(pos, i+1), html.EscapeString(action))
		}
		b.WriteString(`</div></div>`)
	}
	return b.String()
}

func (l *Launcher) send(cmd domain.Command) error {
	line, err := host.EncodeCommand(cmd)
	if err != nil {
		return err
	}
	_, err = l.out.Write(append(line, '\n'))
	return err
}
