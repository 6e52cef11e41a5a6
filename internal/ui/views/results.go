package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/mattn/go-runewidth"

	"launchview/internal/dom"
	"launchview/internal/domain"
	"launchview/internal/ui/services/navigation"
)

// Results renders the results container and maps screen rows back to elements
type Results struct {
	doc    *dom.Document
	nav    *navigation.Service
	rules  LayoutRules
	styles *Styles

	layout    *Layout
	layoutRev uint64
	viewport  viewport.Model
	width     int
}

// NewResults creates the results container view
func NewResults(doc *dom.Document, nav *navigation.Service, rules LayoutRules, styles *Styles) *Results {
	return &Results{
		doc:      doc,
		nav:      nav,
		rules:    rules,
		styles:   styles,
		viewport: viewport.New(0, 1),
	}
}

// SetSize updates the container dimensions
func (r *Results) SetSize(width, height int) {
	if height < 1 {
		height = 1
	}
	r.width = width
	r.viewport.Width = width
	r.viewport.Height = height
	r.nav.SetViewportHeight(height)
}

// Sync rebuilds the layout when the view tree changed since the last call
func (r *Results) Sync() *Layout {
	if r.layout != nil && r.layoutRev == r.doc.Revision() {
		return r.layout
	}
	r.layout = BuildLayout(r.doc.Root(), r.rules)
	r.layoutRev = r.doc.Revision()
	r.nav.SetContentHeight(r.layout.Height())
	return r.layout
}

// ScrollIntoView centers el in the container
func (r *Results) ScrollIntoView(el *dom.Element, smooth bool) {
	span, ok := r.Sync().Span(el.Node())
	if !ok {
		return
	}
	r.nav.ScrollIntoView(span.Start, span.End, smooth)
}

// ScrollBy scrolls the container by delta lines
func (r *Results) ScrollBy(delta int) {
	r.Sync()
	r.nav.ScrollBy(delta)
}

// HitTest returns the id of the element shown on screen row row of the container
func (r *Results) HitTest(row int) string {
	if row < 0 || row >= r.viewport.Height {
		return ""
	}
	return r.Sync().HitTest(r.nav.Offset() + row)
}

// View renders the visible part of the container
func (r *Results) View() string {
	layout := r.Sync()

	rows := make([]string, len(layout.Lines))
	for i, line := range layout.Lines {
		rows[i] = r.renderLine(layout, i, line)
	}
	r.viewport.SetContent(strings.Join(rows, "\n"))
	r.viewport.SetYOffset(r.nav.Offset())
	return r.viewport.View()
}

func (r *Results) renderLine(layout *Layout, i int, line Line) string {
	text := strings.Repeat("  ", line.Depth) + line.Text
	if r.width > 0 {
		text = runewidth.Truncate(text, r.width, "…")
	}

	style := r.styles.Row
	switch {
	case layout.Marked(i, domain.ClassSelected):
		style = r.styles.Selected
	case layout.Marked(i, domain.ClassActive):
		style = r.styles.Action
	}
	if r.width > 0 {
		style = style.Width(r.width)
	}
	return style.Render(text)
}
