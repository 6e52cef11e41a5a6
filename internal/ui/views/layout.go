package views

import (
	"slices"
	"strings"

	"golang.org/x/net/html"

	"launchview/internal/dom"
	"launchview/internal/domain"
)

// Line is one terminal row of the results container
type Line struct {
	Text  string
	Node  *html.Node // element the row belongs to
	Depth int        // nesting of id'd containers, used for indentation
}

// Span is the half-open range of lines an element occupies
type Span struct {
	Start int
	End   int
}

// LayoutRules decide which elements are rendered
type LayoutRules struct {
	// Elements with one of these classes are hidden until marked active
	HiddenUnlessActive []string
}

// Layout is the flattened, line-based rendering of a view tree.
// Elements without id'd descendants collapse to a single row; containers
// stack their children.
type Layout struct {
	Lines []Line
	root  *html.Node
	spans map[*html.Node]Span
}

// BuildLayout lays out the children of root
func BuildLayout(root *html.Node, rules LayoutRules) *Layout {
	b := &builder{
		rules:  rules,
		hasIDs: make(map[*html.Node]bool),
		layout: &Layout{root: root, spans: make(map[*html.Node]Span)},
	}
	b.markIDs(root)
	b.children(root, 0)
	return b.layout
}

// Height returns the number of lines, the scroll height of the container
func (l *Layout) Height() int {
	return len(l.Lines)
}

// Span returns the lines occupied by n. ok is false for hidden or empty elements.
func (l *Layout) Span(n *html.Node) (Span, bool) {
	s, ok := l.spans[n]
	if !ok || s.End <= s.Start {
		return Span{}, false
	}
	return s, true
}

// HitTest returns the id of the innermost element with an id on line y
func (l *Layout) HitTest(y int) string {
	if y < 0 || y >= len(l.Lines) {
		return ""
	}
	for n := l.Lines[y].Node; n != nil && n != l.root; n = n.Parent {
		if id := dom.Attr(n, "id"); id != "" {
			return id
		}
	}
	return ""
}

// Marked reports whether line y belongs to an element carrying class,
// directly or through an ancestor
func (l *Layout) Marked(y int, class string) bool {
	if y < 0 || y >= len(l.Lines) {
		return false
	}
	for n := l.Lines[y].Node; n != nil && n != l.root; n = n.Parent {
		if n.Type == html.ElementNode && dom.HasClass(n, class) {
			return true
		}
	}
	return false
}

type builder struct {
	rules  LayoutRules
	hasIDs map[*html.Node]bool // element has a descendant with an id
	layout *Layout
}

// markIDs records which nodes contain id'd elements and reports whether n has an id or contains one
func (b *builder) markIDs(n *html.Node) bool {
	found := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b.markIDs(c) {
			found = true
		}
	}
	b.hasIDs[n] = found
	return found || (n.Type == html.ElementNode && dom.Attr(n, "id") != "")
}

func (b *builder) children(n *html.Node, depth int) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if text := strings.Join(strings.Fields(c.Data), " "); text != "" {
				b.add(Line{Text: text, Node: n, Depth: depth})
			}
		case html.ElementNode:
			b.block(c, depth)
		}
	}
}

func (b *builder) block(n *html.Node, depth int) {
	if skipped(n) || b.hidden(n) {
		return
	}
	start := len(b.layout.Lines)
	id := dom.Attr(n, "id")

	if !b.hasIDs[n] {
		// Row: the whole subtree is one line
		text := dom.TextContent(n)
		if text != "" || id != "" {
			b.add(Line{Text: text, Node: n, Depth: depth})
		}
	} else {
		childDepth := depth
		if id != "" {
			childDepth++
		}
		b.children(n, childDepth)
	}

	b.layout.spans[n] = Span{Start: start, End: len(b.layout.Lines)}
}

func (b *builder) add(line Line) {
	b.layout.Lines = append(b.layout.Lines, line)
}

func (b *builder) hidden(n *html.Node) bool {
	if hasAttr(n, "hidden") {
		return true
	}
	if dom.HasClass(n, domain.ClassActive) {
		return false
	}
	return slices.ContainsFunc(b.rules.HiddenUnlessActive, func(class string) bool {
		return dom.HasClass(n, class)
	})
}

func skipped(n *html.Node) bool {
	switch n.Data {
	case "script", "style", "template", "head":
		return true
	}
	return false
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return true
		}
	}
	return false
}
