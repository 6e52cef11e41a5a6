// Package dom holds the view tree of the results container. The host renders
// markup; this package only parses it and mutates class marks.
package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is the results container and everything rendered into it
type Document struct {
	root     *html.Node
	revision uint64
}

// New creates an empty results container with the given element id
func New(id string) *Document {
	return &Document{
		root: &html.Node{
			Type:     html.ElementNode,
			Data:     "div",
			DataAtom: atom.Div,
			Attr:     []html.Attribute{{Key: "id", Val: id}},
		},
	}
}

// Root returns the results container node
func (d *Document) Root() *html.Node {
	return d.root
}

// Revision changes every time the tree or a class mark changes
func (d *Document) Revision() uint64 {
	return d.revision
}

// SetInnerHTML replaces the container content with markup
func (d *Document) SetInnerHTML(markup string) error {
	nodes, err := d.parse(markup)
	if err != nil {
		return err
	}
	for c := d.root.FirstChild; c != nil; {
		next := c.NextSibling
		d.root.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		d.root.AppendChild(n)
	}
	d.revision++
	return nil
}

// AppendHTML adds markup after the existing content
func (d *Document) AppendHTML(markup string) error {
	nodes, err := d.parse(markup)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		d.root.AppendChild(n)
	}
	d.revision++
	return nil
}

func (d *Document) parse(markup string) ([]*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), d.root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}
	return nodes, nil
}

// ElementByID returns the first element in document order with the id, or nil
func (d *Document) ElementByID(id string) *Element {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return &Element{doc: d, node: found}
}

// ElementsByClass returns every element carrying the class, in document order
func (d *Document) ElementsByClass(class string) []*Element {
	var elems []*Element
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && hasClass(n, class) {
			elems = append(elems, &Element{doc: d, node: n})
		}
		return true
	})
	return elems
}

// HTML serializes the container content
func (d *Document) HTML() string {
	var b strings.Builder
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

// walk visits n and its descendants depth first until visit returns false
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}
