package dom

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Element is a handle on an element node of a Document
type Element struct {
	doc  *Document
	node *html.Node
}

// Node returns the underlying html node
func (e *Element) Node() *html.Node {
	return e.node
}

// ID returns the element id attribute
func (e *Element) ID() string {
	return attr(e.node, "id")
}

// Classes returns the element class list
func (e *Element) Classes() []string {
	return strings.Fields(attr(e.node, "class"))
}

// HasClass reports whether the element carries class
func (e *Element) HasClass(class string) bool {
	return hasClass(e.node, class)
}

// AddClass adds class unless already present
func (e *Element) AddClass(class string) {
	classes := e.Classes()
	if slices.Contains(classes, class) {
		return
	}
	setAttr(e.node, "class", strings.Join(append(classes, class), " "))
	e.doc.revision++
}

// RemoveClass removes every occurrence of class
func (e *Element) RemoveClass(class string) {
	classes := e.Classes()
	kept := slices.DeleteFunc(slices.Clone(classes), func(c string) bool { return c == class })
	if len(kept) == len(classes) {
		return
	}
	setAttr(e.node, "class", strings.Join(kept, " "))
	e.doc.revision++
}

// Text returns the element text content with whitespace collapsed
func (e *Element) Text() string {
	return TextContent(e.node)
}

// TextContent returns the text of n and its descendants with whitespace collapsed
func TextContent(n *html.Node) string {
	var b strings.Builder
	collectText(&b, n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func collectText(b *strings.Builder, n *html.Node) {
	switch {
	case n.Type == html.TextNode:
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	case n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style"):
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

// Attr returns the value of attribute key on n
func Attr(n *html.Node, key string) string {
	return attr(n, key)
}

// HasClass reports whether n carries class
func HasClass(n *html.Node, class string) bool {
	return hasClass(n, class)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(attr(n, "class")), class)
}
