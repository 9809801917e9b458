// Package etree adapts github.com/beevik/etree elements to severus.Node,
// so XML documents such as feeds and sitemaps can be queried with etree
// path selectors (e.g. "channel/item", ".//loc", "item[@type='x']").
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/jimmed/severus"
)

// Ensure Node implements severus.Node at compile time.
var _ severus.Node = (*Node)(nil)

// Node wraps one etree element. Selectors are etree paths evaluated
// relative to the element; invalid paths match nothing.
type Node struct {
	el *etree.Element
}

// NewNode returns a Node for el.
func NewNode(el *etree.Element) *Node {
	return &Node{el: el}
}

// Element returns the underlying element.
func (n *Node) Element() *etree.Element {
	return n.el
}

// Find returns the first element selected by the path.
func (n *Node) Find(selector string) (severus.Node, bool) {
	path, err := etree.CompilePath(selector)
	if err != nil {
		return nil, false
	}
	el := n.el.FindElementPath(path)
	if el == nil {
		return nil, false
	}
	return &Node{el: el}, true
}

// FindAll returns every element selected by the path, in document order.
func (n *Node) FindAll(selector string) []severus.Node {
	path, err := etree.CompilePath(selector)
	if err != nil {
		return []severus.Node{}
	}
	els := n.el.FindElementsPath(path)
	nodes := make([]severus.Node, len(els))
	for i, el := range els {
		nodes[i] = &Node{el: el}
	}
	return nodes
}

// Text returns the character data of the element and all of its
// descendants, including CDATA sections.
func (n *Node) Text() string {
	var sb strings.Builder
	writeText(&sb, n.el)
	return sb.String()
}

func writeText(sb *strings.Builder, el *etree.Element) {
	for _, tok := range el.Child {
		switch tok := tok.(type) {
		case *etree.CharData:
			sb.WriteString(tok.Data)
		case *etree.Element:
			writeText(sb, tok)
		}
	}
}

// Attr returns the value of the named attribute. Namespaced attributes are
// named "prefix:key".
func (n *Node) Attr(name string) (string, bool) {
	attr := n.el.SelectAttr(name)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}
