// Package goquery adapts github.com/PuerkitoBio/goquery selections to
// severus.Node, so HTML documents can be queried with CSS selectors.
package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/jimmed/severus"
)

// Ensure Node implements severus.HTMLNode at compile time.
var _ severus.HTMLNode = (*Node)(nil)

// Node wraps a goquery selection of exactly one node.
// Invalid selectors match nothing.
type Node struct {
	sel *goquery.Selection
}

// NewNode returns a Node for the first node of sel.
func NewNode(sel *goquery.Selection) *Node {
	return &Node{sel: sel.First()}
}

// NewDocument returns a Node for the root of doc.
func NewDocument(doc *goquery.Document) *Node {
	return NewNode(doc.Selection)
}

// Selection returns the underlying selection.
func (n *Node) Selection() *goquery.Selection {
	return n.sel
}

// Find returns the node itself if it matches selector, else its first
// matching descendant.
func (n *Node) Find(selector string) (severus.Node, bool) {
	if n.sel.Is(selector) {
		return n, true
	}
	found := n.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return &Node{sel: found}, true
}

// FindAll returns the node itself if it matches selector, followed by its
// matching descendants in document order.
func (n *Node) FindAll(selector string) []severus.Node {
	found := n.sel.Find(selector)
	nodes := make([]severus.Node, 0, found.Length()+1)
	if n.sel.Is(selector) {
		nodes = append(nodes, n)
	}
	found.Each(func(_ int, sel *goquery.Selection) {
		nodes = append(nodes, &Node{sel: sel})
	})
	return nodes
}

// Text returns the combined text of the node and its descendants.
func (n *Node) Text() string {
	return n.sel.Text()
}

// Attr returns the entity-decoded value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// HTML renders the node and its descendants.
func (n *Node) HTML() (string, error) {
	return goquery.OuterHtml(n.sel)
}
