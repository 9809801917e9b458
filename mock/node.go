package mock

import "github.com/jimmed/severus"

var _ severus.RawAttrNode = (*Node)(nil)

// Node is a mock implementation of severus.RawAttrNode.
type Node struct {
	FindFn    func(selector string) (severus.Node, bool)
	FindAllFn func(selector string) []severus.Node
	TextFn    func() string
	AttrFn    func(name string) (string, bool)
	RawAttrFn func(name string) (string, bool)
}

func (n *Node) Find(selector string) (severus.Node, bool) {
	return n.FindFn(selector)
}

func (n *Node) FindAll(selector string) []severus.Node {
	return n.FindAllFn(selector)
}

func (n *Node) Text() string {
	return n.TextFn()
}

func (n *Node) Attr(name string) (string, bool) {
	return n.AttrFn(name)
}

func (n *Node) RawAttr(name string) (string, bool) {
	return n.RawAttrFn(name)
}
