package severus

// Self is the identity selector. Extractors given Self operate on the
// current node without narrowing.
const Self = ""

// Node is one position in a parsed document tree. Nodes are borrowed from
// the tree that produced them and are never mutated by extractors.
type Node interface {
	// Find returns the first node matching selector, considering the node
	// itself before its descendants.
	Find(selector string) (Node, bool)

	// FindAll returns every node matching selector in document order.
	// It returns an empty slice when nothing matches.
	FindAll(selector string) []Node

	// Text returns the flattened text content of the node and all of its
	// descendants.
	Text() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)
}

// RawAttrNode is implemented by nodes that keep attribute values as they
// appeared in the source, before entity decoding.
type RawAttrNode interface {
	Node
	RawAttr(name string) (string, bool)
}

// HTMLNode is implemented by nodes that can render their outer markup.
type HTMLNode interface {
	Node
	HTML() (string, error)
}

// Parser turns raw document text into a root Node.
type Parser interface {
	Parse(text string) (Node, error)
}
