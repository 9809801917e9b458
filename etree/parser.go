package etree

import (
	"github.com/beevik/etree"
	"github.com/jimmed/severus"
)

// Ensure Parser implements severus.Parser at compile time.
var _ severus.Parser = (*Parser)(nil)

// Parser parses XML documents into Nodes.
type Parser struct {
	permissive bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithPermissive tolerates common XML errors such as unescaped ampersands
// and unknown entities, as found in many real-world feeds.
func WithPermissive() Option {
	return func(p *Parser) {
		p.permissive = true
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses text as XML and returns the document node. Paths evaluated
// against it start above the root element, so "rss/channel" selects the
// channel of an RSS feed.
func (p *Parser) Parse(text string) (severus.Node, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = p.permissive
	if err := doc.ReadFromString(text); err != nil {
		return nil, severus.Errorf(severus.EINVALID, "failed to parse XML: %v", err)
	}
	if doc.Root() == nil {
		return nil, severus.Errorf(severus.EINVALID, "empty XML document")
	}
	return NewNode(&doc.Element), nil
}
