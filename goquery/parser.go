package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimmed/severus"
	"golang.org/x/net/html"
)

// Ensure Parser implements severus.Parser at compile time.
var _ severus.Parser = (*Parser)(nil)

// Parser parses HTML documents into Nodes.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses text as an HTML document and returns its root.
func (p *Parser) Parse(text string) (severus.Node, error) {
	root, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, severus.Errorf(severus.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewDocument(goquery.NewDocumentFromNode(root)), nil
}

// MustParse is like Parse but panics on error. It is intended for fixtures
// and tests.
func MustParse(text string) *Node {
	root, err := html.Parse(strings.NewReader(text))
	if err != nil {
		panic(err)
	}
	return NewDocument(goquery.NewDocumentFromNode(root))
}
