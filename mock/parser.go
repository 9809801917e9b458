package mock

import "github.com/jimmed/severus"

var _ severus.Parser = (*Parser)(nil)

// Parser is a mock implementation of severus.Parser.
type Parser struct {
	ParseFn func(text string) (severus.Node, error)
}

func (p *Parser) Parse(text string) (severus.Node, error) {
	return p.ParseFn(text)
}
