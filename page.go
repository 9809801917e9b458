package severus

import (
	"context"
	"fmt"
)

// Page binds a URL resolver and a root extractor into a fetch, parse and
// extract pipeline. A Page holds no state between calls and is safe for
// concurrent use as long as its Fetcher and Parser are.
type Page[A, R any] struct {
	url     Resolver[A]
	extract Extractor[R]
	fetcher Fetcher
	parser  Parser
}

// NewPage creates a Page. url is any source accepted by NewResolver.
func NewPage[A, R any](url any, extract Extractor[R], fetcher Fetcher, parser Parser) (*Page[A, R], error) {
	resolve, err := NewResolver[A](url)
	if err != nil {
		return nil, err
	}
	if extract == nil {
		return nil, Errorf(ECONFIG, "page extractor required")
	}
	if fetcher == nil {
		return nil, Errorf(ECONFIG, "page fetcher required")
	}
	if parser == nil {
		return nil, Errorf(ECONFIG, "page parser required")
	}
	return &Page[A, R]{
		url:     resolve,
		extract: extract,
		fetcher: fetcher,
		parser:  parser,
	}, nil
}

// URL returns the request URL for args.
func (p *Page[A, R]) URL(args A) string {
	return p.url(args)
}

// Fetch retrieves the raw document for args. Fetcher errors are returned
// unchanged.
func (p *Page[A, R]) Fetch(ctx context.Context, args A) (string, error) {
	return p.fetcher.Fetch(ctx, p.URL(args))
}

// Scrape fetches and parses the document for args and applies the root
// extractor to it. The boolean result is false when the root extractor
// found nothing.
func (p *Page[A, R]) Scrape(ctx context.Context, args A) (R, bool, error) {
	var zero R
	body, err := p.Fetch(ctx, args)
	if err != nil {
		return zero, false, err
	}
	root, err := p.parser.Parse(body)
	if err != nil {
		return zero, false, fmt.Errorf("parsing %s: %w", p.URL(args), err)
	}
	v, ok := p.Resolve(root)
	return v, ok, nil
}

// Resolve applies the root extractor to an already parsed document.
func (p *Page[A, R]) Resolve(root Node) (R, bool) {
	return p.extract(root)
}
