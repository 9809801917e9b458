// Package htmltomarkdown renders document fragments as Markdown using
// html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/jimmed/severus"
)

// Converter converts HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter with CommonMark and table support.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", severus.Errorf(severus.EINVALID, "empty HTML input")
	}
	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}

// Markdown returns an extractor rendering the first node matching selector
// as Markdown. It is Absent when nothing matches, when the node cannot
// render its markup or when conversion fails.
func (c *Converter) Markdown(selector string) severus.Extractor[string] {
	return severus.Within(selector, func(n severus.Node) (string, bool) {
		h, ok := n.(severus.HTMLNode)
		if !ok {
			return "", false
		}
		html, err := h.HTML()
		if err != nil {
			return "", false
		}
		md, err := c.Convert(html)
		if err != nil {
			return "", false
		}
		return md, true
	})
}
