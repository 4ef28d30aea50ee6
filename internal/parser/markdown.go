package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dgallion1/tocgen/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
)

// MarkdownParser handles Markdown chapters using goldmark. Markdown is
// rendered to HTML first so the tree carries the same element vocabulary
// as HTML chapters.
type MarkdownParser struct {
	md goldmark.Markdown
}

func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			// Allows "## Heading {#custom-id}" to pin an anchor.
			goldmark.WithParserOptions(gmparser.WithAttribute()),
		),
	}
}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := p.md
	if md == nil {
		md = NewMarkdownParser().md
	}

	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("convert markdown %s: %w", filename, err)
	}

	return parseFragment(&buf)
}
