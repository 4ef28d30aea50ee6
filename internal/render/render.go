// Package render serializes an assembled tree into a standalone HTML page.
package render

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/dgallion1/tocgen/internal/doctree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Renderer turns a publication tree into output bytes.
type Renderer interface {
	Render(tree *doctree.Node) ([]byte, error)
	// Ext is the output file extension, including the dot.
	Ext() string
}

// HTML renders a complete HTML document around the tree.
type HTML struct {
	Title      string
	Language   string
	Stylesheet string
}

func (r *HTML) Ext() string { return ".html" }

func (r *HTML) Render(tree *doctree.Node) ([]byte, error) {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element("html")
	if r.Language != "" {
		root.Attr = append(root.Attr, html.Attribute{Key: "lang", Val: r.Language})
	}
	doc.AppendChild(root)

	root.AppendChild(r.head())
	root.AppendChild(newline())

	body := element("body")
	for _, c := range tree.Children {
		n, err := toHTML(c)
		if err != nil {
			return nil, err
		}
		body.AppendChild(newline())
		body.AppendChild(n)
	}
	body.AppendChild(newline())
	root.AppendChild(body)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (r *HTML) head() *html.Node {
	head := element("head")
	head.AppendChild(element("meta", html.Attribute{Key: "charset", Val: "utf-8"}))

	title := element("title")
	title.AppendChild(&html.Node{Type: html.TextNode, Data: r.Title})
	head.AppendChild(title)

	head.AppendChild(element("link",
		html.Attribute{Key: "rel", Val: "publication"},
		html.Attribute{Key: "href", Val: "publication.json"},
		html.Attribute{Key: "type", Val: "application/ld+json"},
	))
	if r.Stylesheet != "" {
		head.AppendChild(element("link",
			html.Attribute{Key: "href", Val: r.Stylesheet},
			html.Attribute{Key: "rel", Val: "stylesheet"},
		))
	}
	return head
}

func toHTML(n *doctree.Node) (*html.Node, error) {
	var out *html.Node
	switch n.Kind {
	case doctree.Text:
		return &html.Node{Type: html.TextNode, Data: n.Value}, nil
	case doctree.Heading:
		if n.Depth < 1 || n.Depth > 6 {
			return nil, fmt.Errorf("render heading: invalid depth %d", n.Depth)
		}
		out = element("h" + strconv.Itoa(n.Depth))
	case doctree.Element:
		out = element(n.Tag)
	case doctree.Root:
		out = element("div")
	default:
		return nil, fmt.Errorf("render: unknown node kind %q", n.Kind)
	}

	out.Attr = attributes(n.Props)
	for _, c := range n.Children {
		child, err := toHTML(c)
		if err != nil {
			return nil, err
		}
		out.AppendChild(child)
	}
	return out, nil
}

// attributes emits props in key order so output is byte-stable.
func attributes(props map[string]string) []html.Attribute {
	if len(props) == 0 {
		return nil
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, html.Attribute{Key: k, Val: props[k]})
	}
	return attrs
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag)), Attr: attrs}
}

func newline() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}
