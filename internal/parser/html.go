package parser

import (
	"fmt"
	"io"

	"github.com/dgallion1/tocgen/internal/doctree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLParser handles HTML chapters. Only the body content is kept; the
// assembled publication supplies its own head.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html %s: %w", filename, err)
	}

	root := doctree.NewRoot()
	body := findBody(doc)
	if body == nil {
		return root, nil
	}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if n := fromHTML(c); n != nil {
			root.Append(n)
		}
	}
	return root, nil
}

// parseFragment parses HTML as the content of a <body> element.
func parseFragment(r io.Reader) (*doctree.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, fmt.Errorf("parse html fragment: %w", err)
	}

	root := doctree.NewRoot()
	for _, n := range nodes {
		if conv := fromHTML(n); conv != nil {
			root.Append(conv)
		}
	}
	return root, nil
}

// fromHTML converts an x/net/html node into a doctree node. Comments and
// doctypes are dropped.
func fromHTML(n *html.Node) *doctree.Node {
	switch n.Type {
	case html.TextNode:
		return doctree.NewText(n.Data)
	case html.ElementNode:
		var out *doctree.Node
		if level := headingLevel(n.Data); level > 0 {
			out = doctree.NewHeading(level)
		} else {
			out = doctree.NewElement(n.Data, nil)
		}
		for _, a := range n.Attr {
			if a.Namespace != "" {
				continue
			}
			out.SetProp(a.Key, a.Val)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if conv := fromHTML(c); conv != nil {
				out.Append(conv)
			}
		}
		return out
	}
	return nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
