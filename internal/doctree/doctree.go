// Package doctree is the format-neutral document tree shared by the parsers,
// the outline extractor, the assembler and the renderer.
package doctree

import (
	"strings"
)

// Kind identifies what a Node represents.
type Kind string

const (
	Root    Kind = "root"
	Element Kind = "element"
	Heading Kind = "heading"
	Text    Kind = "text"
)

// Node is a recursive document node. Headings carry their level in Depth,
// text nodes carry their content in Value.
type Node struct {
	Kind     Kind
	Tag      string            // Element tag name ("p", "nav", ...). Empty for root and text.
	Depth    int               // Heading level, 1-6 for well-formed input.
	Value    string            // Text content for text nodes.
	Props    map[string]string // Attributes such as id, class, href.
	Children []*Node
}

func NewRoot(children ...*Node) *Node {
	return &Node{Kind: Root, Children: children}
}

func NewElement(tag string, props map[string]string, children ...*Node) *Node {
	return &Node{Kind: Element, Tag: tag, Props: props, Children: children}
}

func NewHeading(depth int, children ...*Node) *Node {
	return &Node{Kind: Heading, Depth: depth, Children: children}
}

func NewText(value string) *Node {
	return &Node{Kind: Text, Value: value}
}

// Append adds children at the end.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Prepend adds children at the front, keeping their relative order.
func (n *Node) Prepend(children ...*Node) {
	merged := make([]*Node, 0, len(children)+len(n.Children))
	merged = append(merged, children...)
	merged = append(merged, n.Children...)
	n.Children = merged
}

// Prop returns the named attribute, or "" when unset.
func (n *Node) Prop(key string) string {
	if n.Props == nil {
		return ""
	}
	return n.Props[key]
}

func (n *Node) SetProp(key, value string) {
	if n.Props == nil {
		n.Props = make(map[string]string)
	}
	n.Props[key] = value
}

// TextContent concatenates all descendant text, trimmed.
func (n *Node) TextContent() string {
	var sb strings.Builder
	Walk(n, func(c *Node) bool {
		if c.Kind == Text {
			sb.WriteString(c.Value)
		}
		return true
	})
	return strings.TrimSpace(sb.String())
}

// Clone returns a deep copy sharing no nodes or prop maps with n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Kind: n.Kind, Tag: n.Tag, Depth: n.Depth, Value: n.Value}
	if n.Props != nil {
		c.Props = make(map[string]string, len(n.Props))
		for k, v := range n.Props {
			c.Props[k] = v
		}
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Walk visits n and its descendants in pre-order. Returning false from
// visit skips the node's children.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, visit)
	}
}
