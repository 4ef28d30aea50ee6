// Package outline extracts the ordered heading outline from parsed chapter
// trees.
package outline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgallion1/tocgen/internal/doctree"
)

const (
	MinDepth = 1
	MaxDepth = 6
)

// Heading is one entry of the flat outline. Text is copied out of the tree
// so later rewrites of the tree never change a captured record.
type Heading struct {
	Depth      int
	Text       string
	SourceFile string
	AnchorID   string // Empty unless the heading already carried an id.
}

// Document pairs a chapter tree with its configured path.
type Document struct {
	Path string
	Tree *doctree.Node
}

// DepthError reports a heading level outside 1..6.
type DepthError struct {
	Path  string
	Depth int
	Text  string
}

func (e *DepthError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("heading %q has depth %d, want %d-%d", e.Text, e.Depth, MinDepth, MaxDepth)
	}
	return fmt.Sprintf("%s: heading %q has depth %d, want %d-%d", e.Path, e.Text, e.Depth, MinDepth, MaxDepth)
}

// Walk visits every text-bearing heading of tree in pre-order. Headings
// whose text is empty are reported to skipped (which may be nil) instead
// of visit. Heading children are not descended into.
//
// Both extraction and anchor assignment go through Walk, so their heading
// sequences line up index for index.
func Walk(tree *doctree.Node, visit func(n *doctree.Node, text string) error, skipped func(n *doctree.Node)) error {
	var err error
	doctree.Walk(tree, func(n *doctree.Node) bool {
		if err != nil {
			return false
		}
		if n.Kind != doctree.Heading {
			return true
		}

		text := n.TextContent()
		if n.Depth < MinDepth || n.Depth > MaxDepth {
			err = &DepthError{Depth: n.Depth, Text: text}
			return false
		}
		if text == "" {
			if skipped != nil {
				skipped(n)
			}
			return false
		}
		err = visit(n, text)
		return false
	})
	return err
}

// Extractor builds the global outline across chapters.
type Extractor struct {
	log *slog.Logger
}

func NewExtractor(log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{log: log}
}

// Extract returns the headings of all docs, in document order and then in
// the order of docs. The trees are not modified.
func (e *Extractor) Extract(docs []Document) ([]Heading, error) {
	var out []Heading
	for _, doc := range docs {
		err := Walk(doc.Tree, func(n *doctree.Node, text string) error {
			out = append(out, Heading{
				Depth:      n.Depth,
				Text:       text,
				SourceFile: doc.Path,
				AnchorID:   n.Prop("id"),
			})
			return nil
		}, func(n *doctree.Node) {
			e.log.Warn("skipping heading without text", "path", doc.Path, "depth", n.Depth)
		})
		if err != nil {
			var de *DepthError
			if errors.As(err, &de) {
				de.Path = doc.Path
			}
			return nil, err
		}
	}
	return out, nil
}
