// Package assemble merges chapter trees into one publication tree with
// front matter, a navigation block and anchor-addressable headings.
package assemble

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dgallion1/tocgen/internal/doctree"
	"github.com/dgallion1/tocgen/internal/outline"
	"github.com/dgallion1/tocgen/internal/slug"
	"github.com/dgallion1/tocgen/internal/toc"
)

// DefaultTOCTitle is the navigation heading used when none is configured.
const DefaultTOCTitle = "table of contents"

// FrontMatter holds the synthesized title page content.
type FrontMatter struct {
	Title    string
	Author   string
	TOCTitle string
	Cover    string // Image path, optional.
}

// Reserved returns the decorative heading texts that are never slugged or
// listed in the table of contents.
func (f FrontMatter) Reserved() map[string]bool {
	reserved := make(map[string]bool, 3)
	for _, s := range []string{f.Title, f.Author, f.tocTitle()} {
		if s != "" {
			reserved[s] = true
		}
	}
	return reserved
}

func (f FrontMatter) tocTitle() string {
	if f.TOCTitle == "" {
		return DefaultTOCTitle
	}
	return f.TOCTitle
}

// ChapterCounter numbers file-boundary headings in the order they are met.
type ChapterCounter struct {
	n int
}

func (c *ChapterCounter) Next() int {
	c.n++
	return c.n
}

func (c *ChapterCounter) Count() int {
	return c.n
}

// Assembler builds the publication tree.
type Assembler struct {
	front FrontMatter
	log   *slog.Logger
}

func New(front FrontMatter, log *slog.Logger) *Assembler {
	if log == nil {
		log = slog.Default()
	}
	return &Assembler{front: front, log: log}
}

// Assemble rewrites docs in place and returns the merged tree. res must
// come from building the outline of these same docs.
func (a *Assembler) Assemble(docs []outline.Document, res toc.Result) (*doctree.Node, error) {
	slugs := res.Slugs
	if slugs == nil {
		slugs = slug.NewRegistry()
	}
	chapters, err := a.assignAnchors(docs, res.Headings, slugs)
	if err != nil {
		return nil, err
	}

	root := doctree.NewRoot()
	for _, doc := range docs {
		root.Append(doctree.NewElement("section", map[string]string{
			"class":       "chapter",
			"data-source": doc.Path,
		}, doc.Tree.Children...))
	}

	front := a.frontMatter()
	front = append(front, a.navigation(res.Entries, chapters))
	root.Prepend(front...)

	a.log.Debug("assembled publication", "chapters", len(docs), "toc_entries", len(res.Entries))
	return root, nil
}

// assignAnchors walks the chapter headings in outline order and sets ids.
// File-boundary headings are numbered by a ChapterCounter; the returned
// map gives the chapter number of each source path. Synthesized chapter
// ids are drawn from slugs so they cannot repeat an existing id.
func (a *Assembler) assignAnchors(docs []outline.Document, headings []toc.Resolved, slugs *slug.Registry) (map[string]int, error) {
	var counter ChapterCounter
	chapters := make(map[string]int)
	idx := 0

	for _, doc := range docs {
		err := outline.Walk(doc.Tree, func(n *doctree.Node, text string) error {
			if idx >= len(headings) {
				return fmt.Errorf("%s: heading %q has no outline record", doc.Path, text)
			}
			r := headings[idx]
			idx++

			switch {
			case r.Reserved:
			case r.Boundary:
				num := counter.Next()
				chapters[doc.Path] = num
				n.SetProp("data-chapter", strconv.Itoa(num))
				id := r.AnchorID
				if id == "" {
					id = slugs.Unique(ChapterID(num))
				}
				n.SetProp("id", id)
			default:
				n.SetProp("id", r.AnchorID)
			}
			return nil
		}, nil)
		if err != nil {
			return nil, err
		}
	}
	return chapters, nil
}

func (a *Assembler) frontMatter() []*doctree.Node {
	var nodes []*doctree.Node
	if a.front.Cover != "" {
		nodes = append(nodes, doctree.NewElement("img", map[string]string{
			"class": "cover",
			"src":   a.front.Cover,
			"alt":   a.front.Title,
		}))
	}
	if a.front.Title != "" {
		title := doctree.NewHeading(1, doctree.NewText(a.front.Title))
		title.SetProp("class", "title")
		nodes = append(nodes, title)
	}
	if a.front.Author != "" {
		nodes = append(nodes, doctree.NewElement("p", map[string]string{"class": "author"},
			doctree.NewText("by "+a.front.Author)))
	}
	return nodes
}

// navigation renders the entries as an ordered list of links. Indentation
// is a class derived from level-1.
func (a *Assembler) navigation(entries []toc.Entry, chapters map[string]int) *doctree.Node {
	list := doctree.NewElement("ol", nil)
	for _, e := range entries {
		props := map[string]string{
			"href":       e.Href,
			"data-level": strconv.Itoa(e.Level),
		}
		if e.Level > 1 {
			props["class"] = "ml-" + strconv.Itoa((e.Level-1)*3)
		}
		if e.Chapter {
			if num, ok := chapters[e.Source]; ok {
				props["data-chapter"] = strconv.Itoa(num)
			}
		}
		link := doctree.NewElement("a", props, doctree.NewText(e.Label))
		list.Append(doctree.NewElement("li", nil, link))
	}

	return doctree.NewElement("nav", map[string]string{"id": toc.NavID, "role": "doc-toc"},
		doctree.NewHeading(2, doctree.NewText(a.front.tocTitle())),
		list,
	)
}

// ChapterID is the anchor given to a file-boundary heading. The underscore
// keeps it disjoint from generated slugs, which only contain [a-z0-9-].
func ChapterID(num int) string {
	return "chapter_" + strconv.Itoa(num)
}
