// Package toc turns the flat heading outline into table-of-contents
// entries and resolves the anchor of every heading.
package toc

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/dgallion1/tocgen/internal/outline"
	"github.com/dgallion1/tocgen/internal/slug"
)

// Entry is one line of the table of contents. Level is the heading depth;
// consumers derive visual nesting from it.
type Entry struct {
	Href    string `json:"href"`
	Label   string `json:"label"`
	Level   int    `json:"level"`
	Source  string `json:"source"`
	Chapter bool   `json:"chapter"`
}

// Resolved is a heading with its anchor decided.
type Resolved struct {
	outline.Heading
	// Boundary marks the depth-1 heading that opens its source file. It is
	// linked at file granularity and gets no generated anchor; AnchorID
	// holds its own id only when that id is unique.
	Boundary bool
	// Reserved marks decorative headings (title, author, TOC title).
	Reserved bool
}

// NavID is the id of the navigation element. It is claimed before any
// heading so no anchor can shadow it.
const NavID = "toc"

// Result holds the entries plus one Resolved per input heading, index
// aligned with the builder's input. Slugs is the registry the anchors came
// from; ids synthesized later must be drawn from it too.
type Result struct {
	Entries  []Entry
	Headings []Resolved
	Slugs    *slug.Registry
}

// Builder converts headings into entries. Slugs is consumed: every call to
// Build advances its counters.
type Builder struct {
	Reserved map[string]bool
	Slugs    *slug.Registry
}

func NewBuilder(reserved map[string]bool, slugs *slug.Registry) *Builder {
	if slugs == nil {
		slugs = slug.NewRegistry()
	}
	return &Builder{Reserved: reserved, Slugs: slugs}
}

// Build resolves anchors in input order and emits one entry per
// non-reserved heading.
//
// Ids already present on headings are claimed first. When two headings
// carry the same id, the first keeps it and later ones are re-anchored.
func (b *Builder) Build(headings []outline.Heading) Result {
	res := Result{
		Entries:  make([]Entry, 0, len(headings)),
		Headings: make([]Resolved, len(headings)),
		Slugs:    b.Slugs,
	}

	b.Slugs.Claim(NavID)
	owner := make(map[string]int)
	for i, h := range headings {
		if h.AnchorID != "" && b.Slugs.Claim(h.AnchorID) {
			owner[h.AnchorID] = i
		}
	}

	opened := make(map[string]bool)

	for i, h := range headings {
		r := Resolved{Heading: h}
		if b.Reserved[h.Text] {
			r.Reserved = true
			res.Headings[i] = r
			continue
		}

		first := !opened[h.SourceFile]
		opened[h.SourceFile] = true

		taken := false
		if r.AnchorID != "" {
			if j, ok := owner[r.AnchorID]; !ok || j != i {
				taken = true
			}
		}

		file := OutputPath(h.SourceFile)
		var href string
		if h.Depth == 1 && first {
			r.Boundary = true
			if taken {
				r.AnchorID = ""
			}
			href = file
		} else {
			switch {
			case taken:
				r.AnchorID = b.Slugs.Unique(r.AnchorID)
			case r.AnchorID == "":
				r.AnchorID = b.Slugs.Slug(h.Text)
			}
			href = file + "#" + r.AnchorID
		}

		res.Headings[i] = r
		res.Entries = append(res.Entries, Entry{
			Href:    href,
			Label:   h.Text,
			Level:   h.Depth,
			Source:  h.SourceFile,
			Chapter: r.Boundary,
		})
	}
	return res
}

// OutputPath maps a configured source path to the path of its rendered
// page: "./chapter1/index.md" becomes "chapter1/index.html".
func OutputPath(source string) string {
	if source == "" {
		return ""
	}
	p := path.Clean(filepath.ToSlash(source))
	p = strings.TrimPrefix(p, "./")
	return strings.TrimSuffix(p, path.Ext(p)) + ".html"
}
