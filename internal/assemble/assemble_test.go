package assemble

import (
	"testing"

	"github.com/dgallion1/tocgen/internal/doctree"
	"github.com/dgallion1/tocgen/internal/outline"
	"github.com/dgallion1/tocgen/internal/slug"
	"github.com/dgallion1/tocgen/internal/toc"
	"github.com/stretchr/testify/require"
)

func heading(depth int, text string) *doctree.Node {
	return doctree.NewHeading(depth, doctree.NewText(text))
}

func build(t *testing.T, front FrontMatter, docs []outline.Document) (*doctree.Node, toc.Result) {
	t.Helper()
	headings, err := outline.NewExtractor(nil).Extract(docs)
	require.NoError(t, err)
	res := toc.NewBuilder(front.Reserved(), slug.NewRegistry()).Build(headings)
	tree, err := New(front, nil).Assemble(docs, res)
	require.NoError(t, err)
	return tree, res
}

func sampleDocs() []outline.Document {
	return []outline.Document{
		{Path: "a.md", Tree: doctree.NewRoot(
			heading(1, "A"),
			doctree.NewElement("p", nil, doctree.NewText("alpha")),
			heading(2, "A sub"),
		)},
		{Path: "b.md", Tree: doctree.NewRoot(
			heading(1, "B"),
			heading(2, "Notes"),
			heading(2, "Notes"),
		)},
	}
}

func TestAssemble_Layout(t *testing.T) {
	front := FrontMatter{Title: "My Book", Author: "Jane Doe", Cover: "cover.png"}
	tree, _ := build(t, front, sampleDocs())

	require.Equal(t, doctree.Root, tree.Kind)
	require.Len(t, tree.Children, 6)

	cover, title, author, nav := tree.Children[0], tree.Children[1], tree.Children[2], tree.Children[3]
	require.Equal(t, "img", cover.Tag)
	require.Equal(t, "cover.png", cover.Prop("src"))
	require.Equal(t, doctree.Heading, title.Kind)
	require.Equal(t, "My Book", title.TextContent())
	require.Equal(t, "by Jane Doe", author.TextContent())
	require.Equal(t, "nav", nav.Tag)
	require.Equal(t, "toc", nav.Prop("id"))
	require.Equal(t, "doc-toc", nav.Prop("role"))
	require.Equal(t, DefaultTOCTitle, nav.Children[0].TextContent())

	for i, src := range []string{"a.md", "b.md"} {
		section := tree.Children[4+i]
		require.Equal(t, "section", section.Tag)
		require.Equal(t, src, section.Prop("data-source"))
	}
}

func TestAssemble_NoAuthorOrCover(t *testing.T) {
	tree, _ := build(t, FrontMatter{Title: "T", TOCTitle: "Contents"}, sampleDocs())
	require.Equal(t, "T", tree.Children[0].TextContent())
	require.Equal(t, "nav", tree.Children[1].Tag)
	require.Equal(t, "Contents", tree.Children[1].Children[0].TextContent())
}

func TestAssemble_AnchorsAndChapters(t *testing.T) {
	docs := sampleDocs()
	build(t, FrontMatter{Title: "My Book"}, docs)

	a, b := docs[0].Tree.Children, docs[1].Tree.Children
	require.Equal(t, ChapterID(1), a[0].Prop("id"))
	require.Equal(t, "1", a[0].Prop("data-chapter"))
	require.Equal(t, "a-sub", a[2].Prop("id"))
	require.Equal(t, ChapterID(2), b[0].Prop("id"))
	require.Equal(t, "notes", b[1].Prop("id"))
	require.Equal(t, "notes-1", b[2].Prop("id"))
}

func TestAssemble_NavigationLinks(t *testing.T) {
	tree, _ := build(t, FrontMatter{}, sampleDocs())
	nav := tree.Children[0]
	require.Equal(t, "nav", nav.Tag)

	list := nav.Children[1]
	require.Equal(t, "ol", list.Tag)

	var got []map[string]string
	for _, li := range list.Children {
		require.Equal(t, "li", li.Tag)
		got = append(got, li.Children[0].Props)
	}

	require.Equal(t, []map[string]string{
		{"href": "a.html", "data-level": "1", "data-chapter": "1"},
		{"href": "a.html#a-sub", "data-level": "2", "class": "ml-3"},
		{"href": "b.html", "data-level": "1", "data-chapter": "2"},
		{"href": "b.html#notes", "data-level": "2", "class": "ml-3"},
		{"href": "b.html#notes-1", "data-level": "2", "class": "ml-3"},
	}, got)
}

func TestAssemble_ReservedHeadingsUntouched(t *testing.T) {
	docs := []outline.Document{
		{Path: "a.md", Tree: doctree.NewRoot(
			heading(1, "My Book"),
			heading(1, "Intro"),
			heading(2, "table of contents"),
		)},
	}
	tree, res := build(t, FrontMatter{Title: "My Book"}, docs)

	kids := docs[0].Tree.Children
	require.Empty(t, kids[0].Prop("id"))
	require.Equal(t, ChapterID(1), kids[1].Prop("id"))
	require.Empty(t, kids[2].Prop("id"))

	require.Len(t, res.Entries, 1)
	require.Equal(t, "Intro", res.Entries[0].Label)

	nav := tree.Children[1]
	require.Len(t, nav.Children[1].Children, 1)
}

func TestAssemble_ExistingIDKept(t *testing.T) {
	pinned := heading(2, "Setup")
	pinned.SetProp("id", "install")
	docs := []outline.Document{{Path: "a.md", Tree: doctree.NewRoot(heading(1, "A"), pinned)}}

	_, res := build(t, FrontMatter{}, docs)
	require.Equal(t, "install", pinned.Prop("id"))
	require.Equal(t, "a.html#install", res.Entries[1].Href)
}

func TestAssemble_ChapterIDAvoidsExistingID(t *testing.T) {
	pinned := heading(2, "X")
	pinned.SetProp("id", ChapterID(1))
	docs := []outline.Document{
		{Path: "a.md", Tree: doctree.NewRoot(heading(1, "A"))},
		{Path: "b.md", Tree: doctree.NewRoot(heading(1, "B"), pinned)},
	}
	build(t, FrontMatter{}, docs)

	require.Equal(t, ChapterID(1)+"-1", docs[0].Tree.Children[0].Prop("id"))
	require.Equal(t, "1", docs[0].Tree.Children[0].Prop("data-chapter"))
	require.Equal(t, ChapterID(2), docs[1].Tree.Children[0].Prop("id"))
	require.Equal(t, ChapterID(1), pinned.Prop("id"))
}

func TestAssemble_RepeatedIDRewritten(t *testing.T) {
	first, second := heading(2, "One"), heading(2, "Two")
	first.SetProp("id", "dup")
	second.SetProp("id", "dup")
	docs := []outline.Document{{Path: "a.md", Tree: doctree.NewRoot(heading(1, "A"), first, second)}}

	_, res := build(t, FrontMatter{}, docs)
	require.Equal(t, "dup", first.Prop("id"))
	require.Equal(t, "dup-1", second.Prop("id"))
	require.Equal(t, "a.html#dup-1", res.Entries[2].Href)
}

func TestAssemble_TextlessHeadingsKeepAlignment(t *testing.T) {
	empty := doctree.NewHeading(2)
	docs := []outline.Document{{Path: "a.md", Tree: doctree.NewRoot(
		heading(1, "A"),
		empty,
		heading(2, "After"),
	)}}
	build(t, FrontMatter{}, docs)
	require.Empty(t, empty.Prop("id"))
	require.Equal(t, "after", docs[0].Tree.Children[2].Prop("id"))
}

func TestFrontMatter_Reserved(t *testing.T) {
	r := FrontMatter{Title: "T", Author: "A"}.Reserved()
	require.Equal(t, map[string]bool{"T": true, "A": true, DefaultTOCTitle: true}, r)
}
