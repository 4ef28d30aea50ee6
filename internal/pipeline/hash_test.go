package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentHashHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"<!DOCTYPE html>", ContentHashHex([]byte("<!DOCTYPE html>"))},
	}
	for _, tt := range tests {
		got := ContentHashHex([]byte(tt.in))
		require.Equal(t, tt.want, got)
		require.Len(t, got, 64)
	}
	require.NotEqual(t, ContentHashHex([]byte("a.html")), ContentHashHex([]byte("b.html")))
}

func TestBuild_HashTracksChapterContent(t *testing.T) {
	book := sampleBook(t)
	p := New(book, nil, nil, Options{})

	before, err := p.Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, ContentHashHex(before.Output), before.Hash)

	again, err := p.Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, before.Hash, again.Hash)

	path := filepath.Join(book.EntryContext, "b.md")
	require.NoError(t, os.WriteFile(path, []byte("# B\n\n## Renamed\n"), 0o644))

	after, err := p.Build(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, before.Hash, after.Hash)
}

func TestBuild_LanguageDrivesSlugs(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.md": "# Kapitel\n\n## Über uns\n"})

	for lang, want := range map[string]string{"de": "a.html#ueber-uns", "": "a.html#uber-uns"} {
		book := sampleBook(t)
		book.EntryContext = dir
		book.Language = lang
		book.Entries = entries("a.md")

		res, err := New(book, nil, nil, Options{}).Build(context.Background())
		require.NoError(t, err)
		require.Equal(t, want, res.Entries[1].Href, "language %q", lang)
	}
}
