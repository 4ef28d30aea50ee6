package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dgallion1/tocgen/internal/pipeline"
	"github.com/dgallion1/tocgen/internal/toc"
)

func TestFormatOutline_Indents(t *testing.T) {
	var buf bytes.Buffer
	FormatOutline(&buf, []toc.Entry{
		{Href: "a.html", Label: "A", Level: 1, Chapter: true},
		{Href: "a.html#notes", Label: "Notes", Level: 2},
		{Href: "a.html#deep", Label: "Deep", Level: 3},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "  Notes") {
		t.Errorf("level 2 should indent two spaces, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "    Deep") {
		t.Errorf("level 3 should indent four spaces, got %q", lines[2])
	}
	if !strings.Contains(lines[1], "a.html#notes") {
		t.Errorf("missing href in %q", lines[1])
	}
}

func TestFormatSummary(t *testing.T) {
	var buf bytes.Buffer
	FormatSummary(&buf, &pipeline.Result{
		Entries:  make([]toc.Entry, 5),
		Chapters: 2,
		Hash:     "0123456789abcdef0123",
	}, "out/toc.html")

	out := buf.String()
	for _, want := range []string{"out/toc.html", "0123456789ab", "written"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0123456789abc") {
		t.Errorf("hash should be shortened:\n%s", out)
	}
}
