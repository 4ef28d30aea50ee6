package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dgallion1/tocgen/internal/pipeline"
	"github.com/dgallion1/tocgen/internal/toc"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// FormatSummary renders the result of a build in a box.
func FormatSummary(w io.Writer, res *pipeline.Result, path string) {
	content := fmt.Sprintf("%s\n%s %d  %s %d\n%s %s\n%s %s",
		successStyle.Render("✓ table of contents written"),
		dimStyle.Render("Chapters:"), res.Chapters,
		dimStyle.Render("Entries:"), len(res.Entries),
		dimStyle.Render("Output:"), path,
		dimStyle.Render("Hash:"), shortHash(res.Hash),
	)
	fmt.Fprintln(w, boxStyle.Render(content))
}

// FormatOutline prints one line per entry, indented two spaces per level
// below the first.
func FormatOutline(w io.Writer, entries []toc.Entry) {
	for _, e := range entries {
		indent := strings.Repeat("  ", max(e.Level-1, 0))
		label := e.Label
		if e.Chapter {
			label = titleStyle.Render(label)
		}
		fmt.Fprintf(w, "%s%s %s\n", indent, label, dimStyle.Render("→ "+e.Href))
	}
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
