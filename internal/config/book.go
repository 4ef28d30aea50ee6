package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RelContents marks the entry that supplies the table of contents page
// styling rather than chapter content.
const RelContents = "contents"

// Entry is one item of the book's entry list. In YAML it is either a bare
// path or a mapping.
type Entry struct {
	Path  string `yaml:"path"`
	Rel   string `yaml:"rel,omitempty"`
	Theme string `yaml:"theme,omitempty"`
	Title string `yaml:"title,omitempty"`
}

func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&e.Path)
	}
	type plain Entry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = Entry(p)
	return nil
}

// Book describes one publication.
type Book struct {
	Title        string  `yaml:"title"`
	Author       string  `yaml:"author"`
	Language     string  `yaml:"language"`
	TOCTitle     string  `yaml:"tocTitle"`
	Cover        string  `yaml:"cover"`
	EntryContext string  `yaml:"entryContext"`
	Output       string  `yaml:"output"`
	Entries      []Entry `yaml:"entry"`
}

// LoadBook reads a YAML book config. A relative entryContext is resolved
// against the config file's directory.
func LoadBook(path string) (Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Book{}, fmt.Errorf("read book config: %w", err)
	}

	var b Book
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Book{}, fmt.Errorf("parse book config %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	switch {
	case b.EntryContext == "":
		b.EntryContext = dir
	case !filepath.IsAbs(b.EntryContext):
		b.EntryContext = filepath.Join(dir, b.EntryContext)
	}
	return b, nil
}

// ContentEntries returns the chapter entries in configured order, skipping
// the contents entry.
func (b Book) ContentEntries() []Entry {
	var entries []Entry
	for _, e := range b.Entries {
		if e.Rel == RelContents {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

func (b Book) ContentPaths() []string {
	entries := b.ContentEntries()
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths
}

// Stylesheet returns the theme of the contents entry, if any.
func (b Book) Stylesheet() string {
	for _, e := range b.Entries {
		if e.Rel == RelContents {
			return e.Theme
		}
	}
	return ""
}

// OutputDir is where the rendered table of contents is written.
func (b Book) OutputDir() string {
	if b.Output == "" {
		return b.EntryContext
	}
	if filepath.IsAbs(b.Output) {
		return b.Output
	}
	return filepath.Join(b.EntryContext, b.Output)
}

// Resolve joins a configured path with the entry context.
func (b Book) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(b.EntryContext, p)
}

var (
	ErrNoContent = errors.New("no content entries configured")
	ErrEmptyPath = errors.New("entry has an empty path")
	ErrDuplicate = errors.New("entry is listed more than once")
)

// Validate checks the entry list shape. File existence is checked by the
// pipeline.
func (b Book) Validate() error {
	// Chapters are addressed by path, so each may appear only once.
	seen := make(map[string]int)
	for i, e := range b.Entries {
		if e.Rel == RelContents {
			continue
		}
		if e.Path == "" {
			return fmt.Errorf("entry %d: %w", i, ErrEmptyPath)
		}
		key := filepath.Clean(e.Path)
		if j, ok := seen[key]; ok {
			return fmt.Errorf("entry %d %q repeats entry %d: %w", i, e.Path, j, ErrDuplicate)
		}
		seen[key] = i
	}
	if len(b.ContentPaths()) == 0 {
		return ErrNoContent
	}
	return nil
}
