// Package pipeline drives one publication build: load chapters, extract
// the outline, build the table of contents, assemble and render.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgallion1/tocgen/internal/assemble"
	"github.com/dgallion1/tocgen/internal/config"
	"github.com/dgallion1/tocgen/internal/doctree"
	"github.com/dgallion1/tocgen/internal/outline"
	"github.com/dgallion1/tocgen/internal/parser"
	"github.com/dgallion1/tocgen/internal/render"
	"github.com/dgallion1/tocgen/internal/slug"
	"github.com/dgallion1/tocgen/internal/toc"
)

// OutputBase is the file name, without extension, of the rendered page.
const OutputBase = "toc"

// Options tune a Pipeline. Zero values pick defaults.
type Options struct {
	LoadConcurrency int
	// OutputDir overrides the book's output directory.
	OutputDir string
	// ParserFor selects a parser per chapter. Defaults to parser.ForFile.
	ParserFor func(filename string) (parser.Parser, error)
}

// Pipeline builds one book. It holds no per-run state, so Build may be
// called repeatedly; every call starts from a fresh slug registry.
type Pipeline struct {
	book     config.Book
	renderer render.Renderer
	log      *slog.Logger
	opts     Options
}

func New(book config.Book, renderer render.Renderer, log *slog.Logger, opts Options) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	if opts.LoadConcurrency <= 0 {
		opts.LoadConcurrency = 4
	}
	if opts.ParserFor == nil {
		opts.ParserFor = parser.ForFile
	}
	if renderer == nil {
		renderer = &render.HTML{Title: book.Title, Language: book.Language, Stylesheet: book.Stylesheet()}
	}
	return &Pipeline{book: book, renderer: renderer, log: log, opts: opts}
}

// Result is the outcome of a successful build.
type Result struct {
	Tree     *doctree.Node
	Entries  []toc.Entry
	Headings []toc.Resolved
	Chapters int
	Output   []byte
	Hash     string
}

// Validate reports configuration errors before any chapter is read.
func (p *Pipeline) Validate() error {
	if err := p.book.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	for _, path := range p.book.ContentPaths() {
		if _, err := p.opts.ParserFor(path); err != nil {
			return configErr("%s: %v", path, err)
		}
		info, err := os.Stat(p.book.Resolve(path))
		if err != nil {
			return configErr("entry %s does not resolve: %v", path, err)
		}
		if info.IsDir() {
			return configErr("entry %s is a directory", path)
		}
	}
	return nil
}

// Build runs every stage and returns the rendered output without writing
// it. Nothing is returned on failure; a partial result is never valid.
func (p *Pipeline) Build(ctx context.Context) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	sources, err := p.Load(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := p.parse(sources)
	if err != nil {
		return nil, err
	}

	headings, err := outline.NewExtractor(p.log).Extract(docs)
	if err != nil {
		return nil, err
	}

	front := assemble.FrontMatter{
		Title:    p.book.Title,
		Author:   p.book.Author,
		TOCTitle: p.book.TOCTitle,
		Cover:    p.book.Cover,
	}
	slugs := slug.NewRegistry()
	slugs.Lang = p.book.Language
	res := toc.NewBuilder(front.Reserved(), slugs).Build(headings)
	p.applyEntryTitles(res.Entries)

	tree, err := assemble.New(front, p.log).Assemble(docs, res)
	if err != nil {
		return nil, err
	}

	out, err := p.renderer.Render(tree)
	if err != nil {
		return nil, &RenderError{Err: err}
	}

	chapters := 0
	for _, h := range res.Headings {
		if h.Boundary {
			chapters++
		}
	}

	p.log.Info("built table of contents",
		"chapters", chapters,
		"headings", len(headings),
		"toc_entries", len(res.Entries),
		"bytes", len(out),
	)

	return &Result{
		Tree:     tree,
		Entries:  res.Entries,
		Headings: res.Headings,
		Chapters: chapters,
		Output:   out,
		Hash:     ContentHashHex(out),
	}, nil
}

// parse runs sequentially so that parse failures are reported for the
// first failing chapter in configuration order.
func (p *Pipeline) parse(sources []Source) ([]outline.Document, error) {
	docs := make([]outline.Document, 0, len(sources))
	for _, src := range sources {
		pr, err := p.opts.ParserFor(src.Path)
		if err != nil {
			return nil, configErr("%s: %v", src.Path, err)
		}
		tree, err := pr.Parse(bytes.NewReader(src.Raw), filepath.Base(src.Path))
		if err != nil {
			return nil, &ParseError{Path: src.Path, Err: err}
		}
		docs = append(docs, outline.Document{Path: src.Path, Tree: tree})
	}
	return docs, nil
}

// applyEntryTitles lets an entry's configured title replace the label of
// its chapter link.
func (p *Pipeline) applyEntryTitles(entries []toc.Entry) {
	titles := make(map[string]string)
	for _, e := range p.book.ContentEntries() {
		if e.Title != "" {
			titles[e.Path] = e.Title
		}
	}
	for i := range entries {
		if !entries[i].Chapter {
			continue
		}
		if title, ok := titles[entries[i].Source]; ok {
			entries[i].Label = title
		}
	}
}

// OutputPath is where Write places the rendered page.
func (p *Pipeline) OutputPath() string {
	dir := p.opts.OutputDir
	if dir == "" {
		dir = p.book.OutputDir()
	}
	return filepath.Join(dir, OutputBase+p.renderer.Ext())
}

// Write stores the output atomically: it is staged in a temp file next to
// the target and renamed into place.
func (p *Pipeline) Write(res *Result) (string, error) {
	target := p.OutputPath()
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+OutputBase+"-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(res.Output); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close output: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return "", fmt.Errorf("chmod output: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return "", fmt.Errorf("rename output: %w", err)
	}

	p.log.Info("wrote table of contents", "path", target)
	return target, nil
}

// Run builds and writes.
func (p *Pipeline) Run(ctx context.Context) (*Result, string, error) {
	res, err := p.Build(ctx)
	if err != nil {
		return nil, "", err
	}
	path, err := p.Write(res)
	if err != nil {
		return nil, "", err
	}
	return res, path, nil
}
