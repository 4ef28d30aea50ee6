package pipeline

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// Source is one loaded chapter file. Index is its position in the
// configured entry list.
type Source struct {
	Index int
	Path  string
	Raw   []byte
}

// Load reads all content entries concurrently. The returned slice is in
// configuration order regardless of completion order.
func (p *Pipeline) Load(ctx context.Context) ([]Source, error) {
	paths := p.book.ContentPaths()
	sources := make([]Source, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.LoadConcurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := os.ReadFile(p.book.Resolve(path))
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			// Each goroutine owns exactly one slot.
			sources[i] = Source{Index: i, Path: path, Raw: raw}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.log.Debug("loaded chapters", "count", len(sources))
	return sources, nil
}
