package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/dotlabel/internal/ctxlog"
	"github.com/vk/dotlabel/internal/fsutil"
	"github.com/vk/dotlabel/internal/patch"
	"golang.org/x/sync/errgroup"
)

// maxWorkers bounds how many graph files are transformed at once.
const maxWorkers = 8

// pending is a file whose new content is ready to be written.
type pending struct {
	path   string
	result *patch.Result
}

// Run processes every target file. All files are transformed in memory
// first; nothing is written unless every one of them succeeded.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	targets, err := fsutil.ResolveTargets(a.config.GraphPath, a.config.Extension)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		a.logger.Warn("No graph files found.", "path", a.config.GraphPath, "extension", a.config.Extension)
		return nil
	}
	a.logger.Debug("Targets resolved.", "count", len(targets))

	work, err := a.transformAll(ctx, targets)
	if err != nil {
		return err
	}

	if a.config.DryRun {
		return a.printDiffs(work)
	}

	for _, p := range work {
		out := withMarker(p.result.Text(), a.dialect.Marker)
		if err := fsutil.WriteFileAtomic(p.path, []byte(out)); err != nil {
			return err
		}
		a.logger.Info("Graph file labeled.", "path", p.path, "edges_patched", p.result.Patched)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// transformAll reads and transforms every target concurrently. The returned
// slice keeps the order of targets and omits files that carry the marker.
func (a *App) transformAll(ctx context.Context, targets []string) ([]pending, error) {
	results := make([]*pending, len(targets))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)
	for i, path := range targets {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			text := string(data)

			if hasMarker(text, a.dialect.Marker) {
				a.logger.Info("Graph file already processed, skipping.", "path", path)
				return nil
			}

			result, err := a.Transform(gCtx, text)
			if err != nil {
				return fmt.Errorf("failed to process %s: %w", path, err)
			}
			results[i] = &pending{path: path, result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	work := make([]pending, 0, len(results))
	for _, p := range results {
		if p != nil {
			work = append(work, *p)
		}
	}
	return work, nil
}

// Transform labels the edges of one graph text and returns the patched text.
func (a *App) Transform(ctx context.Context, text string) (*patch.Result, error) {
	parser, err := a.dialect.Parser()
	if err != nil {
		return nil, err
	}

	graph, err := parser.Parse(ctx, text, a.dialect.HeaderLines)
	if err != nil {
		return nil, err
	}
	if len(graph.Links) == 0 {
		ctxlog.FromContext(ctx).Warn("Graph has no edges, nothing to label.", "nodes", len(graph.Nodes))
	}

	if err := a.dialect.Labeler().LabelEdges(ctx, graph); err != nil {
		return nil, err
	}

	return patch.Apply(ctx, text, graph.Links), nil
}

func (a *App) printDiffs(work []pending) error {
	for _, p := range work {
		out, err := p.result.UnifiedDiff(p.path)
		if err != nil {
			return err
		}
		if out == nil {
			a.logger.Info("Dry run: no label changes.", "path", p.path)
			continue
		}
		if _, err := a.outW.Write(out); err != nil {
			return err
		}
	}
	return nil
}
