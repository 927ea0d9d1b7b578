// Package pipeline sequences the conversion stages for one document:
// extract → fetch → assemble. Fetches run concurrently under a bounded
// worker group, but pages are recorded by reference index so completion
// order never affects PDF page order.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/basilelt/reader2pdf/core"
)

const defaultConcurrency = 4

// Options tune one conversion run.
type Options struct {
	// Concurrency bounds parallel image fetches; <= 0 means the default.
	Concurrency int
	// BestEffort assembles the pages that fetched successfully instead
	// of failing the run on the first fetch error. Off by default:
	// a publication missing pages is rarely a useful deliverable.
	BestEffort bool
	// OnProgress, if set, is called after each page is fetched (or
	// found cached) with the completed and total page counts.
	OnProgress func(done, total int)
}

// Pipeline converts one saved reader HTML document into a PDF.
type Pipeline struct {
	extractor core.Extractor
	fetcher   core.Fetcher
	store     core.Store
	assembler core.Assembler
	opts      Options
}

// New wires the four stages into a Pipeline.
func New(ex core.Extractor, f core.Fetcher, st core.Store, asm core.Assembler, opts Options) *Pipeline {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	return &Pipeline{extractor: ex, fetcher: f, store: st, assembler: asm, opts: opts}
}

// Run converts the HTML document at htmlPath into a PDF at outPath.
// Failures are reported as a *core.PipelineError tagged with the stage
// that failed; on failure nothing is written to outPath.
func (p *Pipeline) Run(ctx context.Context, htmlPath, outPath string) error {
	refs, err := p.extract(htmlPath)
	if err != nil {
		return &core.PipelineError{Stage: core.StageExtracting, Err: err}
	}

	pages, err := p.fetchAll(ctx, refs)
	if err != nil {
		return &core.PipelineError{Stage: core.StageFetching, Err: err}
	}

	if err := p.assembler.Assemble(pages, outPath); err != nil {
		return &core.PipelineError{Stage: core.StageAssembling, Err: err}
	}
	return nil
}

// extract reads the input document and produces the ordered reference
// list. An empty list is fatal here: there is nothing to convert.
func (p *Pipeline) extract(htmlPath string) ([]core.PageReference, error) {
	html, err := os.ReadFile(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	refs, err := p.extractor.Extract(string(html))
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, core.ErrNoPages
	}
	return refs, nil
}

// fetchAll downloads every referenced image into the store. The first
// failure cancels the group context, abandoning outstanding fetches;
// in best-effort mode failed pages are dropped instead, as long as at
// least one page survives.
func (p *Pipeline) fetchAll(ctx context.Context, refs []core.PageReference) ([]core.FetchedPage, error) {
	pages := make([]core.FetchedPage, len(refs))
	missing := make([]bool, len(refs))

	var (
		mu       sync.Mutex
		firstErr error
		done     atomic.Int32
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)

	for _, ref := range refs {
		g.Go(func() error {
			path := p.store.Allocate(ref.Index)
			if !p.store.Has(path) {
				data, err := p.fetcher.Fetch(gctx, ref.URL)
				if err != nil {
					if !p.opts.BestEffort {
						return err
					}
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					missing[ref.Index] = true
					return nil
				}
				if err := p.store.Commit(path, data); err != nil {
					return err
				}
			}
			pages[ref.Index] = core.FetchedPage{Ref: ref, Path: path}
			if p.opts.OnProgress != nil {
				p.opts.OnProgress(int(done.Add(1)), len(refs))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if p.opts.BestEffort {
		kept := pages[:0]
		for i, page := range pages {
			if !missing[i] {
				kept = append(kept, page)
			}
		}
		if len(kept) == 0 {
			return nil, firstErr
		}
		return kept, nil
	}
	return pages, nil
}
