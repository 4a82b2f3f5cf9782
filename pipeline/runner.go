package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"rubyalign/logger"
	"rubyalign/model"
)

// Resolver turns a title and its reading into display segments.
type Resolver interface {
	Resolve(title, reading string) []model.Segment
}

// Result pairs an Item with the segments produced for it.
type Result struct {
	Item      Item            `json:"item"`
	Segments  []model.Segment `json:"segments"`
	Annotated bool            `json:"annotated"`
	Duration  time.Duration   `json:"duration_ns"`
}

// Summary counts how a batch resolved.
type Summary struct {
	Total     int `json:"total"`
	Annotated int `json:"annotated"`
	Plain     int `json:"plain"`
}

// Runner resolves batches of items on a bounded worker pool.
type Runner struct {
	resolver Resolver
	workers  int
	log      logger.Logger
}

// NewRunner returns a Runner with at most workers concurrent resolutions.
// A nil log discards output.
func NewRunner(r Resolver, workers int, log logger.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{resolver: r, workers: workers, log: log}
}

// Run resolves every item and returns results in input order. It stops
// early and returns the context error if ctx is cancelled.
func (r *Runner) Run(ctx context.Context, items []Item) ([]Result, error) {
	results := make([]Result, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	r.log.Info("batch started", "items", len(items), "workers", r.workers)
	for i, it := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			segs := r.resolver.Resolve(it.Title, it.Reading)
			results[i] = Result{
				Item:      it,
				Segments:  segs,
				Annotated: annotated(segs),
				Duration:  time.Since(start),
			}
			r.log.Debug("resolved", "id", it.ID, "title", it.Title, "segments", len(segs))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sum := Summarize(results)
	r.log.Info("batch finished", "annotated", sum.Annotated, "plain", sum.Plain)
	return results, nil
}

// Summarize counts annotated and plain results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, res := range results {
		if res.Annotated {
			s.Annotated++
		} else {
			s.Plain++
		}
	}
	return s
}

func annotated(segs []model.Segment) bool {
	for _, s := range segs {
		if s.HasRuby() {
			return true
		}
	}
	return false
}
