package starglob

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	defaultChunkSize = 1024

	// How many subjects a worker matches between checks for cancellation.
	cancelCheckInterval = 256
)

// Filter returns the subjects accepted by the list, in their original order.
// The subjects are split into chunks which are matched in parallel; since
// Pattern and List are read-only this needs no locking.
// Filter stops early, returning the context's error, if ctx is cancelled.
func (l *List) Filter(ctx context.Context, subjects []string, opts ...FilterOption) ([]string, error) {
	cfg := &filterConfig{
		goroutines: runtime.GOMAXPROCS(0),
		chunkSize:  defaultChunkSize,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}
	if cfg.goroutines <= 0 {
		cfg.goroutines = runtime.GOMAXPROCS(0)
	}
	if cfg.chunkSize <= 0 {
		cfg.chunkSize = defaultChunkSize
	}

	accept := l.AnyMatch
	if cfg.requireAll {
		accept = l.AllMatch
	}

	// Each worker writes only to its own range of keep.
	keep := make([]bool, len(subjects))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.goroutines)

	cfg.logf("filtering %d subjects against %d patterns, %d goroutines, chunks of %d\n",
		len(subjects), l.Len(), cfg.goroutines, cfg.chunkSize)

	for start := 0; start < len(subjects); start += cfg.chunkSize {
		if gctx.Err() != nil {
			// Don't feed any more work.
			break
		}
		end := min(start+cfg.chunkSize, len(subjects))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if (i-start)%cancelCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				keep[i] = accept(subjects[i]) != cfg.invert
			}
			cfg.logf("chunk [%d, %d) done\n", start, end)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []string
	for i, k := range keep {
		if k {
			out = append(out, subjects[i])
		}
	}
	return out, nil
}
