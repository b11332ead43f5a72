package search

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/scrape/types"

	"golang.org/x/sync/errgroup"
)

// Aggregator fans one search out to every requested source through the retry
// wrapper, tolerating partial failure: a source that exhausts its retries
// becomes a diagnostic string, never an aborted run.
type Aggregator struct {
	Fetchers       map[string]types.Fetcher
	DefaultSources []string
	Retry          RetryPolicy

	// Per-attempt timeouts. The browser-driven source gets WorkerTimeout
	// (its subprocess wall clock); everything else gets NetTimeout.
	NetTimeout    time.Duration
	WorkerTimeout time.Duration
}

type sourceResult struct {
	name    string
	records []domain.JobRecord
	err     error
}

var errUnknownSource = errors.New("unknown source")

// Run dispatches one retry-wrapped fetch per source and collects after all
// have settled. Records concatenate in request order (not finish order) so
// "relevance" sorting stays deterministic; errors come back as
// "<source>: <message>". No dedup happens across sources.
func (a *Aggregator) Run(ctx context.Context, q types.Query, sources []string) ([]domain.JobRecord, []string) {
	names := dedupe(sources)
	if len(names) == 0 {
		names = dedupe(a.DefaultSources)
	}

	results := make(chan sourceResult, len(names))
	var g errgroup.Group

	for _, name := range names {
		f, ok := a.Fetchers[name]
		if !ok {
			results <- sourceResult{name: name, err: errUnknownSource}
			continue
		}

		name, f := name, f
		g.Go(func() error {
			op := func(ctx context.Context) ([]domain.JobRecord, error) {
				actx, cancel := context.WithTimeout(ctx, a.timeoutFor(f))
				defer cancel()
				return f.Fetch(actx, q)
			}

			records, err := WithRetry(ctx, a.Retry, op)
			if err != nil {
				log.Printf("[%s] fetch failed after retries: %v", name, err)
			} else {
				log.Printf("[%s] fetched=%d", name, len(records))
			}
			results <- sourceResult{name: name, records: records, err: err}
			return nil // best-effort: a failed source never cancels siblings
		})
	}

	_ = g.Wait()
	close(results)

	byName := make(map[string]sourceResult, len(names))
	for res := range results {
		byName[res.name] = res
	}

	var pooled []domain.JobRecord
	var errs []string
	for _, name := range names {
		res := byName[name]
		if res.err != nil {
			errs = append(errs, fmt.Sprintf("%s: %s", name, res.err.Error()))
			continue
		}
		pooled = append(pooled, res.records...)
	}
	return pooled, errs
}

func (a *Aggregator) timeoutFor(f types.Fetcher) time.Duration {
	if f.Name() == "welcometothejungle" {
		if a.WorkerTimeout > 0 {
			return a.WorkerTimeout
		}
		return time.Minute
	}
	if a.NetTimeout > 0 {
		return a.NetTimeout
	}
	return 30 * time.Second
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
