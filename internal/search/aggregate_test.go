package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/scrape/types"

	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	name    string
	records []domain.JobRecord
	err     error
	calls   int
}

func (f *fakeFetcher) Name() string { return f.name }

func (f *fakeFetcher) Fetch(ctx context.Context, q types.Query) ([]domain.JobRecord, error) {
	f.calls++
	return f.records, f.err
}

func newAggregator(fetchers ...*fakeFetcher) *Aggregator {
	m := map[string]types.Fetcher{}
	var names []string
	for _, f := range fetchers {
		m[f.name] = f
		names = append(names, f.name)
	}
	return &Aggregator{
		Fetchers:       m,
		DefaultSources: names,
		Retry:          RetryPolicy{MaxAttempts: 2, BaseDelay: time.Millisecond},
	}
}

func TestRunPartialFailure(t *testing.T) {
	good := &fakeFetcher{name: "alpha", records: []domain.JobRecord{job("a1"), job("a2")}}
	bad := &fakeFetcher{name: "beta", err: errors.New("boom")}
	agg := newAggregator(good, bad)

	pooled, errs := agg.Run(context.Background(), types.Query{Keywords: "go"}, []string{"alpha", "beta"})

	require.Len(t, pooled, 2)
	require.Len(t, errs, 1)
	require.Equal(t, "beta: boom", errs[0])
	require.Equal(t, 2, bad.calls) // retried once, then gave up
}

func TestRunUnknownSource(t *testing.T) {
	good := &fakeFetcher{name: "alpha", records: []domain.JobRecord{job("a1")}}
	agg := newAggregator(good)

	pooled, errs := agg.Run(context.Background(), types.Query{}, []string{"alpha", "nosuch"})

	require.Len(t, pooled, 1)
	require.Len(t, errs, 1)
	require.Equal(t, "nosuch: unknown source", errs[0])
}

func TestRunRequestOrderIsStable(t *testing.T) {
	a := &fakeFetcher{name: "alpha", records: []domain.JobRecord{job("a1")}}
	b := &fakeFetcher{name: "beta", records: []domain.JobRecord{job("b1")}}
	agg := newAggregator(a, b)

	for i := 0; i < 10; i++ {
		pooled, errs := agg.Run(context.Background(), types.Query{}, []string{"beta", "alpha"})
		require.Empty(t, errs)
		require.Equal(t, "b1", pooled[0].ID)
		require.Equal(t, "a1", pooled[1].ID)
	}
}

func TestRunFallsBackToDefaultSources(t *testing.T) {
	a := &fakeFetcher{name: "alpha", records: []domain.JobRecord{job("a1")}}
	agg := newAggregator(a)

	pooled, errs := agg.Run(context.Background(), types.Query{}, nil)

	require.Empty(t, errs)
	require.Len(t, pooled, 1)
}

func TestRunDedupesRequestedSources(t *testing.T) {
	a := &fakeFetcher{name: "alpha", records: []domain.JobRecord{job("a1")}}
	agg := newAggregator(a)

	pooled, _ := agg.Run(context.Background(), types.Query{}, []string{"alpha", "alpha", ""})

	require.Len(t, pooled, 1)
	require.Equal(t, 1, a.calls)
}
