package prometheus

import (
	"context"

	"github.com/fwojciec/troubledoc"
)

// Ensure MetricsFetcher implements troubledoc.Fetcher.
var _ troubledoc.Fetcher = (*MetricsFetcher)(nil)

// MetricsFetcher wraps a Fetcher and counts fetch outcomes.
type MetricsFetcher struct {
	next troubledoc.Fetcher
}

// NewMetricsFetcher creates a new MetricsFetcher.
func NewMetricsFetcher(next troubledoc.Fetcher) *MetricsFetcher {
	return &MetricsFetcher{next: next}
}

// Fetch delegates to the wrapped fetcher, counting completed exchanges and
// transport failures.
func (f *MetricsFetcher) Fetch(ctx context.Context, url string) (*troubledoc.FetchResult, error) {
	result, err := f.next.Fetch(ctx, url)
	if err != nil {
		FetchFailures.Inc()
		return nil, err
	}
	PagesFetched.Inc()
	return result, nil
}

// Close delegates to the wrapped fetcher.
func (f *MetricsFetcher) Close() error {
	return f.next.Close()
}
