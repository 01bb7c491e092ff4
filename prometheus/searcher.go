package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/troubledoc"
)

// Ensure MetricsSearcher implements troubledoc.Searcher.
var _ troubledoc.Searcher = (*MetricsSearcher)(nil)

// MetricsSearcher wraps a Searcher and records search counts and latency.
type MetricsSearcher struct {
	next troubledoc.Searcher
}

// NewMetricsSearcher creates a new MetricsSearcher.
func NewMetricsSearcher(next troubledoc.Searcher) *MetricsSearcher {
	return &MetricsSearcher{next: next}
}

// Search delegates to the wrapped searcher.
func (s *MetricsSearcher) Search(ctx context.Context, req troubledoc.SearchRequest) *troubledoc.SearchResult {
	begin := time.Now()
	result := s.next.Search(ctx, req)
	SearchesTotal.Inc()
	SearchDuration.Observe(time.Since(begin).Seconds())
	return result
}
