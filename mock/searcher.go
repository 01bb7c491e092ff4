package mock

import (
	"context"

	"github.com/fwojciec/troubledoc"
)

var _ troubledoc.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of troubledoc.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, req troubledoc.SearchRequest) *troubledoc.SearchResult
}

func (s *Searcher) Search(ctx context.Context, req troubledoc.SearchRequest) *troubledoc.SearchResult {
	return s.SearchFn(ctx, req)
}
