package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/troubledoc"
	"github.com/google/uuid"
)

// Ensure LoggingSearcher implements troubledoc.Searcher.
var _ troubledoc.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher and logs one summary line per search,
// tagged with a correlation id.
type LoggingSearcher struct {
	next   troubledoc.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next troubledoc.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the outcome.
func (s *LoggingSearcher) Search(ctx context.Context, req troubledoc.SearchRequest) (result *troubledoc.SearchResult) {
	defer func(begin time.Time) {
		attrs := []any{
			"id", uuid.NewString(),
			"query", req.Query,
			"provider", req.Provider,
			"service", req.Service,
			"category", req.Category,
			"results", result.TotalResults,
			"duration", time.Since(begin),
		}
		if result.Error != "" {
			attrs = append(attrs, "err", result.Error)
			s.logger.Warn("search", attrs...)
			return
		}
		s.logger.Info("search", attrs...)
	}(time.Now())
	return s.next.Search(ctx, req)
}
