package slog

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/troubledoc"
)

// Ensure LoggingFetcher implements troubledoc.Fetcher.
var _ troubledoc.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging. Transport
// failures and unexpected statuses are logged as warnings; missing pages
// (404) are expected during candidate probing and stay at debug level.
type LoggingFetcher struct {
	next   troubledoc.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next troubledoc.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*troubledoc.FetchResult, error) {
	begin := time.Now()
	result, err := f.next.Fetch(ctx, url)
	duration := time.Since(begin)

	switch {
	case err != nil:
		f.logger.Warn("fetch failed",
			"url", url,
			"duration", duration,
			"err", err,
		)
	case result.StatusCode == http.StatusNotFound:
		f.logger.Debug("fetch",
			"url", url,
			"status", result.StatusCode,
			"duration", duration,
		)
	case result.StatusCode < 200 || result.StatusCode >= 300:
		f.logger.Warn("fetch returned unexpected status",
			"url", url,
			"status", result.StatusCode,
			"duration", duration,
		)
	default:
		f.logger.Debug("fetch",
			"url", url,
			"status", result.StatusCode,
			"bytes", len(result.Body),
			"duration", duration,
		)
	}

	return result, err
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
