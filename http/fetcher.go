// Package http provides an HTTP-based implementation of troubledoc.Fetcher
// for fetching documentation pages that don't require JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/troubledoc"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the client to documentation servers.
const DefaultUserAgent = "troubledoc/1.0 (+https://github.com/fwojciec/troubledoc)"

// Ensure Fetcher implements troubledoc.Fetcher at compile time.
var _ troubledoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documentation pages using plain HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for static pages only. HTTP statuses travel in the FetchResult; the
// error return is reserved for transport failures.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	retryDelays []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRetryDelays enables retries of transport failures with the given
// backoff delays: one retry per delay after the initial attempt.
// Completed exchanges are never retried regardless of HTTP status.
// Default is no retries.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// DefaultRetryDelays returns the backoff delays used with WithRetryDelays
// by the CLI: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a GET against the URL and returns the response status
// and body for any completed exchange, including non-2xx statuses.
// Transport failures are retried per the configured delays before being
// returned as errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*troubledoc.FetchResult, error) {
	result, err := f.fetchOnce(ctx, url)
	for attempt := 0; err != nil && attempt < len(f.retryDelays); attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.retryDelays[attempt]):
		}
		result, err = f.fetchOnce(ctx, url)
	}
	return result, err
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (*troubledoc.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &troubledoc.FetchResult{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
