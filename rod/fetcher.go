// Package rod implements a Fetcher that renders pages in headless Chrome.
// Most AWS documentation pages are served as static HTML, but some guide
// content is hydrated client side; this fetcher captures the DOM after
// JavaScript has run.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/troubledoc"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page render.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements troubledoc.Fetcher at compile time.
var _ troubledoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// It reports the HTTP status of the document response so callers can treat
// missing pages the same way they would with a plain HTTP fetch.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager      *BrowserManager
	fetchTimeout time.Duration
	maxPages     int64
	closed       atomic.Bool
}

// Option configures the Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-fetch timeout. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.fetchTimeout = d
	}
}

// WithBrowserMaxPages sets how many pages the underlying browser renders
// before it is recycled. Defaults to DefaultMaxPages.
func WithBrowserMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a Fetcher backed by a freshly launched headless Chrome.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		fetchTimeout: DefaultFetchTimeout,
		maxPages:     DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(WithMaxPages(f.maxPages))
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML along with the
// status of the document response.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*troubledoc.FetchResult, error) {
	if f.closed.Load() {
		return nil, troubledoc.Errorf(troubledoc.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.fetchTimeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	// Capture the status of the document response; subresource responses
	// are ignored.
	status := 0
	wait := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument {
			return false
		}
		status = e.Response.Status
		return true
	})

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	f.manager.IncrementPageCount()

	return &troubledoc.FetchResult{StatusCode: status, Body: html}, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
