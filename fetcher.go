package troubledoc

import "context"

// FetchResult holds the outcome of a completed HTTP exchange. Non-2xx
// statuses travel here rather than as errors; the error return of Fetch is
// reserved for transport failures.
type FetchResult struct {
	StatusCode int
	Body       string
}

// Fetcher retrieves documentation pages.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch performs a GET against the URL and returns the response
	// status and body text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases underlying resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
