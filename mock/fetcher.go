package mock

import (
	"context"

	"github.com/fwojciec/troubledoc"
)

var _ troubledoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of troubledoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*troubledoc.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*troubledoc.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
