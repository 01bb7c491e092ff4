// Package search provides troubleshooting documentation search
// orchestration. It coordinates catalog resolution, fetching, parsing,
// caching and matching of documentation pages.
package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/troubledoc"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of candidate pages fetched in parallel
// within one service.
const DefaultConcurrency = 4

var _ troubledoc.Searcher = (*Searcher)(nil)

// Searcher orchestrates documentation search across the service catalog.
// Fetcher, Parser and Catalog are required; Cache and RateLimiter are
// optional.
type Searcher struct {
	Fetcher     troubledoc.Fetcher
	Parser      troubledoc.Parser
	Cache       troubledoc.ContentCache
	Catalog     troubledoc.Catalog
	RateLimiter troubledoc.DomainLimiter
	Concurrency int
}

// Search resolves candidate pages for the request, parses them and returns
// matching records in catalog enumeration order. The result cap is checked
// between services, so one service's candidate pass runs to completion even
// when it crosses the cap; the returned slice is still truncated to the cap.
//
// Failures are reported through SearchResult.Error. Per-candidate fetch and
// parse failures are skipped and never surface to the caller.
func (s *Searcher) Search(ctx context.Context, req troubledoc.SearchRequest) (result *troubledoc.SearchResult) {
	begin := time.Now()
	result = &troubledoc.SearchResult{Results: []*troubledoc.Content{}}
	defer func() {
		if r := recover(); r != nil {
			result.Results = []*troubledoc.Content{}
			result.Error = fmt.Sprintf("internal error: %v", r)
		}
		if limit := req.Limit(); len(result.Results) > limit {
			result.Results = result.Results[:limit]
		}
		result.TotalResults = len(result.Results)
		result.SearchTimeMs = time.Since(begin).Milliseconds()
	}()

	provider := req.Provider
	if provider == "" {
		provider = troubledoc.ProviderAWS
	}
	if provider != troubledoc.ProviderAWS {
		result.Error = fmt.Sprintf("provider %q is not supported (only %q is available)", provider, troubledoc.ProviderAWS)
		return result
	}

	services := s.Catalog
	if req.Service != "" {
		svc, err := s.Catalog.Resolve(req.Service)
		if err != nil {
			result.Error = troubledoc.ErrorMessage(err)
			return result
		}
		services = troubledoc.Catalog{svc}
	}

	limit := req.Limit()
	for _, svc := range services {
		if len(result.Results) >= limit {
			break
		}
		result.Results = append(result.Results, s.searchService(ctx, svc, req)...)
	}

	return result
}

// searchService probes one service's candidate pages and returns matching
// records. Pages are fetched concurrently, but matches come back in
// candidate order, not network-completion order.
func (s *Searcher) searchService(ctx context.Context, svc troubledoc.ServiceDoc, req troubledoc.SearchRequest) []*troubledoc.Content {
	urls := svc.CandidateURLs()

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	records := make([]*troubledoc.Content, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, candidateURL := range urls {
		g.Go(func() error {
			records[i] = s.resolveContent(gctx, candidateURL)
			return nil
		})
	}
	_ = g.Wait()

	matches := make([]*troubledoc.Content, 0, len(urls))
	for _, record := range records {
		if record == nil {
			continue
		}
		if record.Matches(req.Query, req.Category) {
			matches = append(matches, record)
		}
	}
	return matches
}

// resolveContent returns the parsed record for one candidate URL, serving
// from cache when possible and writing through on a successful parse.
// Missing pages (404) and failed candidates yield nil.
func (s *Searcher) resolveContent(ctx context.Context, candidateURL string) *troubledoc.Content {
	if s.Cache != nil {
		if record, ok := s.Cache.Get(candidateURL); ok {
			return record
		}
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, hostOf(candidateURL)); err != nil {
			return nil
		}
	}

	fetched, err := s.Fetcher.Fetch(ctx, candidateURL)
	if err != nil {
		return nil
	}
	if fetched.StatusCode == http.StatusNotFound {
		return nil
	}
	if fetched.StatusCode < 200 || fetched.StatusCode >= 300 {
		return nil
	}

	record, err := s.Parser.Parse(fetched.Body, candidateURL)
	if err != nil {
		return nil
	}

	if s.Cache != nil {
		s.Cache.Put(candidateURL, record)
	}
	return record
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
