package troubledoc

import "context"

// DefaultMaxResults caps result counts when a request does not specify a
// limit of its own.
const DefaultMaxResults = 10

// SearchRequest describes a troubleshooting documentation search.
type SearchRequest struct {
	// Query is matched as a case-insensitive substring against record
	// titles, descriptions and keywords.
	Query string `json:"query"`

	// Provider selects the cloud provider. Only ProviderAWS is implemented.
	Provider Provider `json:"provider"`

	// Service restricts the search to a single catalog service when set.
	// Accepts canonical ids and documentation aliases (e.g. "AmazonS3").
	Service string `json:"service,omitempty"`

	// Category rejects records of any other category when set.
	Category Category `json:"category,omitempty"`

	// MaxResults caps the number of returned records.
	// Values <= 0 mean DefaultMaxResults.
	MaxResults int `json:"maxResults,omitempty"`
}

// Limit returns the effective result cap for the request.
func (r SearchRequest) Limit() int {
	if r.MaxResults <= 0 {
		return DefaultMaxResults
	}
	return r.MaxResults
}

// SearchResult is the complete response to one search. Searches are
// synchronous; there is no streaming or partial delivery.
type SearchResult struct {
	Results      []*Content `json:"results"`
	TotalResults int        `json:"totalResults"`
	SearchTimeMs int64      `json:"searchTimeMs"`

	// Error carries user-facing failures such as an unsupported provider.
	// Per-URL fetch and parse failures are absorbed during the search and
	// never surface here.
	Error string `json:"error,omitempty"`
}

// Searcher executes documentation searches.
type Searcher interface {
	// Search resolves candidate pages for the request, parses them and
	// returns matching records in catalog enumeration order. Failures are
	// reported through SearchResult.Error rather than a Go error.
	Search(ctx context.Context, req SearchRequest) *SearchResult
}
