package troubledoc

// ContentCache stores parsed records keyed by source URL with TTL-bounded
// reads. Implementations must serialize writes to the same key; a
// read-then-write race on one URL resolves to last successful parse wins.
type ContentCache interface {
	// Get returns the record cached for the URL.
	// Expired or missing entries report false.
	Get(url string) (*Content, bool)

	// Put stores the record, overwriting any previous entry for the URL.
	Put(url string, content *Content)
}
