package troubledoc

// Parser builds structured content records from fetched HTML.
type Parser interface {
	// Parse extracts a content record from one documentation page. It
	// never returns a partial record: any internal failure yields a nil
	// record and an error for the caller to log.
	Parse(html, sourceURL string) (*Content, error)
}
