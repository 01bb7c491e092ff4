package prometheus

import (
	"github.com/fwojciec/troubledoc"
)

// Ensure MetricsParser implements troubledoc.Parser.
var _ troubledoc.Parser = (*MetricsParser)(nil)

// MetricsParser wraps a Parser and counts parse failures.
type MetricsParser struct {
	next troubledoc.Parser
}

// NewMetricsParser creates a new MetricsParser.
func NewMetricsParser(next troubledoc.Parser) *MetricsParser {
	return &MetricsParser{next: next}
}

// Parse delegates to the wrapped parser.
func (p *MetricsParser) Parse(html, sourceURL string) (*troubledoc.Content, error) {
	content, err := p.next.Parse(html, sourceURL)
	if err != nil {
		ParseFailures.Inc()
		return nil, err
	}
	return content, nil
}
