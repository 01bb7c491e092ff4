package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/troubledoc"
)

// Ensure LoggingParser implements troubledoc.Parser.
var _ troubledoc.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser and logs parse outcomes. Parse failures are
// logged as errors; the search skips the page either way.
type LoggingParser struct {
	next   troubledoc.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next troubledoc.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) Parse(html, sourceURL string) (*troubledoc.Content, error) {
	begin := time.Now()
	content, err := p.next.Parse(html, sourceURL)
	if err != nil {
		p.logger.Error("parse failed",
			"url", sourceURL,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	p.logger.Debug("parse",
		"url", sourceURL,
		"title", content.Title,
		"sections", len(content.Sections),
		"steps", len(content.Steps),
		"duration", time.Since(begin),
	)
	return content, nil
}
