package mock

import (
	"github.com/fwojciec/troubledoc"
)

var _ troubledoc.Parser = (*Parser)(nil)

// Parser is a mock implementation of troubledoc.Parser.
type Parser struct {
	ParseFn func(html, sourceURL string) (*troubledoc.Content, error)
}

func (p *Parser) Parse(html, sourceURL string) (*troubledoc.Content, error) {
	return p.ParseFn(html, sourceURL)
}
