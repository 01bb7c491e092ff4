// Package goquery implements document parsing with the goquery DOM
// library. The DOM resolves document-level concerns (title, metadata,
// main content scope); section, step and code extraction run as regex
// passes over the scoped fragment.
package goquery

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/troubledoc"
	"github.com/fwojciec/troubledoc/extract"
)

// Compile-time interface verification.
var _ troubledoc.Parser = (*Parser)(nil)

// vendorTitleSuffix is stripped from the end of page titles.
const vendorTitleSuffix = " - AWS Documentation"

// defaultTitle is used when a page carries no usable title element.
const defaultTitle = "AWS Documentation"

// Parser implements troubledoc.Parser for AWS documentation pages.
type Parser struct{}

// NewParser returns a ready Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts a content record from one documentation page. Every
// piece is best-effort: missing elements yield defaults and never abort
// the parse. An unexpected panic is recovered and reported as EINTERNAL
// with no partial record.
func (p *Parser) Parse(html, sourceURL string) (content *troubledoc.Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = troubledoc.Errorf(troubledoc.EINTERNAL, "parse %s: %v", sourceURL, r)
		}
	}()

	doc, derr := goquery.NewDocumentFromReader(strings.NewReader(html))
	if derr != nil {
		return nil, troubledoc.Errorf(troubledoc.EINVALID, "failed to parse HTML: %v", derr)
	}

	title := cleanTitle(doc.Find("title").First().Text())

	description, _ := doc.Find(`meta[name="description"]`).Attr("content")
	description = strings.TrimSpace(description)

	keywords := []string{}
	if raw, ok := doc.Find(`meta[name="keywords"]`).Attr("content"); ok {
		for _, kw := range strings.Split(raw, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
	}

	// All content extraction operates on the main content container when
	// the page has one, otherwise on the whole document.
	scope := html
	if sel := doc.Find("div#main-content"); sel.Length() > 0 {
		if inner, herr := sel.First().Html(); herr == nil {
			scope = inner
		}
	}

	sections := extract.Sections(scope)
	if sections == nil {
		sections = []troubledoc.Section{}
	}
	steps := extract.Steps(scope)
	if steps == nil {
		steps = []troubledoc.Step{}
	}
	examples := extract.Code(scope)
	if examples == nil {
		examples = []troubledoc.CodeExample{}
	}

	return &troubledoc.Content{
		Title:        title,
		Service:      troubledoc.ServiceFromURL(sourceURL),
		Provider:     troubledoc.ProviderAWS,
		GuideType:    troubledoc.GuideTroubleshooting,
		SourceURL:    sourceURL,
		Description:  description,
		Keywords:     keywords,
		Sections:     sections,
		Steps:        steps,
		CodeExamples: examples,
		Breadcrumbs:  []string{},
		RelatedLinks: []string{},
		LastUpdated:  time.Now().UTC(),
		Category:     troubledoc.ClassifyCategory(sourceURL, title),
		ContentHash:  hashContent(html),
	}, nil
}

// cleanTitle trims the vendor suffix from a title, falling back to the
// default when nothing remains.
func cleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	title = strings.TrimSuffix(title, vendorTitleSuffix)
	title = strings.TrimSpace(title)
	if title == "" {
		return defaultTitle
	}
	return title
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}
