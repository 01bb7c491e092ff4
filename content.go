package troubledoc

import (
	"strings"
	"time"
)

// Provider identifies a cloud documentation provider.
type Provider string

// Provider constants. Only ProviderAWS is implemented; searches for other
// providers return a structured unsupported-provider error.
const (
	ProviderAWS   Provider = "aws"
	ProviderAzure Provider = "azure"
	ProviderGCP   Provider = "gcp"
)

// GuideType classifies the kind of documentation page a record came from.
type GuideType string

// GuideType constants.
const (
	GuideTroubleshooting GuideType = "troubleshooting"
	GuideUser            GuideType = "user-guide"
	GuideDeveloper       GuideType = "developer-guide"
	GuideAPIReference    GuideType = "api-reference"
)

// Category classifies a troubleshooting page by topic.
type Category string

// Category constants, in classification priority order.
const (
	CategoryAccessDenied   Category = "access-denied"
	CategoryPermissions    Category = "permissions"
	CategoryAuthentication Category = "authentication"
	CategoryConfiguration  Category = "configuration"
	CategoryGeneral        Category = "general"
)

// Content represents a parsed troubleshooting documentation page. Records
// are built once per successful parse and are immutable afterwards; the
// source URL is the cache key.
type Content struct {
	Title        string        `json:"title"`
	Service      string        `json:"service"`
	Provider     Provider      `json:"provider"`
	GuideType    GuideType     `json:"guideType"`
	SourceURL    string        `json:"sourceUrl"`
	Description  string        `json:"description"`
	Keywords     []string      `json:"keywords"`
	Sections     []Section     `json:"sections"`
	Steps        []Step        `json:"troubleshootingSteps"`
	CodeExamples []CodeExample `json:"codeExamples"`
	Breadcrumbs  []string      `json:"breadcrumbs"`
	RelatedLinks []string      `json:"relatedLinks"`
	LastUpdated  time.Time     `json:"lastUpdated"`
	Category     Category      `json:"category"`
	ContentHash  string        `json:"contentHash"`
}

// Validate returns an error if the content contains invalid fields.
func (c *Content) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "content source URL required")
	}
	if c.Provider == "" {
		return Errorf(EINVALID, "content provider required")
	}
	return nil
}

// Matches reports whether the record satisfies a free-text query and an
// optional category filter. A non-empty category that differs from the
// record's category rejects the record outright. Otherwise the query must
// be a case-insensitive substring of the title, the description, or any
// keyword. No tokenization or ranking.
func (c *Content) Matches(query string, category Category) bool {
	if category != "" && category != c.Category {
		return false
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(c.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Description), q) {
		return true
	}
	for _, kw := range c.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}

// Section represents one heading-delimited region of a page. IDs are
// assigned per parse and are not stable across re-parses.
type Section struct {
	ID      string `json:"id"`
	Heading string `json:"heading"`
	Content string `json:"content"`
	Level   int    `json:"level"`
}

// Step represents one troubleshooting procedure step. Numbers are local
// to the extraction pass that produced the step.
type Step struct {
	Number        int          `json:"number"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Code          *CodeExample `json:"code,omitempty"`
	RelatedErrors []string     `json:"relatedErrors,omitempty"`
}

// CodeExample represents one extracted code block or snippet.
type CodeExample struct {
	Language    string `json:"language"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Filename    string `json:"filename,omitempty"`
}

// categoryRules drives ClassifyCategory. Rules are evaluated in order and
// the first substring hit wins.
var categoryRules = []struct {
	category Category
	needles  []string
}{
	{CategoryAccessDenied, []string{"access-denied", "access denied"}},
	{CategoryPermissions, []string{"permission"}},
	{CategoryAuthentication, []string{"authentication", "credential", "sign-in"}},
	{CategoryConfiguration, []string{"configuration", "config", "setup"}},
}

// ClassifyCategory assigns a category from URL and title substrings.
// Exactly one category is assigned even when several rules would match;
// unmatched content is CategoryGeneral.
func ClassifyCategory(url, title string) Category {
	haystack := strings.ToLower(url) + " " + strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, needle := range rule.needles {
			if strings.Contains(haystack, needle) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}
