package extract

import (
	"regexp"
	"strings"
)

// The four error pattern families, applied in declaration order. Each
// family contributes its capture group, or the whole match when it has
// no group.
var (
	// keywordErrorRe finds PascalCase identifiers introduced by an error
	// keyword. The keyword matches case-insensitively, the identifier
	// does not.
	keywordErrorRe = regexp.MustCompile(`(?i:error|exception|failure)[\s:]+([A-Z][A-Za-z0-9]+)`)

	// httpStatusRe finds HTTP status lines with a capitalized reason
	// phrase, e.g. "HTTP 403 Forbidden".
	httpStatusRe = regexp.MustCompile(`HTTP\s+\d{3}(?:\s+[A-Z][a-zA-Z]*)+`)

	// vocabularyRe finds the fixed AWS error name vocabulary.
	vocabularyRe = regexp.MustCompile(`\b(?:AccessDenied|Forbidden|Unauthorized|InvalidRequest|BadRequest)\b`)

	// upperErrorRe finds uppercase identifiers with an underscore-delimited
	// ERROR segment, e.g. "CONFIG_ERROR" or "ERROR_CODE_5".
	upperErrorRe = regexp.MustCompile(`\b(?:[A-Z][A-Z0-9]*_)+ERROR(?:_[A-Z0-9]+)*\b|\bERROR(?:_[A-Z0-9]+)+\b`)
)

// Errors scans cleaned text for error identifiers and status phrases.
// Matches keep first-seen order with exact-string deduplication across
// all pattern families.
func Errors(text string) []string {
	var out []string
	seen := make(map[string]bool)

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for _, m := range keywordErrorRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range httpStatusRe.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range vocabularyRe.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range upperErrorRe.FindAllString(text, -1) {
		add(m)
	}

	return out
}
