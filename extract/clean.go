// Package extract implements regex-based content extraction over HTML
// fragments: cleaning, troubleshooting steps, code examples, error
// identifiers and section splitting. Patterns are deliberately loose;
// documentation pages are regular enough that a full DOM model is not
// required, and malformed markup degrades to partial extraction rather
// than failure.
package extract

import (
	"html"
	"regexp"
	"strings"
)

var (
	scriptRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	tagRe    = regexp.MustCompile(`<[^>]*>`)
	spaceRe  = regexp.MustCompile(`[\s\p{Zs}]+`)
)

// Clean strips an HTML fragment down to normalized plain text. Script and
// style blocks are removed with their content, remaining tags are
// replaced by spaces, entities are decoded and whitespace runs collapse
// to single spaces. Clean never fails; unclosed tags are left partially
// stripped.
func Clean(fragment string) string {
	s := scriptRe.ReplaceAllString(fragment, " ")
	s = styleRe.ReplaceAllString(s, " ")
	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// codeText strips markup from a code fragment while preserving its line
// structure. Entities are decoded so literal <, > and & survive in code.
func codeText(fragment string) string {
	s := tagRe.ReplaceAllString(fragment, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// Truncate shortens text to max characters, appending an ellipsis when
// anything was cut.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
