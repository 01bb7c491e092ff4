package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/troubledoc"
)

var (
	preRe       = regexp.MustCompile(`(?is)<pre\b([^>]*)>(.*?)</pre>`)
	codeRe      = regexp.MustCompile(`(?is)<code\b[^>]*>(.*?)</code>`)
	langClassRe = regexp.MustCompile(`lang-([A-Za-z0-9]+)`)
)

// languageAliases normalizes class-derived language hints to canonical
// language tags.
var languageAliases = map[string]string{
	"js":    "javascript",
	"ts":    "typescript",
	"py":    "python",
	"rb":    "ruby",
	"yml":   "yaml",
	"md":    "markdown",
	"sh":    "bash",
	"shell": "bash",
}

// NormalizeLanguage maps a language hint through the alias table.
// Unknown hints are returned lower-cased as-is.
func NormalizeLanguage(lang string) string {
	l := strings.ToLower(strings.TrimSpace(lang))
	if canonical, ok := languageAliases[l]; ok {
		return canonical
	}
	return l
}

// Code returns every code example in the fragment. Each <pre> block
// becomes one example with the language read from a lang-<id> class
// token (default "text"); each <code> element with more than 20
// characters of text becomes one example with the language guessed from
// content. The passes are independent: code nested inside a pre block
// may be reported by both.
func Code(fragment string) []troubledoc.CodeExample {
	var examples []troubledoc.CodeExample

	for _, m := range preRe.FindAllStringSubmatch(fragment, -1) {
		text := codeText(m[2])
		lang := "text"
		if lm := langClassRe.FindStringSubmatch(m[1]); lm != nil {
			lang = NormalizeLanguage(lm[1])
		}
		examples = append(examples, troubledoc.CodeExample{
			Language:    lang,
			Code:        text,
			Description: "Code example from documentation",
		})
	}

	for _, m := range codeRe.FindAllStringSubmatch(fragment, -1) {
		text := codeText(m[1])
		if len(text) <= 20 {
			continue
		}
		examples = append(examples, troubledoc.CodeExample{
			Language:    GuessLanguage(text),
			Code:        text,
			Description: "Code snippet from documentation",
		})
	}

	return examples
}

// FirstCode returns the first usable code example in a fragment. Inline
// <code> elements take priority over <pre> blocks; within each source the
// first candidate with more than 5 characters of text wins. Returns nil
// when neither source yields one.
func FirstCode(fragment string) *troubledoc.CodeExample {
	for _, m := range codeRe.FindAllStringSubmatch(fragment, -1) {
		text := codeText(m[1])
		if len(text) <= 5 {
			continue
		}
		return &troubledoc.CodeExample{
			Language:    GuessLanguage(text),
			Code:        text,
			Description: "Code snippet from documentation",
		}
	}

	for _, m := range preRe.FindAllStringSubmatch(fragment, -1) {
		text := codeText(m[2])
		if len(text) <= 5 {
			continue
		}
		lang := "text"
		if lm := langClassRe.FindStringSubmatch(m[1]); lm != nil {
			lang = NormalizeLanguage(lm[1])
		}
		return &troubledoc.CodeExample{
			Language:    lang,
			Code:        text,
			Description: "Code example from documentation",
		}
	}

	return nil
}

// GuessLanguage classifies a snippet by sniffing for trigger substrings
// in fixed rule order: SDK calls, shell idioms, then policy-document
// shape. Best effort, no confidence scoring; unrecognized content is
// "text".
func GuessLanguage(code string) string {
	switch {
	case strings.Contains(code, "boto3"):
		return "python"
	case strings.Contains(code, "aws-sdk") || strings.Contains(code, "new AWS."):
		return "javascript"
	case strings.Contains(code, "$ ") || strings.HasPrefix(code, "aws ") ||
		strings.Contains(code, "#!/") || strings.Contains(code, "sudo "):
		return "bash"
	case strings.Contains(code, `"Version"`) && strings.Contains(code, `"Statement"`):
		return "json"
	case looksLikeJSON(code):
		return "json"
	}
	return "text"
}

// looksLikeJSON reports brace-and-quote-heavy snippets that open with a
// JSON container character.
func looksLikeJSON(code string) bool {
	trimmed := strings.TrimSpace(code)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return false
	}
	return strings.Count(trimmed, `"`) >= 4 && strings.Contains(trimmed, ":")
}
