package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/troubledoc"
)

var (
	olRe          = regexp.MustCompile(`(?is)<ol\b[^>]*>(.*?)</ol>`)
	liRe          = regexp.MustCompile(`(?is)<li\b[^>]*>(.*?)</li>`)
	stepHeadingRe = regexp.MustCompile(`(?is)<h([3-6])\b[^>]*>(.*?)</h[3-6]>`)
	anyHeadingRe  = regexp.MustCompile(`(?i)<h[1-6]\b[^>]*>`)
)

// stepKeywords mark headings that introduce a troubleshooting procedure.
var stepKeywords = []string{"step", "procedure", "process", "solution"}

// Steps extracts troubleshooting steps from an HTML fragment. Two
// independent passes cover the two common authoring styles: numbered
// ordered lists and keyword-marked prose headings. List-pass steps come
// first, heading-pass steps are appended after them.
func Steps(fragment string) []troubledoc.Step {
	steps := listSteps(fragment)
	return append(steps, headingSteps(fragment, len(steps))...)
}

// listSteps walks every ordered list in document order. Kept items are
// numbered 1..N within their own list; items whose cleaned text is 10
// characters or shorter are dropped without consuming a number. Each
// kept step carries the first code block and any error identifiers found
// in its fragment.
func listSteps(fragment string) []troubledoc.Step {
	var steps []troubledoc.Step

	for _, list := range olRe.FindAllStringSubmatch(fragment, -1) {
		number := 0
		for _, item := range liRe.FindAllStringSubmatch(list[1], -1) {
			text := Clean(item[1])
			if len(text) <= 10 {
				continue
			}
			number++
			steps = append(steps, troubledoc.Step{
				Number:        number,
				Title:         Truncate(text, 100),
				Description:   text,
				Code:          FirstCode(item[1]),
				RelatedErrors: Errors(text),
			})
		}
	}

	return steps
}

// headingSteps captures prose procedures introduced by h3-h6 headings
// that mention a step keyword. A procedure's content runs to the next
// heading of any level or end of input, and is kept when its cleaned
// text exceeds 20 characters. Numbering continues the running step
// total rather than restarting.
func headingSteps(fragment string, numbered int) []troubledoc.Step {
	var steps []troubledoc.Step

	for _, loc := range stepHeadingRe.FindAllStringSubmatchIndex(fragment, -1) {
		heading := Clean(fragment[loc[4]:loc[5]])
		if !containsStepKeyword(heading) {
			continue
		}

		start := loc[1]
		end := len(fragment)
		if next := anyHeadingRe.FindStringIndex(fragment[start:]); next != nil {
			end = start + next[0]
		}

		text := Clean(fragment[start:end])
		if len(text) <= 20 {
			continue
		}

		steps = append(steps, troubledoc.Step{
			Number:      numbered + len(steps) + 1,
			Title:       "Troubleshooting Procedure",
			Description: Truncate(text, 500),
		})
	}

	return steps
}

func containsStepKeyword(heading string) bool {
	lower := strings.ToLower(heading)
	for _, kw := range stepKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
