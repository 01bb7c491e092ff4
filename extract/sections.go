package extract

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/troubledoc"
)

var headingRe = regexp.MustCompile(`(?is)<h([1-6])\b[^>]*>(.*?)</h[1-6]>`)

// Sections splits an HTML fragment into heading-delimited sections. Every
// heading h1-h6 starts a section whose content runs to the next heading
// of the same or higher level, or end of input. Boundaries are resolved
// by match position, so duplicate headings and regex metacharacters in
// heading text need no special handling. IDs are ordinal within one call
// and not stable across parses.
func Sections(fragment string) []troubledoc.Section {
	locs := headingRe.FindAllStringSubmatchIndex(fragment, -1)
	if len(locs) == 0 {
		return nil
	}

	sections := make([]troubledoc.Section, 0, len(locs))
	for i, loc := range locs {
		level := int(fragment[loc[2]] - '0')

		end := len(fragment)
		for _, next := range locs[i+1:] {
			if int(fragment[next[2]]-'0') <= level {
				end = next[0]
				break
			}
		}

		sections = append(sections, troubledoc.Section{
			ID:      fmt.Sprintf("section-%d", i),
			Heading: Clean(fragment[loc[4]:loc[5]]),
			Content: Clean(fragment[loc[1]:end]),
			Level:   level,
		})
	}

	return sections
}
