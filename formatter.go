package troubledoc

import (
	"fmt"
	"strings"
)

// FormatResults formats search results for display.
// Uses title if available, falls back to source URL.
// Records are separated by blank lines.
func FormatResults(results []*Content) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, c := range results {
		header := c.Title
		if header == "" {
			header = c.SourceURL
		}
		entry := "## " + header + "\n" + string(c.Category) + " | " + c.SourceURL
		if c.Description != "" {
			entry += "\n" + c.Description
		}
		parts = append(parts, entry)
	}

	return strings.Join(parts, "\n\n")
}

// FormatContent formats a single record in full, including sections,
// troubleshooting steps and code examples.
func FormatContent(c *Content) string {
	var b strings.Builder

	title := c.Title
	if title == "" {
		title = c.SourceURL
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Service:  %s\n", c.Service)
	fmt.Fprintf(&b, "Provider: %s\n", c.Provider)
	fmt.Fprintf(&b, "Category: %s\n", c.Category)
	fmt.Fprintf(&b, "URL:      %s\n", c.SourceURL)
	if c.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", c.Description)
	}

	if len(c.Sections) > 0 {
		b.WriteString("\n## Sections\n")
		for _, s := range c.Sections {
			fmt.Fprintf(&b, "- [h%d] %s\n", s.Level, s.Heading)
		}
	}

	if len(c.Steps) > 0 {
		b.WriteString("\n## Troubleshooting Steps\n")
		for _, s := range c.Steps {
			fmt.Fprintf(&b, "%d. %s\n", s.Number, s.Title)
			if len(s.RelatedErrors) > 0 {
				fmt.Fprintf(&b, "   errors: %s\n", strings.Join(s.RelatedErrors, ", "))
			}
		}
	}

	if len(c.CodeExamples) > 0 {
		fmt.Fprintf(&b, "\n## Code Examples (%d)\n", len(c.CodeExamples))
		for _, ex := range c.CodeExamples {
			fmt.Fprintf(&b, "```%s\n%s\n```\n", ex.Language, ex.Code)
		}
	}

	return b.String()
}
