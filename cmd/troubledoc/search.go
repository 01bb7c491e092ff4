package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/troubledoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	result := deps.Searcher.Search(deps.Ctx, troubledoc.SearchRequest{
		Query:      c.Query,
		Provider:   troubledoc.Provider(c.Provider),
		Service:    c.Service,
		Category:   troubledoc.Category(c.Category),
		MaxResults: c.MaxResults,
	})

	if result.Error != "" {
		fmt.Fprintf(deps.Stderr, "error: %s\n", result.Error)
		return errors.New(result.Error)
	}

	if result.TotalResults == 0 {
		fmt.Fprintf(deps.Stdout, "No troubleshooting pages matched %q. Try a broader query or drop --category.\n", c.Query)
		return nil
	}

	fmt.Fprintln(deps.Stdout, troubledoc.FormatResults(result.Results))
	fmt.Fprintf(deps.Stdout, "\n%d result(s) in %dms\n", result.TotalResults, result.SearchTimeMs)
	return nil
}
