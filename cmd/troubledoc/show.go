package main

import (
	"fmt"
	"net/http"

	"github.com/fwojciec/troubledoc"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	fetched, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", troubledoc.ErrorMessage(err))
		return err
	}

	if fetched.StatusCode == http.StatusNotFound {
		err := troubledoc.Errorf(troubledoc.ENOTFOUND, "page not found: %s", c.URL)
		fmt.Fprintf(deps.Stderr, "error: %s\n", troubledoc.ErrorMessage(err))
		return err
	}
	if fetched.StatusCode < 200 || fetched.StatusCode >= 300 {
		err := troubledoc.Errorf(troubledoc.EINTERNAL, "unexpected status %d fetching %s", fetched.StatusCode, c.URL)
		fmt.Fprintf(deps.Stderr, "error: %s\n", troubledoc.ErrorMessage(err))
		return err
	}

	content, err := deps.Parser.Parse(fetched.Body, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", troubledoc.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, troubledoc.FormatContent(content))
	return nil
}
