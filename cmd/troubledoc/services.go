package main

import (
	"fmt"
)

// Run executes the services command.
func (c *ServicesCmd) Run(deps *Dependencies) error {
	if len(deps.Catalog) == 0 {
		fmt.Fprintln(deps.Stdout, "No services configured.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Services with troubleshooting documentation (%d):\n\n", len(deps.Catalog))
	for _, svc := range deps.Catalog {
		fmt.Fprintf(deps.Stdout, "  %-16s %s (%d pages)\n", svc.ID, svc.Name, len(svc.Pages))
	}

	return nil
}
