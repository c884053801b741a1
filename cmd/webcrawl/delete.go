package main

import (
	"fmt"

	"github.com/fwojciec/webcrawl"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		return fmt.Errorf("deleting a crawl removes all of its pages; re-run with --force to confirm")
	}

	if err := deps.Crawls.DeleteCrawl(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webcrawl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted crawl %s\n", c.ID)
	return nil
}
