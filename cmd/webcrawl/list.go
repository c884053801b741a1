package main

import (
	"fmt"

	"github.com/fwojciec/webcrawl"
	"github.com/fwojciec/webcrawl/crawl"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	runs, err := deps.Crawls.FindCrawls(deps.Ctx, webcrawl.CrawlFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webcrawl.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawls archived yet. Run 'webcrawl crawl <url>' to start one.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%-36s %-45s %6s %-8s %s\n", "ID", "SEED URL", "PAGES", "STATUS", "CREATED")
	for _, run := range runs {
		status := "ok"
		if !run.Success {
			status = "failed"
		}
		fmt.Fprintf(deps.Stdout, "%-36s %-45s %6d %-8s %s\n",
			run.ID,
			crawl.TruncateURL(run.SeedURL, 45),
			run.TotalPages,
			status,
			run.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	return nil
}
