package main

import (
	"fmt"

	"github.com/fwojciec/webcrawl"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	run, err := deps.Crawls.FindCrawlByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webcrawl.ErrorMessage(err))
		return err
	}

	pages, err := deps.Crawls.FindPagesByCrawl(deps.Ctx, run.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webcrawl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawl %s\n", run.ID)
	fmt.Fprintf(deps.Stdout, "  Seed URL:   %s\n", run.SeedURL)
	fmt.Fprintf(deps.Stdout, "  Depth:      %d\n", run.MaxDepth)
	fmt.Fprintf(deps.Stdout, "  Max pages:  %d\n", run.MaxPages)
	fmt.Fprintf(deps.Stdout, "  Pages:      %d\n", run.TotalPages)
	fmt.Fprintf(deps.Stdout, "  Created:    %s\n\n", run.CreatedAt.Format("2006-01-02 15:04:05"))

	for _, page := range pages {
		fmt.Fprintf(deps.Stdout, "[%d] %s\n", page.Position, page.URL)
		fmt.Fprintf(deps.Stdout, "    Title:       %s\n", page.Title)
		if desc := page.MetaDescription; desc != "" {
			if len(desc) > 100 {
				desc = desc[:97] + "..."
			}
			fmt.Fprintf(deps.Stdout, "    Description: %s\n", desc)
		}
		fmt.Fprintf(deps.Stdout, "    Links: %d (%d internal)  Images: %d  Text: %d chars\n",
			page.LinkCount(), len(page.InternalLinks()), page.ImageCount(), len(page.MainText))
	}

	return nil
}
