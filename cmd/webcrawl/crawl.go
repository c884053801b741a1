package main

import (
	"fmt"

	"github.com/fwojciec/webcrawl"
	"github.com/fwojciec/webcrawl/crawl"
	"github.com/fwojciec/webcrawl/fs"
)

const displayURLWidth = 60

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	depth, maxPages := c.Depth, c.MaxPages
	if c.Single {
		depth, maxPages = 0, 1
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Crawling %s (depth %d, max %d pages)...\n", event.URL, depth, maxPages)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Pages, maxPages, crawl.TruncateURL(event.URL, displayURLWidth))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  warning: %s: %s\n", crawl.TruncateURL(event.URL, displayURLWidth), event.Error)
		}
	}

	result := deps.Crawler.Crawl(deps.Ctx, c.URL, depth, maxPages, progress)
	if !result.Success {
		return fmt.Errorf("crawl failed: %s", result.Error)
	}

	run := &webcrawl.CrawlRun{
		SeedURL:    c.URL,
		MaxDepth:   depth,
		MaxPages:   maxPages,
		TotalPages: result.TotalPages,
		Success:    true,
	}
	if err := deps.Crawls.CreateCrawl(deps.Ctx, run, result.Data); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webcrawl.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		writer := fs.NewWriter(c.Out)
		if err := writer.WriteResult(deps.Ctx, result); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webcrawl.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", result.TotalPages, c.Out)
	}

	fmt.Fprintf(deps.Stdout, "\nCrawled %d pages (crawl ID: %s)\n\n", result.TotalPages, run.ID)
	printPageTable(deps, result.Data)

	return nil
}

// printPageTable prints a summary row per page.
func printPageTable(deps *Dependencies, pages []*webcrawl.PageRecord) {
	fmt.Fprintf(deps.Stdout, "%-62s %-30s %6s %6s\n", "URL", "TITLE", "LINKS", "IMAGES")
	for _, page := range pages {
		title := page.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		fmt.Fprintf(deps.Stdout, "%-62s %-30s %6d %6d\n",
			crawl.TruncateURL(page.URL, displayURLWidth), title, page.LinkCount(), page.ImageCount())
	}
}
