package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/webcrawl"
	"github.com/fwojciec/webcrawl/crawl"
	"github.com/fwojciec/webcrawl/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Crawls  webcrawl.CrawlService
	Crawler *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl  CrawlCmd  `cmd:"" help:"Crawl a website and archive the extracted pages"`
	List   ListCmd   `cmd:"" help:"List archived crawls"`
	Show   ShowCmd   `cmd:"" help:"Show the pages of an archived crawl"`
	Delete DeleteCmd `cmd:"" help:"Delete an archived crawl"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL      string        `arg:"" help:"Seed URL to crawl (include http:// or https://)"`
	Depth    int           `short:"d" default:"1" help:"How many link hops deep to crawl (0 = just the seed URL)"`
	MaxPages int           `short:"n" default:"10" help:"Maximum number of pages to crawl"`
	Single   bool          `short:"s" help:"Scrape only the seed page (same as --depth 0 --max-pages 1)"`
	Out      string        `short:"o" help:"Export pages as JSON plus a CSV summary into this directory"`
	Delay    time.Duration `default:"1s" help:"Politeness delay between fetches"`
	Verbose  bool          `short:"v" help:"Log each fetch to stderr"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Crawl ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Crawl ID"`
	Force bool   `help:"Confirm deletion"`
}
