package webcrawl

import (
	"context"
	"time"
)

// CrawlResult is the terminal output of one crawl invocation.
// Data is never nil; a failed crawl carries an empty slice.
type CrawlResult struct {
	Success    bool          `json:"success"`
	Data       []*PageRecord `json:"data"`
	TotalPages int           `json:"totalPages"`
	Timestamp  time.Time     `json:"timestamp"`
	Error      string        `json:"error,omitempty"`
}

// ErrNoPages is the fixed message returned when a crawl completes without
// a single successfully fetched page.
const ErrNoPages = "No pages could be crawled"

// FrontierEntry is a (URL, depth) pair awaiting a visit.
// Depth is the number of link hops from the seed URL.
type FrontierEntry struct {
	URL   string
	Depth int
}

// URLFrontier manages the crawl queue with deduplication.
// URLs are dequeued in the order they were first pushed (FIFO), which
// yields strict breadth-first traversal.
type URLFrontier interface {
	// Push adds an entry to the back of the queue.
	// Returns false if the URL has already been seen.
	Push(entry FrontierEntry) bool

	// Pop removes and returns the entry at the front of the queue.
	// Returns false if the frontier is empty.
	Pop() (FrontierEntry, bool)

	// Len returns the number of entries in the queue.
	Len() int

	// Seen returns true if the URL has been queued or processed.
	Seen(url string) bool
}

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the body of the URL.
	// The context controls timeout and cancellation.
	// Returns an EUNSUPPORTED error if the response is not HTML.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Extractor produces a structured record from fetched HTML.
// Implementations must be pure with respect to their inputs: no network
// access, no mutation of shared state, and deterministic output.
type Extractor interface {
	// Extract parses rawHTML fetched from pageURL and returns the
	// structured page content. Relative links are resolved against
	// pageURL; baseOrigin classifies links as internal or external.
	Extract(pageURL, rawHTML, baseOrigin string) (*PageRecord, error)
}

// Limiter paces requests to be polite to the crawled host.
type Limiter interface {
	// Wait blocks until the next request is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}

// ResultWriter exports a finished crawl result.
type ResultWriter interface {
	WriteResult(ctx context.Context, result *CrawlResult) error
}

// CrawlRun represents the archived metadata of one finished crawl.
type CrawlRun struct {
	ID         string    `json:"id"`
	SeedURL    string    `json:"seedUrl"`
	MaxDepth   int       `json:"maxDepth"`
	MaxPages   int       `json:"maxPages"`
	TotalPages int       `json:"totalPages"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the crawl run contains invalid fields.
func (c *CrawlRun) Validate() error {
	if c.SeedURL == "" {
		return Errorf(EINVALID, "crawl seed URL required")
	}
	if c.MaxDepth < 0 {
		return Errorf(EINVALID, "crawl max depth must be >= 0")
	}
	if c.MaxPages < 1 {
		return Errorf(EINVALID, "crawl max pages must be >= 1")
	}
	return nil
}

// CrawlFilter represents a filter for FindCrawls.
type CrawlFilter struct {
	ID      *string `json:"id"`
	SeedURL *string `json:"seedUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CrawlService archives finished crawl runs and their pages.
// It stores results only; frontier and visited state are never persisted.
type CrawlService interface {
	// CreateCrawl archives a run together with its pages.
	CreateCrawl(ctx context.Context, run *CrawlRun, pages []*PageRecord) error

	// FindCrawlByID retrieves an archived run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindCrawlByID(ctx context.Context, id string) (*CrawlRun, error)

	// FindCrawls retrieves archived runs matching the filter, newest first.
	FindCrawls(ctx context.Context, filter CrawlFilter) ([]*CrawlRun, error)

	// FindPagesByCrawl retrieves the pages of a run in discovery order.
	FindPagesByCrawl(ctx context.Context, crawlID string) ([]*PageRecord, error)

	// DeleteCrawl permanently removes a run and its pages.
	// Returns ENOTFOUND if the run does not exist.
	DeleteCrawl(ctx context.Context, id string) error
}
