// Package crawl provides the crawl engine: frontier management,
// depth-bounded breadth-first traversal, fetch dispatch, politeness
// pacing, and per-page failure isolation.
package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/webcrawl"
)

// Frontier sizing for a single crawl run.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// Crawler performs bounded breadth-first crawls of a single site.
// Traversal is strictly sequential: one fetch in flight at a time, pages
// appended to the result in first-discovered order.
type Crawler struct {
	Fetcher   webcrawl.Fetcher
	Extractor webcrawl.Extractor

	// Limiter applies the politeness delay between fetches. Optional;
	// nil disables pacing (useful in tests).
	Limiter webcrawl.Limiter

	// RetryDelays configures fetch retries. The default (nil) is a single
	// attempt per URL: a failed page is skipped and the crawl moves on.
	RetryDelays []time.Duration
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type  ProgressType
	URL   string
	Depth int
	Pages int // pages collected so far
	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types emitted during a crawl.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl traverses the site breadth-first from seedURL, visiting internal
// links up to maxDepth hops and collecting at most maxPages pages.
//
// Per-page failures never abort the crawl: fetch errors are reported via
// progress as warnings and the URL is skipped; non-HTML responses are
// skipped silently. Only a setup-time error (malformed seed, invalid
// bounds) or the absence of any successfully fetched page yields a failure
// envelope. The returned result is never nil and its Data is never nil.
//
// Canceling ctx stops the traversal early; pages collected up to that
// point are returned.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, maxDepth, maxPages int, progress ProgressFunc) *webcrawl.CrawlResult {
	if !webcrawl.IsValidURL(seedURL) {
		return failure(webcrawl.Errorf(webcrawl.EINVALID, "invalid seed URL %q: scheme and host required", seedURL))
	}
	if maxDepth < 0 {
		return failure(webcrawl.Errorf(webcrawl.EINVALID, "max depth must be >= 0, got %d", maxDepth))
	}
	if maxPages < 1 {
		return failure(webcrawl.Errorf(webcrawl.EINVALID, "max pages must be >= 1, got %d", maxPages))
	}

	baseOrigin := webcrawl.BaseOrigin(seedURL)

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(webcrawl.FrontierEntry{URL: seedURL, Depth: 0})

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, URL: seedURL})
	}

	results := make([]*webcrawl.PageRecord, 0, maxPages)

	for len(results) < maxPages {
		entry, ok := frontier.Pop()
		if !ok {
			break
		}
		if entry.Depth > maxDepth {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		// Politeness delay before each fetch after the first.
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				break
			}
		}

		html, err := FetchWithRetryDelays(ctx, entry.URL, c.Fetcher.Fetch, c.RetryDelays)
		if err != nil {
			c.report(progress, entry, len(results), err)
			continue
		}

		rec, err := c.Extractor.Extract(entry.URL, html, baseOrigin)
		if err != nil {
			c.report(progress, entry, len(results), err)
			continue
		}
		rec.Position = len(results)
		rec.FetchedAt = time.Now()
		results = append(results, rec)

		if entry.Depth < maxDepth {
			for _, link := range rec.Links {
				if !link.Internal {
					continue
				}
				frontier.Push(webcrawl.FrontierEntry{URL: link.URL, Depth: entry.Depth + 1})
			}
		}

		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, URL: entry.URL, Depth: entry.Depth, Pages: len(results)})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Pages: len(results)})
	}

	if len(results) == 0 {
		return &webcrawl.CrawlResult{
			Success:   false,
			Data:      []*webcrawl.PageRecord{},
			Error:     webcrawl.ErrNoPages,
			Timestamp: time.Now(),
		}
	}

	return &webcrawl.CrawlResult{
		Success:    true,
		Data:       results,
		TotalPages: len(results),
		Timestamp:  time.Now(),
	}
}

// report emits a per-page outcome that did not produce a record: a silent
// skip for non-HTML content, a warning for everything else.
func (c *Crawler) report(progress ProgressFunc, entry webcrawl.FrontierEntry, pages int, err error) {
	if progress == nil {
		return
	}
	eventType := ProgressFailed
	if webcrawl.ErrorCode(err) == webcrawl.EUNSUPPORTED {
		eventType = ProgressSkipped
	}
	progress(ProgressEvent{Type: eventType, URL: entry.URL, Depth: entry.Depth, Pages: pages, Error: err})
}

// failure builds the setup-failure envelope: the crawl never started, so
// no pages were fetched.
func failure(err error) *webcrawl.CrawlResult {
	return &webcrawl.CrawlResult{
		Success:   false,
		Data:      []*webcrawl.PageRecord{},
		Error:     webcrawl.ErrorMessage(err),
		Timestamp: time.Now(),
	}
}
