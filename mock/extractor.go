package mock

import "github.com/fwojciec/webcrawl"

var _ webcrawl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webcrawl.Extractor.
type Extractor struct {
	ExtractFn func(pageURL, rawHTML, baseOrigin string) (*webcrawl.PageRecord, error)
}

func (e *Extractor) Extract(pageURL, rawHTML, baseOrigin string) (*webcrawl.PageRecord, error) {
	return e.ExtractFn(pageURL, rawHTML, baseOrigin)
}
