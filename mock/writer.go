package mock

import (
	"context"

	"github.com/fwojciec/webcrawl"
)

var _ webcrawl.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of webcrawl.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, result *webcrawl.CrawlResult) error
}

func (w *ResultWriter) WriteResult(ctx context.Context, result *webcrawl.CrawlResult) error {
	return w.WriteResultFn(ctx, result)
}
