package mock

import (
	"context"

	"github.com/fwojciec/webcrawl"
)

var _ webcrawl.CrawlService = (*CrawlService)(nil)

// CrawlService is a mock implementation of webcrawl.CrawlService.
type CrawlService struct {
	CreateCrawlFn      func(ctx context.Context, run *webcrawl.CrawlRun, pages []*webcrawl.PageRecord) error
	FindCrawlByIDFn    func(ctx context.Context, id string) (*webcrawl.CrawlRun, error)
	FindCrawlsFn       func(ctx context.Context, filter webcrawl.CrawlFilter) ([]*webcrawl.CrawlRun, error)
	FindPagesByCrawlFn func(ctx context.Context, crawlID string) ([]*webcrawl.PageRecord, error)
	DeleteCrawlFn      func(ctx context.Context, id string) error
}

func (s *CrawlService) CreateCrawl(ctx context.Context, run *webcrawl.CrawlRun, pages []*webcrawl.PageRecord) error {
	return s.CreateCrawlFn(ctx, run, pages)
}

func (s *CrawlService) FindCrawlByID(ctx context.Context, id string) (*webcrawl.CrawlRun, error) {
	return s.FindCrawlByIDFn(ctx, id)
}

func (s *CrawlService) FindCrawls(ctx context.Context, filter webcrawl.CrawlFilter) ([]*webcrawl.CrawlRun, error) {
	return s.FindCrawlsFn(ctx, filter)
}

func (s *CrawlService) FindPagesByCrawl(ctx context.Context, crawlID string) ([]*webcrawl.PageRecord, error) {
	return s.FindPagesByCrawlFn(ctx, crawlID)
}

func (s *CrawlService) DeleteCrawl(ctx context.Context, id string) error {
	return s.DeleteCrawlFn(ctx, id)
}
