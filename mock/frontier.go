package mock

import (
	"context"

	"github.com/fwojciec/webcrawl"
)

var _ webcrawl.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of webcrawl.URLFrontier.
type URLFrontier struct {
	PushFn func(entry webcrawl.FrontierEntry) bool
	PopFn  func() (webcrawl.FrontierEntry, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (f *URLFrontier) Push(entry webcrawl.FrontierEntry) bool {
	return f.PushFn(entry)
}

func (f *URLFrontier) Pop() (webcrawl.FrontierEntry, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

func (f *URLFrontier) Seen(url string) bool {
	return f.SeenFn(url)
}

var _ webcrawl.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of webcrawl.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
