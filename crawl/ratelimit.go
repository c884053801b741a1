package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/webcrawl"
	"golang.org/x/time/rate"
)

// DefaultPoliteDelay is the fixed delay between page fetches.
const DefaultPoliteDelay = 1 * time.Second

var _ webcrawl.Limiter = (*Pacer)(nil)

// Pacer enforces a fixed politeness delay between fetches using a token
// bucket with a burst of 1. The first Wait returns immediately; each
// subsequent Wait blocks until the configured interval has elapsed since
// the previous one.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer with the given interval between fetches.
// A non-positive interval falls back to DefaultPoliteDelay.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		interval = DefaultPoliteDelay
	}
	return &Pacer{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until the next fetch is allowed.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
