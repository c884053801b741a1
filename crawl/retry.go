package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/webcrawl"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// FetchWithRetryDelays attempts a fetch, retrying after each delay in
// delays when the previous attempt failed. An empty delays slice means a
// single attempt, which is the engine's default: a failed page is skipped,
// not hammered.
//
// EUNSUPPORTED errors are never retried since the content type of a URL is
// not going to change between attempts.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if webcrawl.ErrorCode(err) == webcrawl.EUNSUPPORTED {
			break
		}
		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
