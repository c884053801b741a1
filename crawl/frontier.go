package crawl

import (
	"sync"

	"github.com/fwojciec/webcrawl"
	"github.com/fwojciec/webcrawl/bloom"
)

// Compile-time interface verification.
var _ webcrawl.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO crawl queue with Bloom filter
// deduplication. Entries are popped in the exact order they were first
// pushed, which gives the engine its breadth-first traversal order.
// It is safe for concurrent use by multiple goroutines.
//
// Deduplication keys on the exact URL string; no normalization beyond the
// link resolution already done at discovery time is applied.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []webcrawl.FrontierEntry
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// Push adds an entry to the back of the queue.
// Returns false if the URL has already been queued or processed, so a URL
// is enqueued at most once per crawl and cyclic link graphs cannot grow
// the frontier without bound.
func (f *Frontier) Push(entry webcrawl.FrontierEntry) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.Test(entry.URL) {
		return false
	}
	f.seen.Add(entry.URL)

	f.queue = append(f.queue, entry)
	return true
}

// Pop removes and returns the entry at the front of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (webcrawl.FrontierEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return webcrawl.FrontierEntry{}, false
	}
	entry := f.queue[0]
	f.queue = f.queue[1:]
	return entry, true
}

// Len returns the number of entries in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been queued or processed.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(url)
}
