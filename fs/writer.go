// Package fs exports crawl results to the local filesystem: one JSON file
// per page plus a timestamped CSV summary.
package fs

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/webcrawl"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds parallel page writes.
const defaultConcurrency = 8

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/docs/api/users → docs/api/users.json
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Root or trailing slash becomes index.json.
	if path == "" || path == "/" {
		return "index.json", nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return path + "index.json", nil
	}

	return path + ".json", nil
}

// SummaryFilename returns the name of the CSV summary for a crawl finished
// at the given time, e.g. crawl_results_20240131_154502.csv.
func SummaryFilename(t time.Time) string {
	return "crawl_results_" + t.Format("20060102_150405") + ".csv"
}

// Ensure Writer implements webcrawl.ResultWriter at compile time.
var _ webcrawl.ResultWriter = (*Writer)(nil)

// Writer exports a crawl result to a directory.
type Writer struct {
	baseDir     string
	concurrency int
}

// Option configures a Writer.
type Option func(*Writer)

// WithConcurrency bounds the number of page files written in parallel.
func WithConcurrency(n int) Option {
	return func(w *Writer) {
		w.concurrency = n
	}
}

// NewWriter creates a Writer exporting into baseDir.
func NewWriter(baseDir string, opts ...Option) *Writer {
	w := &Writer{
		baseDir:     baseDir,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteResult writes one JSON file per page under pages/ and a CSV summary
// (columns: URL, Title, Links, Images) named after the result timestamp.
func (w *Writer) WriteResult(ctx context.Context, result *webcrawl.CrawlResult) error {
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)

	for _, page := range result.Data {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return w.writePage(page)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return w.writeSummary(result)
}

// writePage writes a single page as indented JSON under pages/.
func (w *Writer) writePage(page *webcrawl.PageRecord) error {
	relPath, err := URLToPath(page.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, "pages", relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fullPath, data, 0644)
}

// writeSummary writes the tabular crawl summary as CSV.
func (w *Writer) writeSummary(result *webcrawl.CrawlResult) error {
	f, err := os.Create(filepath.Join(w.baseDir, SummaryFilename(result.Timestamp)))
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"URL", "Title", "Links", "Images"}); err != nil {
		return err
	}
	for _, page := range result.Data {
		row := []string{
			page.URL,
			page.Title,
			strconv.Itoa(page.LinkCount()),
			strconv.Itoa(page.ImageCount()),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
