package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webcrawl"
	"github.com/fwojciec/webcrawl/crawl"
	"github.com/fwojciec/webcrawl/goquery"
	webhttp "github.com/fwojciec/webcrawl/http"
	webslog "github.com/fwojciec/webcrawl/slog"
	"github.com/fwojciec/webcrawl/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used for the crawl archive.
	DB *sqlite.DB

	// Crawl archive service, exposed for end-to-end testing.
	Crawls webcrawl.CrawlService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webcrawl"),
		kong.Description("Bounded breadth-first website crawler and content extractor."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webcrawl --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WEBCRAWL_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.Crawls = sqlite.NewCrawlService(m.DB)
	deps.DB = m.DB
	deps.Crawls = m.Crawls

	// Wire the crawl engine only when it is needed.
	if cmd == "crawl" {
		var fetcher webcrawl.Fetcher = webhttp.NewFetcher()
		if cli.Crawl.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			fetcher = webslog.NewLoggingFetcher(fetcher, logger)
		}
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Fetcher:   fetcher,
			Extractor: goquery.NewExtractor(),
			Limiter:   crawl.NewPacer(cli.Crawl.Delay),
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("WEBCRAWL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "webcrawl.db"
	}
	dir := filepath.Join(home, ".webcrawl")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "webcrawl.db")
}
