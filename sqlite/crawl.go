package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webcrawl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ webcrawl.CrawlService = (*CrawlService)(nil)

// CrawlService implements webcrawl.CrawlService using SQLite.
type CrawlService struct {
	db *DB
}

// NewCrawlService creates a new CrawlService.
func NewCrawlService(db *DB) *CrawlService {
	return &CrawlService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateCrawl archives a run and its pages in one transaction.
func (s *CrawlService) CreateCrawl(ctx context.Context, run *webcrawl.CrawlRun, pages []*webcrawl.PageRecord) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO crawls (id, seed_url, max_depth, max_pages, total_pages, success, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.SeedURL, run.MaxDepth, run.MaxPages, run.TotalPages,
		boolToInt(run.Success), run.Error, run.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for _, page := range pages {
		if err := page.Validate(); err != nil {
			return err
		}

		page.ID = uuid.New().String()
		page.CrawlID = run.ID
		page.ContentHash = hashContent(page.MainText)

		headings, err := json.Marshal(page.Headings)
		if err != nil {
			return err
		}
		links, err := json.Marshal(page.Links)
		if err != nil {
			return err
		}
		images, err := json.Marshal(page.Images)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO pages (id, crawl_id, url, title, meta_description, headings, links, images, main_text, content_hash, position, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, page.ID, page.CrawlID, page.URL, page.Title, page.MetaDescription,
			string(headings), string(links), string(images), page.MainText,
			page.ContentHash, page.Position, page.FetchedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindCrawlByID retrieves an archived run by ID.
func (s *CrawlService) FindCrawlByID(ctx context.Context, id string) (*webcrawl.CrawlRun, error) {
	var run webcrawl.CrawlRun
	var success int
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, seed_url, max_depth, max_pages, total_pages, success, error, created_at
		FROM crawls
		WHERE id = ?
	`, id).Scan(&run.ID, &run.SeedURL, &run.MaxDepth, &run.MaxPages,
		&run.TotalPages, &success, &run.Error, &createdAt)

	if err == sql.ErrNoRows {
		return nil, webcrawl.Errorf(webcrawl.ENOTFOUND, "crawl not found")
	}
	if err != nil {
		return nil, err
	}

	run.Success = success != 0
	run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &run, nil
}

// FindCrawls retrieves archived runs matching the filter, newest first.
func (s *CrawlService) FindCrawls(ctx context.Context, filter webcrawl.CrawlFilter) ([]*webcrawl.CrawlRun, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, seed_url, max_depth, max_pages, total_pages, success, error, created_at FROM crawls WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SeedURL != nil {
		query.WriteString(" AND seed_url = ?")
		args = append(args, *filter.SeedURL)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*webcrawl.CrawlRun
	for rows.Next() {
		var run webcrawl.CrawlRun
		var success int
		var createdAt string

		if err := rows.Scan(&run.ID, &run.SeedURL, &run.MaxDepth, &run.MaxPages,
			&run.TotalPages, &success, &run.Error, &createdAt); err != nil {
			return nil, err
		}

		run.Success = success != 0
		run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// FindPagesByCrawl retrieves the pages of a run in discovery order.
func (s *CrawlService) FindPagesByCrawl(ctx context.Context, crawlID string) ([]*webcrawl.PageRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, crawl_id, url, title, meta_description, headings, links, images, main_text, content_hash, position, fetched_at
		FROM pages
		WHERE crawl_id = ?
		ORDER BY position ASC
	`, crawlID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*webcrawl.PageRecord
	for rows.Next() {
		var page webcrawl.PageRecord
		var headings, links, images, fetchedAt string

		if err := rows.Scan(&page.ID, &page.CrawlID, &page.URL, &page.Title,
			&page.MetaDescription, &headings, &links, &images, &page.MainText,
			&page.ContentHash, &page.Position, &fetchedAt); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(headings), &page.Headings); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(links), &page.Links); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(images), &page.Images); err != nil {
			return nil, err
		}

		page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// DeleteCrawl permanently removes a run; its pages cascade.
func (s *CrawlService) DeleteCrawl(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM crawls WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return webcrawl.Errorf(webcrawl.ENOTFOUND, "crawl not found")
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
