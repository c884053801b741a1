package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/webcrawl"
	"github.com/fwojciec/webcrawl/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRun() *webcrawl.CrawlRun {
	return &webcrawl.CrawlRun{
		SeedURL:    "https://example.com",
		MaxDepth:   2,
		MaxPages:   10,
		TotalPages: 2,
		Success:    true,
	}
}

func testPages() []*webcrawl.PageRecord {
	h1 := webcrawl.NewHeadings()
	h1[1] = []string{"Welcome"}
	h2 := webcrawl.NewHeadings()
	h2[2] = []string{"Docs", "API"}

	return []*webcrawl.PageRecord{
		{
			URL:             "https://example.com",
			Title:           "Home",
			MetaDescription: "the home page",
			Headings:        h1,
			Links: []webcrawl.Link{
				{URL: "https://example.com/docs", Text: "Docs", Internal: true},
				{URL: "https://other.com", Text: "Other", Internal: false},
			},
			Images:    []string{"/logo.png", ""},
			MainText:  "Hello world.",
			Position:  0,
			FetchedAt: time.Now(),
		},
		{
			URL:       "https://example.com/docs",
			Title:     "Docs",
			Headings:  h2,
			Links:     []webcrawl.Link{},
			Images:    []string{},
			MainText:  "Documentation.",
			Position:  1,
			FetchedAt: time.Now(),
		},
	}
}

func TestCrawlService_CreateCrawl(t *testing.T) {
	t.Parallel()

	t.Run("assigns IDs and persists run with pages", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewCrawlService(db)
		ctx := context.Background()

		run := testRun()
		pages := testPages()
		require.NoError(t, s.CreateCrawl(ctx, run, pages))

		assert.NotEmpty(t, run.ID)
		assert.False(t, run.CreatedAt.IsZero())
		for _, page := range pages {
			assert.NotEmpty(t, page.ID)
			assert.Equal(t, run.ID, page.CrawlID)
			assert.NotEmpty(t, page.ContentHash)
		}
	})

	t.Run("rejects invalid run", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewCrawlService(db)

		err := s.CreateCrawl(context.Background(), &webcrawl.CrawlRun{MaxPages: 1}, nil)
		require.Error(t, err)
		assert.Equal(t, webcrawl.EINVALID, webcrawl.ErrorCode(err))
	})

	t.Run("identical main text yields identical content hash", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewCrawlService(db)
		ctx := context.Background()

		run := testRun()
		pages := testPages()
		pages[1].MainText = pages[0].MainText
		require.NoError(t, s.CreateCrawl(ctx, run, pages))

		assert.Equal(t, pages[0].ContentHash, pages[1].ContentHash)
	})
}

func TestCrawlService_FindCrawlByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips run fields", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewCrawlService(db)
		ctx := context.Background()

		run := testRun()
		require.NoError(t, s.CreateCrawl(ctx, run, nil))

		got, err := s.FindCrawlByID(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, run.SeedURL, got.SeedURL)
		assert.Equal(t, run.MaxDepth, got.MaxDepth)
		assert.Equal(t, run.MaxPages, got.MaxPages)
		assert.Equal(t, run.TotalPages, got.TotalPages)
		assert.True(t, got.Success)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewCrawlService(db)

		_, err := s.FindCrawlByID(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, webcrawl.ENOTFOUND, webcrawl.ErrorCode(err))
	})
}

func TestCrawlService_FindCrawls(t *testing.T) {
	t.Parallel()

	t.Run("filters by seed URL", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewCrawlService(db)
		ctx := context.Background()

		first := testRun()
		require.NoError(t, s.CreateCrawl(ctx, first, nil))

		second := testRun()
		second.SeedURL = "https://another.com"
		require.NoError(t, s.CreateCrawl(ctx, second, nil))

		seed := "https://another.com"
		runs, err := s.FindCrawls(ctx, webcrawl.CrawlFilter{SeedURL: &seed})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, second.ID, runs[0].ID)
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewCrawlService(db)
		ctx := context.Background()

		for range 3 {
			require.NoError(t, s.CreateCrawl(ctx, testRun(), nil))
		}

		runs, err := s.FindCrawls(ctx, webcrawl.CrawlFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})
}

func TestCrawlService_FindPagesByCrawl(t *testing.T) {
	t.Parallel()

	t.Run("round-trips page fields in discovery order", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewCrawlService(db)
		ctx := context.Background()

		run := testRun()
		pages := testPages()
		require.NoError(t, s.CreateCrawl(ctx, run, pages))

		got, err := s.FindPagesByCrawl(ctx, run.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "https://example.com", got[0].URL)
		assert.Equal(t, "Home", got[0].Title)
		assert.Equal(t, "the home page", got[0].MetaDescription)
		assert.Equal(t, []string{"Welcome"}, got[0].Headings[1])
		assert.Len(t, got[0].Headings, webcrawl.HeadingLevels)
		require.Len(t, got[0].Links, 2)
		assert.True(t, got[0].Links[0].Internal)
		assert.False(t, got[0].Links[1].Internal)
		assert.Equal(t, []string{"/logo.png", ""}, got[0].Images)
		assert.Equal(t, "Hello world.", got[0].MainText)

		assert.Equal(t, "https://example.com/docs", got[1].URL)
		assert.Equal(t, []string{"Docs", "API"}, got[1].Headings[2])
		assert.Equal(t, 1, got[1].Position)
	})

	t.Run("returns empty for unknown crawl", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewCrawlService(db)

		got, err := s.FindPagesByCrawl(context.Background(), "no-such-id")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCrawlService_DeleteCrawl(t *testing.T) {
	t.Parallel()

	t.Run("deletes run and cascades to pages", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewCrawlService(db)
		ctx := context.Background()

		run := testRun()
		require.NoError(t, s.CreateCrawl(ctx, run, testPages()))
		require.NoError(t, s.DeleteCrawl(ctx, run.ID))

		_, err := s.FindCrawlByID(ctx, run.ID)
		assert.Equal(t, webcrawl.ENOTFOUND, webcrawl.ErrorCode(err))

		pages, err := s.FindPagesByCrawl(ctx, run.ID)
		require.NoError(t, err)
		assert.Empty(t, pages)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewCrawlService(db)

		err := s.DeleteCrawl(context.Background(), "no-such-id")
		assert.Equal(t, webcrawl.ENOTFOUND, webcrawl.ErrorCode(err))
	})
}
