package goquery_test

import (
	"testing"

	"github.com/fwojciec/webcrawl"
	"github.com/fwojciec/webcrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title normalized", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>
			Welcome   to
			Example</title></head><body></body></html>`

		rec, err := goquery.NewExtractor().Extract("https://ex.com", html, "https://ex.com")
		require.NoError(t, err)
		assert.Equal(t, "Welcome to Example", rec.Title)
	})

	t.Run("falls back to fixed title when absent", func(t *testing.T) {
		t.Parallel()

		rec, err := goquery.NewExtractor().Extract("https://ex.com", "<html><body><p>hi</p></body></html>", "https://ex.com")
		require.NoError(t, err)
		assert.Equal(t, "No title found", rec.Title)
	})

	t.Run("prefers meta description over og:description", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<meta name="description" content="primary description">
			<meta property="og:description" content="social description">
		</head><body></body></html>`

		rec, err := goquery.NewExtractor().Extract("https://ex.com", html, "https://ex.com")
		require.NoError(t, err)
		assert.Equal(t, "primary description", rec.MetaDescription)
	})

	t.Run("falls back to og:description", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<meta property="og:description" content="social description">
		</head><body></body></html>`

		rec, err := goquery.NewExtractor().Extract("https://ex.com", html, "https://ex.com")
		require.NoError(t, err)
		assert.Equal(t, "social description", rec.MetaDescription)
	})

	t.Run("meta description empty when neither tag exists", func(t *testing.T) {
		t.Parallel()

		rec, err := goquery.NewExtractor().Extract("https://ex.com", "<html><body></body></html>", "https://ex.com")
		require.NoError(t, err)
		assert.Empty(t, rec.MetaDescription)
	})

	t.Run("collects headings per level with all keys present", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<h2>First   Section</h2>
			<p>text</p>
			<h2>Second Section</h2>
		</body></html>`

		rec, err := goquery.NewExtractor().Extract("https://ex.com", html, "https://ex.com")
		require.NoError(t, err)

		require.Len(t, rec.Headings, webcrawl.HeadingLevels)
		assert.Equal(t, []string{"First Section", "Second Section"}, rec.Headings[2])
		for _, level := range []int{1, 3, 4, 5, 6} {
			assert.Empty(t, rec.Headings[level], "level %d should be empty", level)
		}
	})

	t.Run("resolves links against the page URL and classifies them", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/x">Root   Relative</a>
			<a href="y">Path Relative</a>
			<a href="https://other.com/z">External</a>
		</body></html>`

		rec, err := goquery.NewExtractor().Extract("https://ex.com/a/b", html, "https://ex.com")
		require.NoError(t, err)

		require.Len(t, rec.Links, 3)
		assert.Equal(t, webcrawl.Link{URL: "https://ex.com/x", Text: "Root Relative", Internal: true}, rec.Links[0])
		assert.Equal(t, webcrawl.Link{URL: "https://ex.com/a/y", Text: "Path Relative", Internal: true}, rec.Links[1])
		assert.Equal(t, webcrawl.Link{URL: "https://other.com/z", Text: "External", Internal: false}, rec.Links[2])
	})

	t.Run("records raw image sources including missing src", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<img src="/logo.png">
			<img>
			<img src="https://cdn.ex.com/pic.jpg">
		</body></html>`

		rec, err := goquery.NewExtractor().Extract("https://ex.com/page", html, "https://ex.com")
		require.NoError(t, err)

		// Sources stay unresolved; empty string stands in for a missing src.
		assert.Equal(t, []string{"/logo.png", "", "https://cdn.ex.com/pic.jpg"}, rec.Images)
	})

	t.Run("joins paragraph text in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<p>First
			paragraph.</p>
			<div><p>  Second   paragraph.  </p></div>
		</body></html>`

		rec, err := goquery.NewExtractor().Extract("https://ex.com", html, "https://ex.com")
		require.NoError(t, err)
		assert.Equal(t, "First paragraph. Second paragraph.", rec.MainText)
	})

	t.Run("is deterministic for identical inputs", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title></head><body>
			<h1>H</h1><a href="/a">A</a><img src="i.png"><p>P</p>
		</body></html>`

		e := goquery.NewExtractor()
		first, err := e.Extract("https://ex.com", html, "https://ex.com")
		require.NoError(t, err)
		second, err := e.Extract("https://ex.com", html, "https://ex.com")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.True(t, first.FetchedAt.IsZero(), "extractor must not stamp FetchedAt")
	})

	t.Run("validates against the page record contract", func(t *testing.T) {
		t.Parallel()

		rec, err := goquery.NewExtractor().Extract("https://ex.com", "<html></html>", "https://ex.com")
		require.NoError(t, err)
		assert.NoError(t, rec.Validate())
	})
}
