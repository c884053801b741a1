// Package goquery provides a goquery-based implementation of
// webcrawl.Extractor that turns raw HTML into a structured PageRecord.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webcrawl"
)

// NoTitle is the fallback title for pages without a <title> element.
const NoTitle = "No title found"

// Compile-time interface verification.
var _ webcrawl.Extractor = (*Extractor)(nil)

// Extractor extracts structured content from HTML pages.
// It is pure with respect to its inputs: no network access, no shared
// state, deterministic output for identical inputs.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML fetched from pageURL and returns the structured
// page content. Relative links are resolved against pageURL; baseOrigin
// classifies links as internal or external. FetchedAt is left zero so
// extraction stays deterministic; the crawl engine stamps it.
func (e *Extractor) Extract(pageURL, rawHTML, baseOrigin string) (*webcrawl.PageRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, webcrawl.Errorf(webcrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	rec := &webcrawl.PageRecord{
		URL:      pageURL,
		Headings: webcrawl.NewHeadings(),
		Links:    []webcrawl.Link{},
		Images:   []string{},
	}

	rec.Title = extractTitle(doc)
	rec.MetaDescription = extractMetaDescription(doc)

	for level := 1; level <= webcrawl.HeadingLevels; level++ {
		doc.Find(fmt.Sprintf("h%d", level)).Each(func(_ int, sel *goquery.Selection) {
			rec.Headings[level] = append(rec.Headings[level], webcrawl.NormalizeText(sel.Text()))
		})
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}
		resolved := webcrawl.ResolveLink(pageURL, href)
		rec.Links = append(rec.Links, webcrawl.Link{
			URL:      resolved,
			Text:     webcrawl.NormalizeText(sel.Text()),
			Internal: webcrawl.IsInternal(resolved, baseOrigin),
		})
	})

	// Image sources are recorded raw and unresolved; resolution against
	// the page URL happens at display time, not during extraction.
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		rec.Images = append(rec.Images, src)
	})

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		paragraphs = append(paragraphs, webcrawl.NormalizeText(sel.Text()))
	})
	rec.MainText = strings.Join(paragraphs, " ")

	return rec, nil
}

// extractTitle returns the normalized text of the first <title> element,
// or NoTitle if the document has none.
func extractTitle(doc *goquery.Document) string {
	title := doc.Find("title").First()
	if title.Length() == 0 {
		return NoTitle
	}
	return webcrawl.NormalizeText(title.Text())
}

// extractMetaDescription returns the content of <meta name="description">,
// falling back to <meta property="og:description">, or an empty string.
func extractMetaDescription(doc *goquery.Document) string {
	for _, selector := range []string{`meta[name="description"]`, `meta[property="og:description"]`} {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			content, _ := sel.Attr("content")
			return webcrawl.NormalizeText(content)
		}
	}
	return ""
}
