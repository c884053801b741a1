package webcrawl

import "time"

// HeadingLevels is the range of HTML heading levels tracked per page.
// PageRecord.Headings always contains a key for each level 1..HeadingLevels,
// even when no headings exist at that level.
const HeadingLevels = 6

// Link represents a single outbound link found on a page.
type Link struct {
	URL      string `json:"url"`
	Text     string `json:"text"`
	Internal bool   `json:"isInternal"`
}

// PageRecord holds the structured content extracted from one fetched page.
// A record is created once per successfully fetched and parsed page and is
// immutable afterwards.
type PageRecord struct {
	ID      string `json:"id"`
	CrawlID string `json:"crawlId"`

	URL             string `json:"url"`
	Title           string `json:"title"`
	MetaDescription string `json:"metaDescription"`

	// Headings maps heading level (1-6) to the ordered, cleaned text of
	// every heading tag at that level. All six keys are always present.
	Headings map[int][]string `json:"headings"`

	// Links lists every anchor with an href, in document order, resolved
	// against the page URL.
	Links []Link `json:"links"`

	// Images lists the raw src attribute of every image tag in document
	// order. Images without a src contribute an empty string.
	Images []string `json:"images"`

	// MainText is the whitespace-normalized text of every paragraph tag,
	// joined with single spaces.
	MainText string `json:"mainText"`

	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// NewHeadings returns a headings map with all levels 1..HeadingLevels
// initialized to empty slices.
func NewHeadings() map[int][]string {
	h := make(map[int][]string, HeadingLevels)
	for level := 1; level <= HeadingLevels; level++ {
		h[level] = []string{}
	}
	return h
}

// Validate returns an error if the page record contains invalid fields.
func (p *PageRecord) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	for level := 1; level <= HeadingLevels; level++ {
		if _, ok := p.Headings[level]; !ok {
			return Errorf(EINVALID, "page headings missing level %d", level)
		}
	}
	return nil
}

// LinkCount returns the number of links on the page.
func (p *PageRecord) LinkCount() int { return len(p.Links) }

// ImageCount returns the number of images on the page.
func (p *PageRecord) ImageCount() int { return len(p.Images) }

// InternalLinks returns the links classified as internal, in document order.
func (p *PageRecord) InternalLinks() []Link {
	var links []Link
	for _, l := range p.Links {
		if l.Internal {
			links = append(links, l)
		}
	}
	return links
}
