package webcrawl

import (
	"net/url"
	"strings"
)

// IsValidURL reports whether s parses as an absolute URL with both a
// scheme and a host. Used to reject malformed seeds before any network
// call is made.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// BaseOrigin returns the scheme://host portion of rawURL, used to classify
// links as internal or external. Returns an empty string if rawURL cannot
// be parsed.
func BaseOrigin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// ResolveLink joins a possibly-relative href against the page's own URL,
// following standard relative-resolution rules (scheme-relative,
// path-relative, fragment and query handling). Returns the href unchanged
// if either input cannot be parsed.
func ResolveLink(pageURL, href string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// IsInternal reports whether a resolved URL belongs to the crawl's origin.
// The test is substring containment of the origin, not strict origin
// equality: a link whose query or path contains the origin string also
// counts as internal. Tightening this to a prefix check would change
// link classification in archived crawls.
func IsInternal(resolvedURL, baseOrigin string) bool {
	return strings.Contains(resolvedURL, baseOrigin)
}

// NormalizeText collapses runs of whitespace (including newlines and tabs)
// into single spaces and trims leading and trailing whitespace.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
