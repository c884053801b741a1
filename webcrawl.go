// Package webcrawl provides a bounded breadth-first website crawler.
// Starting from a seed URL it visits internal links up to a configured
// depth and page count, extracting structured content (title, metadata,
// headings, links, images, body text) from each fetched page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package webcrawl
