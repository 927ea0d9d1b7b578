// Package extract implements the Extractor interface.
// It locates the page-image markup of a saved reader HTML document:
// the viewer renders each publication page as a <div class="page">
// whose inline style carries a background-image URL. Decorative and UI
// images use plain <img> tags and are never matched.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/basilelt/reader2pdf/core"
)

// pageSelector matches the viewer's per-page container elements.
const pageSelector = "div.page"

// styleSelector is the fallback for saves where the page class was
// mangled: any element styled with a background image. Noise elements
// are removed before this scan so viewer chrome carrying its own
// background images is not mistaken for publication pages.
const styleSelector = `[style*="background-image"]`

// noiseSelectors are elements removed before the fallback scan. These
// hold the viewer's UI, never page images.
var noiseSelectors = []string{
	"nav", "header", "footer", "aside",
	"form", "button", "a",
	".toolbar", ".menu", ".navigation", ".controls",
	".header", ".footer", ".sidebar",
}

// HTMLExtractor finds page-image references in reader HTML.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract returns the page-image references in document order, indices
// 0..N-1, with duplicate URLs collapsed to their first occurrence.
// The same image URL appears in both preload and display markup, so
// first-occurrence-wins is what preserves reading order.
// Zero matches is not an error; the caller decides whether it is fatal.
func (e *HTMLExtractor) Extract(html string) ([]core.PageReference, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	seen := make(map[string]bool)
	var refs []core.PageReference

	collect := func(_ int, s *goquery.Selection) {
		style, ok := s.Attr("style")
		if !ok {
			return
		}
		raw := backgroundImageURL(style)
		if raw == "" {
			return
		}
		u, ok := ResolveImageURL(raw)
		if !ok || seen[u] {
			return
		}
		seen[u] = true
		refs = append(refs, core.PageReference{Index: len(refs), URL: u})
	}

	doc.Find(pageSelector).Each(collect)
	if len(refs) == 0 {
		for _, sel := range noiseSelectors {
			doc.Find(sel).Remove()
		}
		doc.Find(styleSelector).Each(collect)
	}

	return refs, nil
}
