// Package core defines the pipeline types for reader2pdf.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// PageReference identifies one publication page's image location.
// Index is the zero-based position of the page in reading order.
type PageReference struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
}

// FetchedPage is a PageReference whose image bytes have been written
// to a local file.
type FetchedPage struct {
	Ref  PageReference
	Path string
}

// Extractor pulls the ordered, de-duplicated page-image references
// out of a saved reader HTML document.
type Extractor interface {
	Extract(html string) ([]PageReference, error)
}

// Fetcher retrieves raw image bytes from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Store manages the working directory of fetched page images.
// Allocate returns a path whose lexicographic order matches the page
// index; Commit writes the bytes there.
type Store interface {
	Allocate(index int) string
	Has(path string) bool
	Commit(path string, data []byte) error
}

// Assembler combines the ordered page images into a single PDF file
// at outPath. It must never leave a partial file at outPath.
type Assembler interface {
	Assemble(pages []FetchedPage, outPath string) error
}
