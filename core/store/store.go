// Package store handles file naming and writing for fetched page
// images. Names are zero-padded so a lexicographic sort reproduces
// page order, though the assembler never relies on that: it consumes
// pages by index. Committed files double as a download cache across
// runs on the same document.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store writes page images into a working directory.
type Store struct {
	Dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating pages directory: %w", err)
	}
	return &Store{Dir: dir}, nil
}

// Allocate returns the path for the page at the given zero-based
// index. Filenames are 1-based to match what readers expect from a
// page dump. Indices are unique per run, so paths never collide.
func (s *Store) Allocate(index int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("page-%03d.jpg", index+1))
}

// Has reports whether a previously committed file already exists at
// path, letting a rerun skip the download.
func (s *Store) Has(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}

// Commit writes the fetched bytes to the allocated path.
func (s *Store) Commit(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing page file %s: %w", path, err)
	}
	return nil
}

// Clean removes the working directory and everything in it.
func (s *Store) Clean() error {
	return os.RemoveAll(s.Dir)
}

// WorkDir derives the page working directory for an HTML input.
// With pagesDir set it is used as-is; otherwise the directory sits
// next to the input, named after its basename (book.html → book/).
func WorkDir(htmlPath, pagesDir string) string {
	if pagesDir != "" {
		return pagesDir
	}
	return strings.TrimSuffix(htmlPath, filepath.Ext(htmlPath))
}

// OutputPath derives the destination PDF path for an HTML input.
// An empty out puts the PDF next to the input; an out naming an
// existing directory gets a filename derived from the input basename.
func OutputPath(htmlPath, out string) string {
	name := strings.TrimSuffix(filepath.Base(htmlPath), filepath.Ext(htmlPath)) + ".pdf"
	if out == "" {
		return filepath.Join(filepath.Dir(htmlPath), name)
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, name)
	}
	return out
}
