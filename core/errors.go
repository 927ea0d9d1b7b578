// Error types for the pipeline. Every failure is tagged with the stage
// it occurred in so the CLI (or any other caller) can show a single
// actionable message.
package core

import (
	"errors"
	"fmt"
)

// Stage names a phase of the conversion pipeline.
type Stage string

const (
	StageExtracting Stage = "extracting"
	StageFetching   Stage = "fetching"
	StageAssembling Stage = "assembling"
)

// ErrNoPages is reported when the input HTML contains no page-image
// markup at all. The extractor itself returns an empty slice; the
// orchestrator turns that into this error.
var ErrNoPages = errors.New("no page images found in HTML")

// PipelineError wraps a stage failure with the stage it happened in.
type PipelineError struct {
	Stage Stage
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

// FetchError reports a failed image download. Either StatusCode is set
// (non-success HTTP response) or Err holds the transport failure.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// AssemblyError reports a page image that could not be embedded.
// Index is the PageReference index of the offending page.
type AssemblyError struct {
	Index int
	Err   error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("embedding page index %d: %v", e.Index, e.Err)
}

func (e *AssemblyError) Unwrap() error { return e.Err }
