// Package core defines the shared records and pipeline interfaces for SheetFolio.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// FetchResult holds the raw body and response metadata from a fetch.
type FetchResult struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

// Fetcher retrieves a raw document from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// SourceFetcher retrieves and decodes one named spreadsheet source.
// A call for a key supersedes any earlier call for the same key.
type SourceFetcher interface {
	FetchSource(ctx context.Context, url string, key SourceKey) ([]Row, error)
}

// TextExtractor pulls readable text out of a linked document.
type TextExtractor interface {
	Extract(ctx context.Context, documentURL string) (string, error)
}

// Normalizer converts an HTML snapshot into Markdown (the canonical export format).
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a portfolio snapshot (and its Markdown form) into a final output format.
type Renderer interface {
	Render(markdown string, snap Snapshot) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
