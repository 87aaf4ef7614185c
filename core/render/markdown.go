package render

import (
	"github.com/gaurav-prasanna/sheetfolio/core"
)

// MarkdownRenderer writes the normalized Markdown as-is.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the Markdown as bytes (passthrough).
func (r *MarkdownRenderer) Render(markdown string, _ core.Snapshot) ([]byte, error) {
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
