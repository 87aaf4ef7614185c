package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/sheetfolio/core"
)

// JSONRenderer produces the structured export as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the snapshot and its Markdown outline.
func (r *JSONRenderer) Render(markdown string, snap core.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(BuildExport(markdown, snap), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
