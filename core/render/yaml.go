package render

import (
	"fmt"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"gopkg.in/yaml.v3"
)

// YAMLRenderer produces the structured export as YAML.
type YAMLRenderer struct{}

// NewYAMLRenderer creates a YAMLRenderer.
func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

// Render marshals the snapshot and its Markdown outline.
func (r *YAMLRenderer) Render(markdown string, snap core.Snapshot) ([]byte, error) {
	data, err := yaml.Marshal(BuildExport(markdown, snap))
	if err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return data, nil
}

func (r *YAMLRenderer) Extension() string {
	return ".yaml"
}
