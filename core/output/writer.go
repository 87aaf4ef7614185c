// Package output handles file naming and writing for exports.
// Filenames are derived from the portfolio owner's name
// (e.g. jane_doe_portfolio.md).
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data as <owner>_portfolio<ext> and returns the path written.
func (w *Writer) Write(owner string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, Filename(owner)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Filename converts an owner name into a flat, lower-case file stem.
// Example: "Varun Kumar Korikana" → varun_kumar_korikana_portfolio
func Filename(owner string) string {
	stem := strings.Trim(sanitize(strings.ToLower(owner)), "_")
	if stem == "" {
		return "portfolio"
	}
	return stem + "_portfolio"
}

// sanitize replaces runs of non-alphanumeric characters with one underscore.
func sanitize(s string) string {
	var b strings.Builder
	underscore := false
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
			underscore = false
		} else if !underscore {
			b.WriteRune('_')
			underscore = true
		}
	}
	return b.String()
}
