// Package transform maps decoded spreadsheet rows to typed portfolio records.
// Every function here is pure: rows in, records out.
package transform

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/sheetfolio/core"
)

// Column candidates, in precedence order. Names are case-sensitive.
var (
	catalogTitle       = []string{"Title", "NAME", "Project"}
	catalogURL         = []string{"URL", "Link", "Video", "VideoURL"}
	catalogStatus      = []string{"Status", "State", "Type"}
	catalogTags        = []string{"Tags/Categories", "Tags", "Categories"}
	catalogThumbnail   = []string{"Thumbnail", "Thumb"}
	catalogDescription = []string{"Description", "Details"}
	catalogGallery     = []string{"Gallery", "Images", "ImageGallery"}

	settingsKey   = []string{"Key", "key", "Section"}
	settingsValue = []string{"Value", "value", "Details"}

	contactType  = []string{"Type", "Section"}
	contactValue = []string{"Value", "Details"}
	contactIcon  = []string{"IconURL", "Icon"}
)

// Pick returns the trimmed value of the first candidate column that is
// present and non-empty in row, or "" when none is.
func Pick(row core.Row, candidates ...string) string {
	for _, name := range candidates {
		if v := strings.TrimSpace(row[name]); v != "" {
			return v
		}
	}
	return ""
}

// splitList splits s on sep, trims every item and drops empty ones.
func splitList(s string, sep *regexp.Regexp) []string {
	var out []string
	for _, item := range sep.Split(s, -1) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
