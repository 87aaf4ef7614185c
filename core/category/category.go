// Package category maps free-text work tags to the canonical filter labels.
package category

import (
	"sort"
	"strings"

	"github.com/gaurav-prasanna/sheetfolio/core"
)

// All is the catch-all filter that matches every work item.
const All = "ALL"

// WIP is the label for work in progress, derived from tags or status.
const WIP = "WIP"

// Order is the preferred display order of the filter chips.
var Order = []string{All, WIP, "FX", "COMPOSITING", "LIGHTING", "MODELLING", "3D ENVIRONMENTS"}

// synonyms maps a lower-cased, trimmed tag to its canonical label.
var synonyms = map[string]string{
	"fx":              "FX",
	"compositing":     "COMPOSITING",
	"lighting":        "LIGHTING",
	"modelling":       "MODELLING",
	"modeling":        "MODELLING",
	"3d environments": "3D ENVIRONMENTS",
	"3d env":          "3D ENVIRONMENTS",
	"environment":     "3D ENVIRONMENTS",
	"environments":    "3D ENVIRONMENTS",
	"env":             "3D ENVIRONMENTS",
	"wip":             WIP,
}

// Derive returns the deduplicated categories for a work item, in first-seen order.
// A status of "WIP" (any case) adds WIP even without a WIP tag.
func Derive(tags []string, status string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(c string) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	if strings.EqualFold(strings.TrimSpace(status), WIP) {
		add(WIP)
	}
	for _, tag := range tags {
		key := strings.ToLower(strings.TrimSpace(tag))
		if key == "" {
			continue
		}
		if label, ok := synonyms[key]; ok {
			add(label)
			continue
		}
		add(core.Titleize(key))
	}
	return out
}

// Present returns the filter chips for a catalog: ALL, then the preferred
// labels that occur, then any other labels sorted alphabetically.
func Present(items []core.WorkItem) []string {
	found := map[string]bool{All: true}
	for _, item := range items {
		for _, c := range item.Categories {
			found[c] = true
		}
	}

	preferred := make(map[string]bool, len(Order))
	out := make([]string, 0, len(found))
	for _, c := range Order {
		preferred[c] = true
		if found[c] {
			out = append(out, c)
		}
	}

	var extras []string
	for c := range found {
		if !preferred[c] {
			extras = append(extras, c)
		}
	}
	sort.Strings(extras)
	return append(out, extras...)
}

// Resolve returns the present chip matching active, ignoring case and
// surrounding space, otherwise All. The chip's own spelling is returned.
func Resolve(active string, present []string) string {
	active = strings.TrimSpace(active)
	for _, c := range present {
		if strings.EqualFold(c, active) {
			return c
		}
	}
	return All
}

// Filter returns the items shown under the active chip.
func Filter(items []core.WorkItem, active string) []core.WorkItem {
	if active == All || active == "" {
		return items
	}
	var out []core.WorkItem
	for _, item := range items {
		if item.HasCategory(active) {
			out = append(out, item)
		}
	}
	return out
}
