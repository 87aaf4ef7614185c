package transform

import (
	"strings"

	"github.com/gaurav-prasanna/sheetfolio/core"
)

// Contact builds the contact list. A row typed "blurb" sets the standalone
// blurb instead of adding an entry; rows missing a type or value are skipped.
func Contact(rows []core.Row) core.Contact {
	var out core.Contact
	for _, row := range rows {
		kind := strings.ToLower(Pick(row, contactType...))
		value := Pick(row, contactValue...)
		if kind == "" || value == "" {
			continue
		}
		if kind == "blurb" {
			out.Blurb = value
			continue
		}
		out.Entries = append(out.Entries, core.ContactEntry{
			Kind:    kind,
			Value:   value,
			IconURL: Pick(row, contactIcon...),
		})
	}
	return out
}
