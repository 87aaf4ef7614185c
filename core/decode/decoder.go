// Package decode turns published spreadsheet CSV text into rows.
//
// The dialect is the one Google Sheets emits: comma-separated fields,
// optionally wrapped in double quotes, quotes escaped by doubling. Input is
// split by physical line first, so a quoted field cannot span lines.
package decode

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/sheetfolio/core"
)

const (
	delimiter = ','
	quote     = '"'
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// Decode parses text into rows keyed by the header line's column names.
// It never fails: malformed quoting yields a best-effort row.
func Decode(text string) []core.Row {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	lines := lineBreak.Split(text, -1)
	header := SplitLine(lines[0])
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}

	rows := make([]core.Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cells := SplitLine(line)
		row := make(core.Row, len(header))
		for i, name := range header {
			if i < len(cells) {
				row[name] = strings.TrimSpace(cells[i])
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// SplitLine splits one physical line into its fields.
// An unterminated quote leaves quoted mode on until the end of the line.
func SplitLine(line string) []string {
	var (
		fields []string
		cur    strings.Builder
		inQ    bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == quote && i+1 < len(runes) && runes[i+1] == quote:
			cur.WriteRune(quote)
			i++
		case ch == quote:
			inQ = !inQ
		case ch == delimiter && !inQ:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	fields = append(fields, cur.String())

	for i, f := range fields {
		fields[i] = stripWrappingQuotes(f)
	}
	return fields
}

// stripWrappingQuotes removes one leading and one trailing quote character.
func stripWrappingQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

// Encode writes rows back out in the same dialect, quoting every field.
// Column order follows header.
func Encode(header []string, rows []core.Row) string {
	var b strings.Builder
	writeLine := func(cells []string) {
		for i, c := range cells {
			if i > 0 {
				b.WriteByte(delimiter)
			}
			b.WriteByte(quote)
			b.WriteString(strings.ReplaceAll(c, `"`, `""`))
			b.WriteByte(quote)
		}
		b.WriteByte('\n')
	}

	writeLine(header)
	for _, row := range rows {
		cells := make([]string, len(header))
		for i, name := range header {
			cells[i] = row[name]
		}
		writeLine(cells)
	}
	return b.String()
}
