package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer lays the Markdown export out as a printable PDF.
// Images and embedded players are not rendered.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var (
	numberedItem = regexp.MustCompile(`^\d+\.\s`)
	italicSpan   = regexp.MustCompile(`(?:^|\s)[*_]([^*_]+)[*_](?:\s|$)`)
	inlineCode   = regexp.MustCompile("`([^`]+)`")
	inlineLink   = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	escapedPunct = regexp.MustCompile(`\\([\\` + "`" + `*_{}\[\]()#+\-.!|])`)
)

// Render converts Markdown into PDF bytes. The snapshot supplies the
// document metadata.
func (r *PDFRenderer) Render(markdown string, snap core.Snapshot) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	// Core fonts are cp1252; translate UTF-8 text (accents, bullets) into it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	name := snap.Settings[core.SettingName]
	pdf.SetTitle(name, true)
	pdf.SetAuthor(name, true)
	pdf.SetSubject(snap.Settings[core.SettingTitle], true)
	pdf.AddPage()

	lines := strings.Split(markdown, "\n")
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
			continue
		}

		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}

		if strings.HasPrefix(line, "#") {
			level := len(line) - len(strings.TrimLeft(line, "#"))
			text := strings.TrimSpace(strings.TrimLeft(line, "# "))
			renderHeading(pdf, tr(cleanInlineMarkdown(text)), level)
			continue
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr("• "+cleanInlineMarkdown(trimmed[2:])), "", "L", false)
			continue
		}

		if numberedItem.MatchString(trimmed) {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
			continue
		}

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(line)), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicSpan.ReplaceAllString(text, " $1 ")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = inlineLink.ReplaceAllString(text, "$1")
	text = escapedPunct.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
