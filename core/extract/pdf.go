package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/gaurav-prasanna/sheetfolio/core/pdflink"
	"github.com/ledongthuc/pdf"
)

const (
	// MaxPages is the last page ever read from a document.
	MaxPages = 30
	// MaxChars stops reading further pages once the text grows past it.
	MaxChars = 50000
)

var errNotPDF = errors.New("host returned a page instead of a PDF")

// Document is a paginated source of text. Pages are numbered from 1.
type Document interface {
	NumPage() int
	PageText(page int) (string, error)
}

// PDFExtractor downloads a linked PDF and returns its visible text.
type PDFExtractor struct {
	fetcher core.Fetcher
	open    func(data []byte) (Document, error)
}

// NewPDFExtractor creates a PDFExtractor that downloads through fetcher.
func NewPDFExtractor(fetcher core.Fetcher) *PDFExtractor {
	return &PDFExtractor{fetcher: fetcher, open: OpenPDF}
}

// Extract resolves the direct-download form of pdfURL, retrieves it, and
// reads up to MaxPages pages. Any failure is a *core.PDFUnavailableError.
func (e *PDFExtractor) Extract(ctx context.Context, pdfURL string) (string, error) {
	direct := pdflink.Normalize(pdfURL).DirectURL

	data, err := e.retrieve(ctx, direct)
	if err != nil {
		return "", &core.PDFUnavailableError{URL: direct, Err: err}
	}

	doc, err := e.open(data)
	if err != nil {
		return "", &core.PDFUnavailableError{URL: direct, Err: err}
	}

	text, err := ReadPages(doc, MaxPages, MaxChars)
	if err != nil {
		return "", &core.PDFUnavailableError{URL: direct, Err: err}
	}
	return text, nil
}

// retrieve downloads the document, following one interstitial page if the
// host puts one in front of the file.
func (e *PDFExtractor) retrieve(ctx context.Context, direct string) ([]byte, error) {
	result, err := e.fetcher.Fetch(ctx, direct)
	if err != nil {
		return nil, err
	}
	if looksLikePDF(result.Body) {
		return result.Body, nil
	}
	if !looksLikeHTML(result) {
		return nil, errNotPDF
	}

	next, err := ConfirmURL(string(result.Body), direct)
	if err != nil {
		return nil, err
	}
	if next == "" {
		return nil, errNotPDF
	}

	result, err = e.fetcher.Fetch(ctx, next)
	if err != nil {
		return nil, err
	}
	if !looksLikePDF(result.Body) {
		return nil, errNotPDF
	}
	return result.Body, nil
}

// ReadPages reads pages 1..min(NumPage, maxPages) in order. Tokens within a
// page are joined by single spaces and pages by a blank line. No page is
// read after the accumulated text exceeds maxChars.
func ReadPages(doc Document, maxPages, maxChars int) (string, error) {
	n := doc.NumPage()
	if n > maxPages {
		n = maxPages
	}

	var (
		b     strings.Builder
		chars int
	)
	for p := 1; p <= n; p++ {
		text, err := doc.PageText(p)
		if err != nil {
			return "", fmt.Errorf("reading page %d: %w", p, err)
		}
		if p > 1 {
			b.WriteString("\n\n")
			chars += 2
		}
		joined := strings.Join(strings.Fields(text), " ")
		b.WriteString(joined)
		chars += utf8.RuneCountInString(joined)
		if chars > maxChars {
			break
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func looksLikePDF(body []byte) bool {
	head := body
	if len(head) > 1024 {
		head = head[:1024]
	}
	return bytes.Contains(head, []byte("%PDF-"))
}

func looksLikeHTML(result *core.FetchResult) bool {
	if strings.Contains(strings.ToLower(result.ContentType), "text/html") {
		return true
	}
	return bytes.HasPrefix(bytes.TrimSpace(result.Body), []byte("<"))
}

// pdfDocument adapts a ledongthuc/pdf reader. The library panics on some
// malformed files, so every call recovers.
type pdfDocument struct {
	r *pdf.Reader
}

// OpenPDF parses raw PDF bytes.
func OpenPDF(data []byte) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("parsing pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parsing pdf: %w", err)
	}
	return &pdfDocument{r: r}, nil
}

func (d *pdfDocument) NumPage() (n int) {
	defer func() {
		if r := recover(); r != nil {
			n = 0
		}
	}()
	return d.r.NumPage()
}

func (d *pdfDocument) PageText(i int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("page %d: %v", i, r)
		}
	}()

	page := d.r.Page(i)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}
