// Package extract pulls readable text out of documents linked from work
// descriptions. PDFs are read page by page; HTML pages that some hosts
// serve in front of a download are inspected for the real download link.
package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// confirmSelectors locate a download continuation on a host's interstitial
// page, in priority order. The form is Google Drive's current "can't scan
// this file for viruses" page; the anchors are its older variants.
var confirmSelectors = []string{
	"a#uc-download-link",
	`a[href*="confirm="]`,
}

// ConfirmURL inspects an interstitial HTML page and returns the absolute URL
// that continues the download, or "" when the page offers none.
func ConfirmURL(html string, pageURL string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parsing page URL: %w", err)
	}

	if form := doc.Find("form#download-form").First(); form.Length() > 0 {
		action, _ := form.Attr("action")
		target, err := url.Parse(action)
		if err != nil {
			return "", fmt.Errorf("parsing form action: %w", err)
		}
		target = base.ResolveReference(target)

		q := target.Query()
		form.Find("input[name]").Each(func(_ int, in *goquery.Selection) {
			name, _ := in.Attr("name")
			value, _ := in.Attr("value")
			q.Set(name, value)
		})
		target.RawQuery = q.Encode()
		return target.String(), nil
	}

	for _, sel := range confirmSelectors {
		href, ok := doc.Find(sel).First().Attr("href")
		if !ok || href == "" {
			continue
		}
		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		return base.ResolveReference(ref).String(), nil
	}
	return "", nil
}
