// Package pdflink recognises description fields that point at a PDF and
// rewrites known hosting-service links into download and preview forms.
package pdflink

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/sheetfolio/core"
)

var (
	httpScheme   = regexp.MustCompile(`(?i)^https?://`)
	pdfSuffix    = regexp.MustCompile(`(?i)\.pdf(\?|#|$)`)
	driveShare   = regexp.MustCompile(`(?i)drive\.google\.com/(file/d/|open\?id=)`)
	dropboxShare = regexp.MustCompile(`(?i)dropbox\.com/s/`)
	driveFileID  = regexp.MustCompile(`/file/d/([^/]+)`)
)

const docsViewer = "https://docs.google.com/gview?embedded=1&url="

// IsProbablyPDFLink reports whether text is an http(s) link that ends in
// .pdf or matches a Drive or Dropbox file-sharing shape.
func IsProbablyPDFLink(text string) bool {
	s := strings.TrimSpace(text)
	if !httpScheme.MatchString(s) {
		return false
	}
	return pdfSuffix.MatchString(s) || driveShare.MatchString(s) || dropboxShare.MatchString(s)
}

// Normalize returns the direct-download and human-viewable forms of a PDF link.
// Unrecognised or malformed input is returned unchanged in both fields.
func Normalize(raw string) core.PDFLinkInfo {
	unchanged := core.PDFLinkInfo{DirectURL: raw, ViewURL: raw}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return unchanged
	}
	host := strings.ToLower(u.Hostname())

	if strings.Contains(host, "drive.google.com") {
		if id := driveID(u); id != "" {
			return core.PDFLinkInfo{
				DirectURL: "https://drive.google.com/uc?export=download&id=" + id,
				ViewURL:   "https://drive.google.com/file/d/" + id + "/preview",
			}
		}
	}

	if strings.Contains(host, "dropbox.com") {
		q := u.Query()
		q.Set("dl", "1")
		u.RawQuery = q.Encode()
		return core.PDFLinkInfo{
			DirectURL: u.String(),
			ViewURL:   "https://www.dropbox.com/preview" + u.EscapedPath(),
		}
	}

	if pdfSuffix.MatchString(u.Path) {
		return core.PDFLinkInfo{DirectURL: u.String(), ViewURL: u.String()}
	}
	return unchanged
}

// IsDrive reports whether a normalized link is served by Google Drive.
func IsDrive(info core.PDFLinkInfo) bool {
	return strings.Contains(info.ViewURL, "drive.google.com")
}

// ViewerURL returns the URL of an embeddable viewer for the document:
// Drive's own preview for Drive links, otherwise the Google Docs viewer
// wrapping the direct URL.
func ViewerURL(info core.PDFLinkInfo) string {
	if IsDrive(info) {
		return info.ViewURL
	}
	return docsViewer + url.QueryEscape(info.DirectURL)
}

func driveID(u *url.URL) string {
	if m := driveFileID.FindStringSubmatch(u.Path); m != nil {
		return m[1]
	}
	return u.Query().Get("id")
}
