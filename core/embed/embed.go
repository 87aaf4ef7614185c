// Package embed classifies a work's media link into a player descriptor
// and picks the card thumbnail for it.
package embed

import (
	"fmt"
	"html"
	"net/url"
	"path"
	"strings"

	"github.com/gaurav-prasanna/sheetfolio/core"
)

// mediaExtensions are file extensions played by an inline video player.
var mediaExtensions = map[string]bool{
	".mp4": true, ".webm": true, ".mov": true,
}

// Build returns the embed descriptor for a work URL.
// Anything that is not a recognised video host or media file is framed as-is.
func Build(rawURL string) core.Embed {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return core.IframeEmbed{URL: rawURL}
	}
	host := strings.ToLower(u.Host)

	switch {
	case strings.Contains(host, "youtube.com") || strings.Contains(host, "youtu.be"):
		id := u.Query().Get("v")
		if id == "" && strings.Contains(host, "youtu.be") {
			id = strings.TrimPrefix(u.Path, "/")
		}
		return core.YouTubeEmbed{ID: id}
	case strings.Contains(host, "vimeo.com"):
		return core.VimeoEmbed{ID: lastSegment(u.Path)}
	case IsMediaFile(u.Path):
		return core.FileEmbed{URL: rawURL}
	default:
		return core.IframeEmbed{URL: rawURL}
	}
}

// IsMediaFile checks if a URL path points to a directly playable video file.
func IsMediaFile(p string) bool {
	return mediaExtensions[strings.ToLower(path.Ext(p))]
}

func lastSegment(p string) string {
	parts := strings.Split(p, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}

// Thumbnail returns the card image for a work item: the explicit thumbnail,
// else the video host's poster, else a placeholder image carrying the title.
func Thumbnail(item core.WorkItem) string {
	if item.Thumbnail != "" {
		return item.Thumbnail
	}
	switch e := item.Embed.(type) {
	case core.YouTubeEmbed:
		if e.ID != "" {
			return "https://i.ytimg.com/vi/" + e.ID + "/hqdefault.jpg"
		}
	case core.VimeoEmbed:
		if e.ID != "" {
			return "https://vumbnail.com/" + e.ID + ".jpg"
		}
	}
	return Placeholder(item.Title)
}

// Placeholder renders a 640x360 SVG data URI with the title centred on it.
func Placeholder(title string) string {
	svg := fmt.Sprintf(
		`<svg xmlns='http://www.w3.org/2000/svg' width='640' height='360'>`+
			`<rect width='100%%' height='100%%' fill='#0e131f'/>`+
			`<text x='50%%' y='50%%' dominant-baseline='middle' text-anchor='middle' fill='#8a93a7' font-family='Oxanium' font-size='20'>%s</text></svg>`,
		html.EscapeString(title))
	return "data:image/svg+xml;charset=utf-8," + url.PathEscape(svg)
}
