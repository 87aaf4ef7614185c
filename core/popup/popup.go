// Package popup drives the work-detail modal: the player comes up first,
// then the description is shown as plain text, as text extracted from a
// linked PDF, or as a fallback viewer when extraction fails.
package popup

import (
	"context"
	"errors"
	"fmt"
	"html"
	"regexp"
	"sync"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/gaurav-prasanna/sheetfolio/core/pdflink"
	"go.uber.org/zap"
)

// State is the modal's position in its lifecycle.
type State int

const (
	Closed State = iota
	Loading
	ShowingExtractedText
	ShowingFallbackViewer
	ShowingPlainDescription
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Loading:
		return "loading"
	case ShowingExtractedText:
		return "extracted_text"
	case ShowingFallbackViewer:
		return "fallback_viewer"
	case ShowingPlainDescription:
		return "plain_description"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MarshalText lets State appear by name in JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

const (
	loadingNotice  = "Loading description from PDF…"
	failureNotice  = "Could not load description text from PDF (blocked by host)."
	noDescription  = "No description available."
	playerAllow    = "autoplay; encrypted-media; picture-in-picture"
	playerTagFrame = "iframe"
	playerTagVideo = "video"
)

// ErrDismissed is returned by Modal.Open when the modal was closed or
// reopened before the description finished loading.
var ErrDismissed = errors.New("popup dismissed before description loaded")

// Player describes the media element at the top of the modal.
type Player struct {
	Tag      string `json:"tag"`
	Src      string `json:"src"`
	Allow    string `json:"allow,omitempty"`
	Autoplay bool   `json:"autoplay"`
}

// View is everything the rendering layer needs to draw the modal.
type View struct {
	State           State  `json:"state"`
	Title           string `json:"title"`
	Player          Player `json:"player"`
	DescriptionHTML string `json:"description_html"`
	DirectURL       string `json:"direct_url,omitempty"`
	ViewerURL       string `json:"viewer_url,omitempty"`
}

// PlayerFor maps an embed to its media element: frames for hosted
// players and pages, an inline video element for files.
func PlayerFor(e core.Embed) Player {
	if e == nil {
		return Player{}
	}
	if e.Kind() == "file" {
		return Player{Tag: playerTagVideo, Src: e.Src(), Autoplay: true}
	}
	return Player{Tag: playerTagFrame, Src: e.Src(), Allow: playerAllow, Autoplay: true}
}

// LoadingView returns the view shown while the description is resolved.
func LoadingView(item core.WorkItem) View {
	v := View{State: Loading, Title: item.Title, Player: PlayerFor(item.Embed)}
	if item.DescriptionIsPDF {
		v.DescriptionHTML = html.EscapeString(loadingNotice)
	}
	return v
}

// Render resolves the final view for item. Extraction failures never fail
// the popup; they select the fallback viewer instead.
func Render(ctx context.Context, extractor core.TextExtractor, item core.WorkItem, logger *zap.Logger) View {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := LoadingView(item)

	if !item.DescriptionIsPDF {
		v.State = ShowingPlainDescription
		v.DescriptionHTML = textHTML(item.Description)
		if item.Description == "" {
			v.DescriptionHTML = html.EscapeString(noDescription)
		}
		return v
	}

	text, err := extractor.Extract(ctx, item.Description)
	if err == nil {
		v.State = ShowingExtractedText
		v.DescriptionHTML = textHTML(text)
		return v
	}

	logger.Warn("PDF extraction failed",
		zap.String("title", item.Title),
		zap.String("url", item.Description),
		zap.Error(err))

	info := pdflink.Normalize(item.Description)
	v.State = ShowingFallbackViewer
	v.DirectURL = info.DirectURL
	v.ViewerURL = pdflink.ViewerURL(info)
	v.DescriptionHTML = fmt.Sprintf(`%s<br><a href="%s" target="_blank" rel="noopener">Open full PDF</a>`,
		html.EscapeString(failureNotice), html.EscapeString(info.DirectURL))
	return v
}

var lineBreak = regexp.MustCompile(`\r?\n`)

// textHTML escapes text for display and keeps its line breaks.
func textHTML(s string) string {
	return lineBreak.ReplaceAllString(html.EscapeString(s), "<br>")
}

// Modal holds the state of one popup surface. Opening an item supersedes
// whatever the modal was showing; closing discards any pending result.
type Modal struct {
	extractor core.TextExtractor
	logger    *zap.Logger

	mu         sync.Mutex
	generation uint64
	view       View
}

// NewModal creates a closed modal.
func NewModal(extractor core.TextExtractor, logger *zap.Logger) *Modal {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Modal{extractor: extractor, logger: logger}
}

// Open shows item and blocks until its description is resolved. Each open
// re-attempts extraction; nothing is cached between opens.
func (m *Modal) Open(ctx context.Context, item core.WorkItem) (View, error) {
	m.mu.Lock()
	m.generation++
	gen := m.generation
	m.view = LoadingView(item)
	m.mu.Unlock()

	v := Render(ctx, m.extractor, item, m.logger)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != gen {
		m.logger.Debug("Discarding description for dismissed popup", zap.String("title", item.Title))
		return View{}, ErrDismissed
	}
	m.view = v
	return v, nil
}

// Close tears the modal down. A description still loading is discarded.
func (m *Modal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	m.view = View{State: Closed}
}

// Current returns what the modal is showing right now.
func (m *Modal) Current() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view
}
