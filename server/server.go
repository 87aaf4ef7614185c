// Package server exposes the portfolio state as a JSON API.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/gaurav-prasanna/sheetfolio/core/embed"
	"github.com/gaurav-prasanna/sheetfolio/core/popup"
	"github.com/gaurav-prasanna/sheetfolio/core/site"
	"go.uber.org/zap"
)

// Server serves the site's content.
type Server struct {
	site      *site.Site
	extractor core.TextExtractor
	logger    *zap.Logger
}

// New creates a Server over s. The extractor resolves PDF descriptions for popups.
func New(s *site.Site, extractor core.TextExtractor, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{site: s, extractor: extractor, logger: logger}
}

// Handler returns the routed, logged HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/settings", s.handleSettings)
	mux.HandleFunc("GET /api/resume", s.handleResume)
	mux.HandleFunc("GET /api/contact", s.handleContact)
	mux.HandleFunc("GET /api/works", s.handleWorks)
	mux.HandleFunc("GET /api/works/{index}/popup", s.handlePopup)
	return s.logRequests(mux)
}

type settingsResponse struct {
	Settings   core.Settings `json:"settings"`
	ReelURL    string        `json:"reel_url,omitempty"`
	ReelNotice string        `json:"reel_notice,omitempty"`
	ResumeLink string        `json:"resume_link,omitempty"`
}

type contactLink struct {
	Kind    string `json:"kind"`
	Label   string `json:"label"`
	Href    string `json:"href"`
	IconURL string `json:"icon_url,omitempty"`
}

type contactResponse struct {
	Blurb string        `json:"blurb,omitempty"`
	Links []contactLink `json:"links"`
}

type workCard struct {
	Index      int      `json:"index"`
	Title      string   `json:"title"`
	Status     string   `json:"status,omitempty"`
	Categories []string `json:"categories"`
	Thumbnail  string   `json:"thumbnail"`
	EmbedKind  string   `json:"embed_kind"`
}

type worksResponse struct {
	Categories []string   `json:"categories"`
	Active     string     `json:"active"`
	Items      []workCard `json:"items"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSettings(w http.ResponseWriter, _ *http.Request) {
	resp := settingsResponse{
		Settings:   s.site.Snapshot().Settings,
		ResumeLink: s.site.ResumeLink(),
	}
	reel, err := s.site.ReelLink()
	if errors.Is(err, core.ErrReelUnset) {
		resp.ReelNotice = core.ReelUnsetNotice
	}
	resp.ReelURL = reel
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResume(w http.ResponseWriter, _ *http.Request) {
	resume := s.site.Snapshot().Resume
	resume.ResumeLink = s.site.ResumeLink()
	writeJSON(w, http.StatusOK, resume)
}

func (s *Server) handleContact(w http.ResponseWriter, _ *http.Request) {
	snap := s.site.Snapshot()
	resp := contactResponse{Blurb: snap.ContactBlurb(), Links: make([]contactLink, 0, len(snap.Contact.Entries))}
	for _, c := range snap.Contact.Entries {
		resp.Links = append(resp.Links, contactLink{Kind: c.Kind, Label: c.Label(), Href: c.Href(), IconURL: c.IconURL})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleWorks reloads the catalog, as opening the works view does, then
// applies the request's filter. Card indexes address the filtered view.
func (s *Server) handleWorks(w http.ResponseWriter, r *http.Request) {
	s.site.LoadCatalog(r.Context())

	works := s.site.Works(r.URL.Query().Get("filter"))
	resp := worksResponse{Categories: works.Categories, Active: works.Active, Items: make([]workCard, 0, len(works.Items))}
	for i, item := range works.Items {
		card := workCard{
			Index:      i,
			Title:      item.Title,
			Status:     item.Status,
			Categories: item.Categories,
			Thumbnail:  embed.Thumbnail(item),
		}
		if item.Embed != nil {
			card.EmbedKind = item.Embed.Kind()
		}
		resp.Items = append(resp.Items, card)
	}
	writeJSON(w, http.StatusOK, resp)
}

// handlePopup takes the same filter query as handleWorks so that index
// refers to the card the client is showing.
func (s *Server) handlePopup(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "index must be an integer"})
		return
	}
	item, ok := s.site.Item(r.URL.Query().Get("filter"), index)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no work at index " + strconv.Itoa(index)})
		return
	}
	writeJSON(w, http.StatusOK, popup.Render(r.Context(), s.extractor, item, s.logger))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
