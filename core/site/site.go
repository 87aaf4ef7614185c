// Package site owns the portfolio's loaded content: settings, résumé,
// contact details and the works catalog. Each slot is replaced wholesale
// by a successful load and left untouched by a failed one.
package site

import (
	"context"
	"errors"
	"sync"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/gaurav-prasanna/sheetfolio/core/category"
	"github.com/gaurav-prasanna/sheetfolio/core/transform"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// URLs names the export location of each source.
type URLs struct {
	Works    string
	Settings string
	Resume   string
	Contact  string
}

// Works is the catalog filtered by one category.
type Works struct {
	Categories []string        `json:"categories"`
	Active     string          `json:"active"`
	Items      []core.WorkItem `json:"items"`
}

// Site is the application state shared by the CLI and the HTTP API.
type Site struct {
	sources core.SourceFetcher
	urls    URLs
	logger  *zap.Logger

	mu       sync.RWMutex
	settings core.Settings
	resume   core.Resume
	contact  core.Contact
	works    []core.WorkItem
}

// New creates a Site holding the default settings and no other content.
func New(sources core.SourceFetcher, urls URLs, logger *zap.Logger) *Site {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Site{
		sources:  sources,
		urls:     urls,
		logger:   logger,
		settings: core.DefaultSettings(),
	}
}

// LoadAll loads settings, résumé and contact, in that order. The catalog
// is loaded separately when the works view is opened.
func (s *Site) LoadAll(ctx context.Context) {
	s.LoadSettings(ctx)
	s.LoadResume(ctx)
	s.LoadContact(ctx)
}

// Refresh loads every source, the catalog alongside the others. Sources
// use independent keys, so the two branches never supersede each other.
func (s *Site) Refresh(ctx context.Context) {
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.LoadAll(gCtx)
		return nil
	})
	g.Go(func() error {
		s.LoadCatalog(gCtx)
		return nil
	})
	_ = g.Wait()
}

// LoadSettings overlays the settings export on the defaults.
func (s *Site) LoadSettings(ctx context.Context) bool {
	rows, ok := s.fetch(ctx, s.urls.Settings, core.SourceSettings)
	if !ok {
		return false
	}
	settings := transform.Settings(rows, core.DefaultSettings())

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return true
}

// LoadResume replaces the résumé.
func (s *Site) LoadResume(ctx context.Context) bool {
	rows, ok := s.fetch(ctx, s.urls.Resume, core.SourceResume)
	if !ok {
		return false
	}
	resume := transform.Resume(rows)

	s.mu.Lock()
	s.resume = resume
	s.mu.Unlock()
	return true
}

// LoadContact replaces the contact details.
func (s *Site) LoadContact(ctx context.Context) bool {
	rows, ok := s.fetch(ctx, s.urls.Contact, core.SourceContact)
	if !ok {
		return false
	}
	contact := transform.Contact(rows)

	s.mu.Lock()
	s.contact = contact
	s.mu.Unlock()
	return true
}

// LoadCatalog replaces the works catalog.
func (s *Site) LoadCatalog(ctx context.Context) bool {
	rows, ok := s.fetch(ctx, s.urls.Works, core.SourceCatalog)
	if !ok {
		return false
	}
	works := transform.Catalog(rows)

	s.mu.Lock()
	s.works = works
	s.mu.Unlock()
	return true
}

// fetch runs one source request. Failures are logged and reported as !ok
// so the caller keeps its previous value.
func (s *Site) fetch(ctx context.Context, url string, key core.SourceKey) ([]core.Row, bool) {
	rows, err := s.sources.FetchSource(ctx, url, key)
	switch {
	case err == nil:
		s.logger.Debug("Loaded source", zap.String("source", string(key)), zap.Int("rows", len(rows)))
		return rows, true
	case errors.Is(err, core.ErrStaleResponse):
		s.logger.Debug("Discarded stale response", zap.String("source", string(key)))
	default:
		s.logger.Warn("Source load failed", zap.String("source", string(key)), zap.Error(err))
	}
	return nil, false
}

// Snapshot returns a copy of the current state.
func (s *Site) Snapshot() core.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	works := append([]core.WorkItem(nil), s.works...)
	return core.Snapshot{
		Settings:   s.settings.Clone(),
		Resume:     s.resume,
		Contact:    s.contact,
		Works:      works,
		Categories: category.Present(works),
	}
}

// Works returns the catalog filtered by the category named by filter.
// Matching is case-insensitive; an empty or unknown filter selects ALL.
// The filter belongs to the caller and is not stored.
func (s *Site) Works(filter string) Works {
	s.mu.RLock()
	defer s.mu.RUnlock()
	present := category.Present(s.works)
	active := category.Resolve(filter, present)
	return Works{
		Categories: present,
		Active:     active,
		Items:      append([]core.WorkItem(nil), category.Filter(s.works, active)...),
	}
}

// Item returns the entry at index within the view Works(filter) returns.
func (s *Site) Item(filter string, index int) (core.WorkItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	active := category.Resolve(filter, category.Present(s.works))
	items := category.Filter(s.works, active)
	if index < 0 || index >= len(items) {
		return core.WorkItem{}, false
	}
	return items[index], true
}

// ResumeLink returns the résumé sheet's link, falling back to the ResumePDF setting.
func (s *Site) ResumeLink() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return core.Snapshot{Settings: s.settings, Resume: s.resume}.ResumeLink()
}

// ContactBlurb returns the contact sheet's blurb, falling back to the ContactBlurb setting.
func (s *Site) ContactBlurb() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return core.Snapshot{Settings: s.settings, Contact: s.contact}.ContactBlurb()
}

// ReelLink returns the showreel URL, or core.ErrReelUnset when none is configured.
func (s *Site) ReelLink() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if reel := s.settings[core.SettingReelURL]; reel != "" {
		return reel, nil
	}
	return "", core.ErrReelUnset
}
