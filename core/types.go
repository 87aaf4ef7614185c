package core

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Row is one decoded record from a delimited-text export, keyed by column name.
type Row map[string]string

// SourceKey names one of the remote data sources and scopes staleness tracking.
type SourceKey string

const (
	SourceCatalog  SourceKey = "works"
	SourceSettings SourceKey = "settings"
	SourceResume   SourceKey = "resume"
	SourceContact  SourceKey = "contact"
)

// Embed describes how to play or display the media linked by a work item.
// Implementations: YouTubeEmbed, VimeoEmbed, FileEmbed, IframeEmbed.
type Embed interface {
	// Kind returns "youtube", "vimeo", "file" or "iframe".
	Kind() string
	// Src returns the URL a player or frame should load.
	Src() string
}

// YouTubeEmbed plays a YouTube video in a frame.
type YouTubeEmbed struct {
	ID string
}

func (e YouTubeEmbed) Kind() string { return "youtube" }

func (e YouTubeEmbed) Src() string {
	return "https://www.youtube.com/embed/" + e.ID + "?rel=0&modestbranding=1&autoplay=1"
}

// VimeoEmbed plays a Vimeo video in a frame.
type VimeoEmbed struct {
	ID string
}

func (e VimeoEmbed) Kind() string { return "vimeo" }

func (e VimeoEmbed) Src() string {
	return "https://player.vimeo.com/video/" + e.ID + "?autoplay=1"
}

// FileEmbed plays a direct media file in an inline player.
type FileEmbed struct {
	URL string
}

func (e FileEmbed) Kind() string { return "file" }
func (e FileEmbed) Src() string  { return e.URL }

// IframeEmbed frames an arbitrary page.
type IframeEmbed struct {
	URL string
}

func (e IframeEmbed) Kind() string { return "iframe" }
func (e IframeEmbed) Src() string  { return e.URL }

// WorkItem is one entry of the works catalog.
type WorkItem struct {
	Title            string   `json:"title"`
	URL              string   `json:"url"`
	Status           string   `json:"status"`
	Tags             []string `json:"tags"`
	Thumbnail        string   `json:"thumbnail"`
	Categories       []string `json:"categories"`
	Embed            Embed    `json:"-"`
	Description      string   `json:"description"`
	DescriptionIsPDF bool     `json:"description_is_pdf"`
	Gallery          []string `json:"gallery"`
}

// HasCategory reports whether the item carries the given category label.
func (w WorkItem) HasCategory(cat string) bool {
	for _, c := range w.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Recognised settings keys.
const (
	SettingName         = "Name"
	SettingTitle        = "Title"
	SettingSubtitle     = "Subtitle"
	SettingReelURL      = "ReelURL"
	SettingLogoURL      = "LogoURL"
	SettingResumePDF    = "ResumePDF"
	SettingAccentColor  = "AccentColor"
	SettingContactBlurb = "ContactBlurb"
)

// SettingKeys lists the keys a Settings map may hold, in display order.
var SettingKeys = []string{
	SettingName, SettingTitle, SettingSubtitle, SettingReelURL,
	SettingLogoURL, SettingResumePDF, SettingAccentColor, SettingContactBlurb,
}

// Settings maps recognised site keys to values.
type Settings map[string]string

// DefaultSettings returns the hardcoded fallback values used before (or
// instead of) a successful settings fetch.
func DefaultSettings() Settings {
	return Settings{
		SettingName:         "Varun Kumar Korikana",
		SettingTitle:        "FX Artist / CG Generalist",
		SettingSubtitle:     "Houdini FX • Procedural Tools • Fluid / Pyro • Comp & Lookdev • Maya • Nuke • Unreal",
		SettingReelURL:      "",
		SettingLogoURL:      "",
		SettingResumePDF:    "",
		SettingAccentColor:  "",
		SettingContactBlurb: "",
	}
}

// IsSettingKey reports whether key is one of the recognised settings keys.
func IsSettingKey(key string) bool {
	for _, k := range SettingKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the settings.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// ResumeEntry is one experience or education line.
type ResumeEntry struct {
	Title       string `json:"title" yaml:"title"`
	Details     string `json:"details,omitempty" yaml:"details,omitempty"`
	DetailsHTML string `json:"details_html,omitempty" yaml:"details_html,omitempty"`
}

// Resume holds the résumé sections.
type Resume struct {
	Summary    string        `json:"summary" yaml:"summary"`
	Experience []ResumeEntry `json:"experience" yaml:"experience"`
	Education  []ResumeEntry `json:"education" yaml:"education"`
	Skills     []string      `json:"skills" yaml:"skills"`
	Tools      []string      `json:"tools" yaml:"tools"`
	Certs      []string      `json:"certs" yaml:"certs"`
	ResumeLink string        `json:"resume_link" yaml:"resume_link"`
}

// ContactEntry is one way to reach the portfolio owner.
type ContactEntry struct {
	Kind    string `json:"kind"`
	Value   string `json:"value"`
	IconURL string `json:"icon_url"`
}

var nonDialable = regexp.MustCompile(`[^\d+]`)

// Href returns the link target for the entry.
func (c ContactEntry) Href() string {
	switch c.Kind {
	case "email":
		return "mailto:" + c.Value
	case "phone", "mobile", "whatsapp":
		return "tel:" + nonDialable.ReplaceAllString(c.Value, "")
	default:
		return c.Value
	}
}

// Label returns the visible link text for the entry.
func (c ContactEntry) Label() string {
	switch c.Kind {
	case "email", "phone", "mobile", "whatsapp":
		return c.Value
	}
	if label := Titleize(c.Kind); label != "" {
		return label
	}
	return "Link"
}

// Contact holds the contact entries and the standalone blurb.
type Contact struct {
	Entries []ContactEntry `json:"entries"`
	Blurb   string         `json:"blurb"`
}

// PDFLinkInfo pairs the machine-retrievable and human-viewable forms of a PDF link.
type PDFLinkInfo struct {
	DirectURL string `json:"direct_url"`
	ViewURL   string `json:"view_url"`
}

// Snapshot is a consistent, read-only copy of the current site state.
type Snapshot struct {
	Settings   Settings
	Resume     Resume
	Contact    Contact
	Works      []WorkItem
	Categories []string
}

// ResumeLink returns the résumé sheet's link, falling back to the ResumePDF setting.
func (s Snapshot) ResumeLink() string {
	if s.Resume.ResumeLink != "" {
		return s.Resume.ResumeLink
	}
	return s.Settings[SettingResumePDF]
}

// ContactBlurb returns the contact sheet's blurb, falling back to the ContactBlurb setting.
func (s Snapshot) ContactBlurb() string {
	if s.Contact.Blurb != "" {
		return s.Contact.Blurb
	}
	return s.Settings[SettingContactBlurb]
}

// Titleize collapses whitespace runs and capitalises the first letter of
// each word, lower-casing the rest.
func Titleize(s string) string {
	// Casers carry state, so one is built per call.
	return cases.Title(language.Und).String(strings.ToLower(strings.Join(strings.Fields(s), " ")))
}
