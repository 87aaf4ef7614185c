package render

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/gaurav-prasanna/sheetfolio/core/embed"
)

// Export is the structured form of a snapshot shared by the JSON and YAML
// renderers.
type Export struct {
	Profile    Profile       `json:"profile" yaml:"profile"`
	Categories []string      `json:"categories" yaml:"categories"`
	Works      []ExportWork  `json:"works" yaml:"works"`
	Resume     core.Resume   `json:"resume" yaml:"resume"`
	Contact    ExportContact `json:"contact" yaml:"contact"`
	Document   Outline       `json:"document" yaml:"document"`
}

// Profile is the site header.
type Profile struct {
	Name        string `json:"name" yaml:"name"`
	Title       string `json:"title" yaml:"title"`
	Subtitle    string `json:"subtitle" yaml:"subtitle"`
	ReelURL     string `json:"reel_url,omitempty" yaml:"reel_url,omitempty"`
	LogoURL     string `json:"logo_url,omitempty" yaml:"logo_url,omitempty"`
	ResumeLink  string `json:"resume_link,omitempty" yaml:"resume_link,omitempty"`
	AccentColor string `json:"accent_color,omitempty" yaml:"accent_color,omitempty"`
}

// ExportWork is a catalog entry with its resolved player and card image.
type ExportWork struct {
	Title            string   `json:"title" yaml:"title"`
	URL              string   `json:"url" yaml:"url"`
	Status           string   `json:"status,omitempty" yaml:"status,omitempty"`
	Categories       []string `json:"categories" yaml:"categories"`
	Tags             []string `json:"tags" yaml:"tags"`
	EmbedKind        string   `json:"embed_kind" yaml:"embed_kind"`
	EmbedSrc         string   `json:"embed_src" yaml:"embed_src"`
	Thumbnail        string   `json:"thumbnail" yaml:"thumbnail"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
	DescriptionIsPDF bool     `json:"description_is_pdf" yaml:"description_is_pdf"`
	Gallery          []string `json:"gallery,omitempty" yaml:"gallery,omitempty"`
}

// ExportContact lists contact links with their resolved targets.
type ExportContact struct {
	Blurb string        `json:"blurb,omitempty" yaml:"blurb,omitempty"`
	Links []ContactLink `json:"links" yaml:"links"`
}

// ContactLink is one contact entry as it is displayed.
type ContactLink struct {
	Kind    string `json:"kind" yaml:"kind"`
	Label   string `json:"label" yaml:"label"`
	Href    string `json:"href" yaml:"href"`
	IconURL string `json:"icon_url,omitempty" yaml:"icon_url,omitempty"`
}

// Outline carries the Markdown export with its sections and links.
type Outline struct {
	Markdown string    `json:"markdown" yaml:"markdown"`
	Sections []Section `json:"sections" yaml:"sections"`
	Links    []Link    `json:"links" yaml:"links"`
}

// Heading is a Markdown heading.
type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Section is the text under one heading.
type Section struct {
	Heading string `json:"heading" yaml:"heading"`
	Level   int    `json:"level" yaml:"level"`
	Text    string `json:"text" yaml:"text"`
}

// Link is a Markdown link.
type Link struct {
	Text string `json:"text" yaml:"text"`
	Href string `json:"href" yaml:"href"`
}

// BuildExport assembles the structured export from a snapshot and its Markdown.
func BuildExport(markdown string, snap core.Snapshot) Export {
	works := make([]ExportWork, 0, len(snap.Works))
	for _, w := range snap.Works {
		ew := ExportWork{
			Title:            w.Title,
			URL:              w.URL,
			Status:           w.Status,
			Categories:       w.Categories,
			Tags:             w.Tags,
			Thumbnail:        embed.Thumbnail(w),
			Description:      w.Description,
			DescriptionIsPDF: w.DescriptionIsPDF,
			Gallery:          w.Gallery,
		}
		if w.Embed != nil {
			ew.EmbedKind, ew.EmbedSrc = w.Embed.Kind(), w.Embed.Src()
		}
		works = append(works, ew)
	}

	links := make([]ContactLink, 0, len(snap.Contact.Entries))
	for _, c := range snap.Contact.Entries {
		links = append(links, ContactLink{Kind: c.Kind, Label: c.Label(), Href: c.Href(), IconURL: c.IconURL})
	}

	return Export{
		Profile: Profile{
			Name:        snap.Settings[core.SettingName],
			Title:       snap.Settings[core.SettingTitle],
			Subtitle:    snap.Settings[core.SettingSubtitle],
			ReelURL:     snap.Settings[core.SettingReelURL],
			LogoURL:     snap.Settings[core.SettingLogoURL],
			ResumeLink:  snap.ResumeLink(),
			AccentColor: snap.Settings[core.SettingAccentColor],
		},
		Categories: snap.Categories,
		Works:      works,
		Resume:     snap.Resume,
		Contact:    ExportContact{Blurb: snap.ContactBlurb(), Links: links},
		Document: Outline{
			Markdown: markdown,
			Sections: buildSections(markdown, extractHeadings(markdown)),
			Links:    extractLinks(markdown),
		},
	}
}

// --- Markdown outline helpers ---

var headingRegex = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

func extractHeadings(md string) []Heading {
	matches := headingRegex.FindAllStringSubmatch(md, -1)
	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

// linkRegex matches Markdown links [text](url).
var linkRegex = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

func extractLinks(md string) []Link {
	matches := linkRegex.FindAllStringSubmatch(md, -1)
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{Text: m[1], Href: m[2]})
	}
	return links
}

func buildSections(md string, headings []Heading) []Section {
	if len(headings) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(headings))
	headingIdx := 0

	var current *Section
	var lines []string
	flush := func() {
		if current != nil {
			current.Text = strings.TrimSpace(strings.Join(lines, "\n"))
			sections = append(sections, *current)
		}
	}

	for _, line := range strings.Split(md, "\n") {
		if headingRegex.MatchString(line) && headingIdx < len(headings) {
			flush()
			current = &Section{
				Heading: headings[headingIdx].Text,
				Level:   headings[headingIdx].Level,
			}
			lines = nil
			headingIdx++
		} else if current != nil {
			lines = append(lines, line)
		}
	}
	flush()
	return sections
}
