// Package render turns a portfolio snapshot into export formats. The HTML
// document built here is normalized to Markdown, which every renderer
// receives alongside the snapshot itself.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/gaurav-prasanna/sheetfolio/core/pdflink"
)

var documentTemplate = template.Must(template.New("document").Funcs(template.FuncMap{
	"href":      href,
	"trusted":   func(s string) template.HTML { return template.HTML(s) },
	"join":      strings.Join,
	"pdfDirect": func(s string) string { return pdflink.Normalize(s).DirectURL },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Name}}</title></head>
<body>
<h1>{{.Name}}</h1>
{{with .Title}}<p><strong>{{.}}</strong></p>{{end}}
{{with .Subtitle}}<p>{{.}}</p>{{end}}
{{with .Reel}}<p><a href="{{.}}">Showreel</a></p>{{end}}

<h2>Works</h2>
{{range .Works}}
<h3>{{.Title}}</h3>
{{with .Categories}}<p><em>{{join . " · "}}</em></p>{{end}}
<p><a href="{{.URL}}">Watch</a></p>
{{if .DescriptionIsPDF}}<p><a href="{{pdfDirect .Description}}">Description (PDF)</a></p>{{else if .Description}}<p>{{.Description}}</p>{{end}}
{{else}}
<p>No works published yet.</p>
{{end}}

<h2>Résumé</h2>
{{with .Resume.Summary}}<p>{{.}}</p>{{end}}
{{with .Resume.Experience}}<h3>Experience</h3>
<ul>{{range .}}<li><strong>{{.Title}}</strong>{{with .DetailsHTML}}<br>{{trusted .}}{{end}}</li>{{end}}</ul>{{end}}
{{with .Resume.Education}}<h3>Education</h3>
<ul>{{range .}}<li><strong>{{.Title}}</strong>{{with .Details}} {{.}}{{end}}</li>{{end}}</ul>{{end}}
{{with .Resume.Skills}}<h3>Skills</h3><p>{{join . ", "}}</p>{{end}}
{{with .Resume.Tools}}<h3>Tools</h3><p>{{join . ", "}}</p>{{end}}
{{with .Resume.Certs}}<h3>Certifications</h3>
<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{with .ResumeLink}}<p><a href="{{.}}">Download résumé</a></p>{{end}}

<h2>Contact</h2>
{{with .Blurb}}<p>{{.}}</p>{{end}}
<ul>{{range .Contact}}<li><a href="{{href .Href}}">{{.Label}}</a></li>{{end}}</ul>
</body>
</html>
`))

type documentData struct {
	Name, Title, Subtitle string
	Reel                  string
	Works                 []core.WorkItem
	Resume                core.Resume
	ResumeLink            string
	Blurb                 string
	Contact               []core.ContactEntry
}

// Document renders the snapshot as a standalone HTML page.
func Document(snap core.Snapshot) (string, error) {
	data := documentData{
		Name:       snap.Settings[core.SettingName],
		Title:      snap.Settings[core.SettingTitle],
		Subtitle:   snap.Settings[core.SettingSubtitle],
		Reel:       snap.Settings[core.SettingReelURL],
		Works:      snap.Works,
		Resume:     snap.Resume,
		ResumeLink: snap.ResumeLink(),
		Blurb:      snap.ContactBlurb(),
		Contact:    snap.Contact.Entries,
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing document template: %w", err)
	}
	return buf.String(), nil
}

// href lets tel: links through; html/template only trusts http, https and mailto.
func href(s string) any {
	if strings.HasPrefix(s, "tel:") {
		return template.URL(s)
	}
	return s
}
