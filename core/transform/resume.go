package transform

import (
	"html"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/sheetfolio/core"
)

var (
	listSeparator = regexp.MustCompile(`\s*[,|;]\s*`)
	newline       = regexp.MustCompile(`\r?\n`)
)

// Resume builds the résumé from rows with Section, Title and Details columns.
// Section names are matched case-insensitively; unknown sections are ignored.
func Resume(rows []core.Row) core.Resume {
	var (
		res     core.Resume
		summary []string
	)
	for _, row := range rows {
		section := strings.ToLower(Pick(row, "Section"))
		title := Pick(row, "Title")
		details := Pick(row, "Details")

		switch section {
		case "summary":
			if details != "" {
				summary = append(summary, details)
			}
		case "experience":
			if title != "" || details != "" {
				res.Experience = append(res.Experience, core.ResumeEntry{
					Title:       title,
					DetailsHTML: DetailsHTML(details),
				})
			}
		case "education":
			if title != "" || details != "" {
				res.Education = append(res.Education, core.ResumeEntry{Title: title, Details: details})
			}
		case "skills":
			res.Skills = append(res.Skills, splitList(details, listSeparator)...)
		case "tools":
			res.Tools = append(res.Tools, splitList(details, listSeparator)...)
		case "certifications", "certification":
			if details != "" {
				res.Certs = append(res.Certs, details)
			}
		case "resumelink":
			if details != "" {
				res.ResumeLink = details
			}
		}
	}
	res.Summary = strings.Join(summary, " ")
	return res
}

// DetailsHTML escapes text for safe display and turns line breaks into <br>.
func DetailsHTML(text string) string {
	return newline.ReplaceAllString(html.EscapeString(text), "<br>")
}
