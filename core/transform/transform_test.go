package transform

import (
	"testing"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/gaurav-prasanna/sheetfolio/core/category"
	"github.com/gaurav-prasanna/sheetfolio/core/decode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPick_FirstNonEmptyCandidate(t *testing.T) {
	row := core.Row{"Title": "", "NAME": " Pyro Study ", "Project": "ignored"}
	assert.Equal(t, "Pyro Study", Pick(row, catalogTitle...))
	assert.Equal(t, "", Pick(row, "Missing", "AlsoMissing"))
	assert.Equal(t, "", Pick(core.Row{"title": "lowercase"}, "Title"))
}

func TestCatalog_ColumnFallbacks(t *testing.T) {
	rows := decode.Decode(`NAME,Video,State,Tags,Thumb,Details,Images
Ocean Sim,https://youtu.be/abc,WIP,"fx| lighting, Rigging",https://img.test/o.jpg,Splashes,https://img.test/1.jpg|https://img.test/2.jpg
No Link,,,,,,
,https://vimeo.com/42,,,,https://drive.google.com/file/d/ABC123/view,`)

	items := Catalog(rows)
	require.Len(t, items, 2)

	ocean := items[0]
	assert.Equal(t, "Ocean Sim", ocean.Title)
	assert.Equal(t, "https://youtu.be/abc", ocean.URL)
	assert.Equal(t, "WIP", ocean.Status)
	assert.Equal(t, []string{"fx", "lighting", "Rigging"}, ocean.Tags)
	assert.Equal(t, []string{category.WIP, "FX", "LIGHTING", "Rigging"}, ocean.Categories)
	assert.Equal(t, "https://img.test/o.jpg", ocean.Thumbnail)
	assert.Equal(t, core.YouTubeEmbed{ID: "abc"}, ocean.Embed)
	assert.Equal(t, "Splashes", ocean.Description)
	assert.False(t, ocean.DescriptionIsPDF)
	assert.Equal(t, []string{"https://img.test/1.jpg", "https://img.test/2.jpg"}, ocean.Gallery)

	untitled := items[1]
	assert.Equal(t, "Untitled", untitled.Title)
	assert.Equal(t, core.VimeoEmbed{ID: "42"}, untitled.Embed)
	assert.True(t, untitled.DescriptionIsPDF)
	assert.Empty(t, untitled.Categories)
	assert.Empty(t, untitled.Gallery)
}

func TestCatalog_EndToEndCategories(t *testing.T) {
	rows := decode.Decode(`Title,URL,Status,Tags/Categories
Breakdown,https://cdn.test/a.mp4,,WIP
Explosion,https://cdn.test/b.mp4,WIP,fx`)

	items := Catalog(rows)
	require.Len(t, items, 2)
	assert.Equal(t, []string{category.WIP}, items[0].Categories)
	assert.ElementsMatch(t, []string{category.WIP, "FX"}, items[1].Categories)
	assert.Equal(t, []string{category.All, category.WIP, "FX"}, category.Present(items))
}

func TestSettings_OverlaysKnownKeys(t *testing.T) {
	rows := []core.Row{
		{"Key": "Name", "Value": "Jane Doe"},
		{"key": "ReelURL", "value": "https://vimeo.com/1"},
		{"Section": "AccentColor", "Details": "#ff0"},
		{"Key": "Favicon", "Value": "ignored"},
		{"Key": "", "Value": "orphan"},
	}
	base := core.DefaultSettings()

	got := Settings(rows, base)
	assert.Equal(t, "Jane Doe", got[core.SettingName])
	assert.Equal(t, "https://vimeo.com/1", got[core.SettingReelURL])
	assert.Equal(t, "#ff0", got[core.SettingAccentColor])
	assert.Equal(t, base[core.SettingTitle], got[core.SettingTitle])
	assert.NotContains(t, got, "Favicon")
	assert.Len(t, got, len(core.SettingKeys))

	// base is untouched
	assert.Equal(t, "Varun Kumar Korikana", base[core.SettingName])
}

func TestResume_Sections(t *testing.T) {
	rows := []core.Row{
		{"Section": "Summary", "Details": "FX artist."},
		{"Section": "summary", "Details": "Loves pyro."},
		{"Section": "Experience", "Title": "Studio <A>", "Details": "Built tools & rigs\nShipped shows"},
		{"Section": "experience", "Title": "", "Details": ""},
		{"Section": "Education", "Title": "BFA", "Details": "2018"},
		{"Section": "Skills", "Details": "Houdini, Nuke | Maya;Python"},
		{"Section": "Tools", "Details": "USD"},
		{"Section": "Certification", "Details": "Houdini Certified"},
		{"Section": "Certifications", "Details": "Nuke 101"},
		{"Section": "ResumeLink", "Details": "https://cdn.test/cv.pdf"},
		{"Section": "Hobbies", "Details": "ignored"},
	}

	res := Resume(rows)
	assert.Equal(t, "FX artist. Loves pyro.", res.Summary)
	require.Len(t, res.Experience, 1)
	assert.Equal(t, "Studio <A>", res.Experience[0].Title)
	assert.Equal(t, "Built tools &amp; rigs<br>Shipped shows", res.Experience[0].DetailsHTML)
	assert.Equal(t, []core.ResumeEntry{{Title: "BFA", Details: "2018"}}, res.Education)
	assert.Equal(t, []string{"Houdini", "Nuke", "Maya", "Python"}, res.Skills)
	assert.Equal(t, []string{"USD"}, res.Tools)
	assert.Equal(t, []string{"Houdini Certified", "Nuke 101"}, res.Certs)
	assert.Equal(t, "https://cdn.test/cv.pdf", res.ResumeLink)
}

func TestContact_BlurbAndEntries(t *testing.T) {
	rows := []core.Row{
		{"Type": "Blurb", "Value": "Say hello!"},
		{"Type": "Email", "Value": "jane@example.com"},
		{"Section": "Phone", "Details": "+1 (555) 010-2030", "Icon": "https://img.test/p.png"},
		{"Type": "LinkedIn", "Value": "https://linkedin.com/in/jane", "IconURL": "https://img.test/in.png"},
		{"Type": "twitter", "Value": ""},
		{"Type": "", "Value": "orphan"},
	}

	c := Contact(rows)
	assert.Equal(t, "Say hello!", c.Blurb)
	require.Len(t, c.Entries, 3)

	assert.Equal(t, "email", c.Entries[0].Kind)
	assert.Equal(t, "mailto:jane@example.com", c.Entries[0].Href())

	assert.Equal(t, "phone", c.Entries[1].Kind)
	assert.Equal(t, "tel:+15550102030", c.Entries[1].Href())
	assert.Equal(t, "https://img.test/p.png", c.Entries[1].IconURL)

	assert.Equal(t, "linkedin", c.Entries[2].Kind)
	assert.Equal(t, "https://linkedin.com/in/jane", c.Entries[2].Href())
	assert.Equal(t, "Linkedin", c.Entries[2].Label())
}
