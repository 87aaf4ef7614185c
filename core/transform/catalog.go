package transform

import (
	"regexp"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/gaurav-prasanna/sheetfolio/core/category"
	"github.com/gaurav-prasanna/sheetfolio/core/embed"
	"github.com/gaurav-prasanna/sheetfolio/core/pdflink"
)

var (
	tagSeparator     = regexp.MustCompile(`[,|]`)
	gallerySeparator = regexp.MustCompile(`\|`)
)

// Catalog builds the works catalog. Rows without a media link are skipped.
func Catalog(rows []core.Row) []core.WorkItem {
	items := make([]core.WorkItem, 0, len(rows))
	for _, row := range rows {
		link := Pick(row, catalogURL...)
		if link == "" {
			continue
		}

		title := Pick(row, catalogTitle...)
		if title == "" {
			title = "Untitled"
		}
		status := Pick(row, catalogStatus...)
		tags := splitList(Pick(row, catalogTags...), tagSeparator)
		description := Pick(row, catalogDescription...)

		items = append(items, core.WorkItem{
			Title:            title,
			URL:              link,
			Status:           status,
			Tags:             tags,
			Thumbnail:        Pick(row, catalogThumbnail...),
			Categories:       category.Derive(tags, status),
			Embed:            embed.Build(link),
			Description:      description,
			DescriptionIsPDF: pdflink.IsProbablyPDFLink(description),
			Gallery:          splitList(Pick(row, catalogGallery...), gallerySeparator),
		})
	}
	return items
}
