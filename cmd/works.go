package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/gaurav-prasanna/sheetfolio/core/normalize"
	"github.com/gaurav-prasanna/sheetfolio/core/popup"
	"github.com/gaurav-prasanna/sheetfolio/core/site"
	"github.com/spf13/cobra"
)

var flagFilter string

var worksCmd = &cobra.Command{
	Use:   "works",
	Short: "List the works catalog",
	Long: `Works loads the catalog and lists it under the chosen category.
Categories match regardless of case. An unknown category falls back to ALL.

Examples:
  sheetfolio works
  sheetfolio works --filter FX`,
	Args: cobra.NoArgs,
	RunE: runWorks,
}

var openCmd = &cobra.Command{
	Use:   "open <title>",
	Short: "Show one work with its description",
	Long: `Open shows a work the way its popup does: the player source, then the
description. Descriptions that link to a PDF are extracted; when the
host blocks extraction, the viewer and download links are shown instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(worksCmd)
	rootCmd.AddCommand(openCmd)
	worksCmd.Flags().StringVar(&flagFilter, "filter", "", "Category to show (e.g. FX, WIP)")
}

func runWorks(cmd *cobra.Command, _ []string) error {
	s := newSite()
	if !s.LoadCatalog(cmd.Context()) {
		return fmt.Errorf("could not load the works catalog")
	}
	return printMarkdown(cmd, listWorks(s.Works(flagFilter)))
}

// listWorks formats one filtered view of the catalog as Markdown.
func listWorks(works site.Works) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Works: %s\n\n", works.Active)
	fmt.Fprintf(&b, "Categories: %s\n\n", strings.Join(works.Categories, " · "))
	if len(works.Items) == 0 {
		b.WriteString("_No works in this category._\n")
	}
	for i, item := range works.Items {
		fmt.Fprintf(&b, "%d. **%s**", i+1, item.Title)
		if len(item.Categories) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(item.Categories, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func runOpen(cmd *cobra.Command, args []string) error {
	s := newSite()
	if !s.LoadCatalog(cmd.Context()) {
		return fmt.Errorf("could not load the works catalog")
	}

	item, ok := findWork(s.Snapshot().Works, args[0])
	if !ok {
		return fmt.Errorf("no work titled %q", args[0])
	}

	modal := popup.NewModal(newExtractor(), logger)
	view, err := modal.Open(cmd.Context(), item)
	if err != nil {
		return err
	}
	defer modal.Close()

	description, err := normalize.New().Normalize(view.DescriptionHTML)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", view.Title)
	fmt.Fprintf(&b, "Player (%s): %s\n\n", view.Player.Tag, view.Player.Src)
	b.WriteString(description)
	if view.State == popup.ShowingFallbackViewer {
		fmt.Fprintf(&b, "\nViewer: %s\n", view.ViewerURL)
	}
	return printMarkdown(cmd, b.String())
}

// findWork matches a title case-insensitively.
func findWork(items []core.WorkItem, title string) (core.WorkItem, bool) {
	for _, item := range items {
		if strings.EqualFold(strings.TrimSpace(item.Title), strings.TrimSpace(title)) {
			return item, true
		}
	}
	return core.WorkItem{}, false
}

// printMarkdown renders md for the terminal, falling back to the raw text.
func printMarkdown(cmd *cobra.Command, md string) error {
	out := md
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err == nil {
		if rendered, err := renderer.Render(md); err == nil {
			out = rendered
		}
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
