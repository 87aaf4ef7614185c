// Export command.
// Orchestrates the export pipeline:
// load → document → normalize → render → write.
package cmd

import (
	"fmt"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/gaurav-prasanna/sheetfolio/core/normalize"
	"github.com/gaurav-prasanna/sheetfolio/core/output"
	"github.com/gaurav-prasanna/sheetfolio/core/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Flag variables.
var (
	flagPDF       bool
	flagMarkdown  bool
	flagJSON      bool
	flagYAML      bool
	flagOutputDir string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the whole portfolio to a file",
	Long: `Export loads every source, builds the portfolio document, normalizes it
to Markdown, and converts it to the chosen output format.

Examples:
  sheetfolio export --markdown
  sheetfolio export --json --output_dir ./out
  sheetfolio export --pdf`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	// Output format flags (mutually exclusive).
	exportCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	exportCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	exportCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	exportCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Output structured YAML")

	exportCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	if err := validateFlags(); err != nil {
		return err
	}
	renderer, err := selectRenderer()
	if err != nil {
		return err
	}
	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	s := newSite()
	s.Refresh(cmd.Context())
	snap := s.Snapshot()

	data, err := exportSnapshot(snap, normalize.New(), renderer)
	if err != nil {
		return err
	}

	path, err := writer.Write(snap.Settings[core.SettingName], data, renderer.Extension())
	if err != nil {
		return err
	}
	logger.Info("Export written", zap.String("path", path), zap.Int("works", len(snap.Works)))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}

// exportSnapshot runs a snapshot through the document, normalize and render stages.
func exportSnapshot(snap core.Snapshot, normalizer core.Normalizer, renderer core.Renderer) ([]byte, error) {
	page, err := render.Document(snap)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}

	markdown, err := normalizer.Normalize(page)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	data, err := renderer.Render(markdown, snap)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return data, nil
}

// validateFlags checks that exactly one output format is chosen.
func validateFlags() error {
	formatCount := 0
	for _, set := range []bool{flagPDF, flagMarkdown, flagJSON, flagYAML} {
		if set {
			formatCount++
		}
	}

	if formatCount == 0 {
		return fmt.Errorf("exactly one output format is required: --pdf, --markdown, --json, or --yaml")
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagJSON:
		return render.NewJSONRenderer(), nil
	case flagYAML:
		return render.NewYAMLRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("no output format selected")
	}
}
