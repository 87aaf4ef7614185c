// Package cmd implements the CLI commands for SheetFolio using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/gaurav-prasanna/sheetfolio/config"
	"github.com/gaurav-prasanna/sheetfolio/core/extract"
	"github.com/gaurav-prasanna/sheetfolio/core/fetch"
	"github.com/gaurav-prasanna/sheetfolio/core/site"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	cfg     config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sheetfolio",
	Short: "SheetFolio: a portfolio site driven by published spreadsheets",
	Long: `SheetFolio pulls its works catalog, site settings, résumé and contact
details from published spreadsheet exports, and serves or exports them.

Usage:
  sheetfolio serve [flags]
  sheetfolio works [--filter FX]
  sheetfolio open <title>
  sheetfolio export --markdown|--json|--yaml|--pdf [--output_dir DIR]`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		zcfg := zap.NewProductionConfig()
		if verbose || cfg.Verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newFetcher builds the HTTP fetcher shared by spreadsheet and PDF retrieval.
func newFetcher() *fetch.HTTPFetcher {
	opts := fetch.DefaultOptions()
	opts.Timeout = cfg.HTTPTimeout
	if cfg.UserAgent != "" {
		opts.UserAgent = cfg.UserAgent
	}
	return fetch.New(opts)
}

// newSite wires the site coordinator to the configured sources.
func newSite() *site.Site {
	noStore := *fetch.DefaultOptions()
	noStore.Timeout = cfg.HTTPTimeout
	noStore.NoStore = true
	if cfg.UserAgent != "" {
		noStore.UserAgent = cfg.UserAgent
	}
	return site.New(fetch.NewSources(fetch.New(&noStore)), site.URLs{
		Works:    cfg.WorksURL,
		Settings: cfg.SettingsURL,
		Resume:   cfg.ResumeURL,
		Contact:  cfg.ContactURL,
	}, logger)
}

func newExtractor() *extract.PDFExtractor {
	return extract.NewPDFExtractor(newFetcher())
}
