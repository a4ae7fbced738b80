package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	lsystem "github.com/viktordanov/lsvg"
	"github.com/viktordanov/lsvg/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "lsvg",
	Short: "lsvg renders Lindenmayer systems as SVG",
	Long: `lsvg expands L-system grammars, interprets them with turtle graphics and
writes the resulting curves and plants to a paged SVG document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("catalog", "c", "", "Catalog file (defaults to the built-in curves)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(logging.ParseLevel(level))
}

// loadCatalog reads the selected catalog and reports entries that failed
// to load. Bad entries are skipped, not fatal.
func loadCatalog(cmd *cobra.Command, logger *slog.Logger) (lsystem.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")

	var (
		catalog lsystem.Catalog
		report  lsystem.LoadReport
	)
	if path == "" {
		catalog, report = lsystem.DefaultCatalog()
	} else {
		var err error
		catalog, report, err = lsystem.LoadCatalog(path)
		if err != nil {
			return nil, err
		}
	}

	for _, e := range report.Errors {
		logger.Error("catalog_entry_failed", "entry", e.Index, "error", e.Err)
		logger.Debug("catalog_entry_source", "entry", e.Index, "chunk", e.Chunk)
	}
	logger.Info(report.Summary(), "loaded", report.Loaded, "failed", report.Failed())
	return catalog, nil
}

func findLSystem(catalog lsystem.Catalog, title string) (*lsystem.LSystem, error) {
	l, ok := catalog.Find(title)
	if !ok {
		return nil, fmt.Errorf("no l-system titled %q", title)
	}
	return l, nil
}
