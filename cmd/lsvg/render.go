package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/viktordanov/lsvg/config"
	"github.com/viktordanov/lsvg/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the catalog to an SVG document",
	Long:  `Renders one page per l-system. Each page shows up to four expansion orders fitted into the page layout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd)
	},
}

func init() {
	renderCmd.Flags().StringP("out", "o", "lsystems.svg", "Output SVG file")
	renderCmd.Flags().String("config", "", "YAML file with page parameters")
	renderCmd.Flags().String("only", "", "Render only l-systems whose title contains this text")
	renderCmd.Flags().Bool("outline", false, "Draw the layout boxes")
	renderCmd.Flags().String("path-mode", "", "Path token mode: absolute or legacy")
	renderCmd.Flags().Float64("linewidth", 0, "Line width in inches")
	renderCmd.Flags().String("metrics", "", "Write render metrics to this file")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command) error {
	logger := newLogger(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cmd, logger)
	if err != nil {
		return err
	}
	only, _ := cmd.Flags().GetString("only")
	catalog = catalog.Filter(only)

	reg := prometheus.NewRegistry()
	outline, _ := cmd.Flags().GetBool("outline")
	r := render.New(cfg,
		render.WithLogger(logger),
		render.WithMetrics(render.NewMetrics(reg)),
		render.WithOutline(outline),
	)

	out, _ := cmd.Flags().GetString("out")
	summary, err := r.RenderCatalog(catalog, out)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	logger.Info("rendered", "file", out, "pages", summary.Pages, "shapes", summary.Shapes, "failed", summary.Failed)

	if path, _ := cmd.Flags().GetString("metrics"); path != "" {
		if err := prometheus.WriteToTextfile(path, reg); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d shapes failed to render", summary.Failed)
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("path-mode") {
		mode, _ := cmd.Flags().GetString("path-mode")
		cfg.PathMode = config.PathMode(mode)
	}
	if cmd.Flags().Changed("linewidth") {
		cfg.LineWidth, _ = cmd.Flags().GetFloat64("linewidth")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
