package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var growthCmd = &cobra.Command{
	Use:   "growth TITLE",
	Short: "Chart how fast an l-system grows per generation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		catalog, err := loadCatalog(cmd, logger)
		if err != nil {
			return err
		}
		l, err := findLSystem(catalog, args[0])
		if err != nil {
			return err
		}

		maxOrder, _ := cmd.Flags().GetInt("max-order")
		report := l.AnalyseGrowth(maxOrder)
		for _, g := range report.Generations {
			fmt.Printf("order %2d  symbols %10d  actions %10d  growth %.4f\n", g.Order, g.Length, g.Actions, g.Growth)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return nil
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := report.RenderChart(f); err != nil {
			f.Close()
			return fmt.Errorf("failed to render chart: %w", err)
		}
		logger.Info("chart written", "file", out)
		return f.Close()
	},
}

func init() {
	growthCmd.Flags().Int("max-order", 6, "Highest order to expand")
	growthCmd.Flags().StringP("out", "o", "", "Write an HTML chart to this file")
	rootCmd.AddCommand(growthCmd)
}
