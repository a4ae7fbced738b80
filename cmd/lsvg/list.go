package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the l-systems in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd, newLogger(cmd))
		if err != nil {
			return err
		}
		for _, l := range catalog {
			fmt.Printf("%-40s angle %-6g orders %v\n", l.Title, l.Angle, l.Orders)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
