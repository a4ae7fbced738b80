package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand TITLE ORDER",
	Short: "Print the action string of an l-system at an order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := strconv.Atoi(args[1])
		if err != nil || order < 0 {
			return fmt.Errorf("invalid order %q", args[1])
		}
		catalog, err := loadCatalog(cmd, newLogger(cmd))
		if err != nil {
			return err
		}
		l, err := findLSystem(catalog, args[0])
		if err != nil {
			return err
		}
		fmt.Println(l.Elaborate(order))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
}
