package main

import (
	"fmt"

	"github.com/spf13/cobra"
	lsystem "github.com/viktordanov/lsvg"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lsvg",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lsvg version %s\n", lsystem.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
