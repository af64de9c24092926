package main

import (
	"fmt"

	"github.com/rbaliev/dfakit"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dfakit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dfakit version %s\n", dfakit.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
