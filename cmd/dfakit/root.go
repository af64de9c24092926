package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dfakit",
	Short: "dfakit is a DFA engine and URL validator",
	Long:  `dfakit builds, runs and persists deterministic finite automata, including a ready-made grammar for validating http/https URLs.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("store", "", "Directory for the file-backed automaton store (default .dfakit/automata)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
