package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rbaliev/dfakit"
	"github.com/rbaliev/dfakit/internal/adapters/file"
	"github.com/rbaliev/dfakit/internal/cli"
	"github.com/rbaliev/dfakit/internal/presentation/tui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively build, test, save and load automata",
	RunE: func(cmd *cobra.Command, args []string) error {
		storeDir, _ := cmd.Flags().GetString("store")
		strict, _ := cmd.Flags().GetBool("strict")

		policy := cli.UseTrapState
		if strict {
			policy = cli.Reject
		}

		tui.PrintBanner(dfakit.Version)

		store := file.NewStore(storeDir)
		repl := cli.NewREPL(os.Stdin, os.Stdout, store, policy)
		if err := repl.Run(context.Background()); err != nil {
			return fmt.Errorf("repl: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Bool("strict", false, "Reject undefined transition targets instead of substituting the trap state")
}
