package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rbaliev/dfakit"
	"github.com/rbaliev/dfakit/internal/adapters/file"
	mcpAdapter "github.com/rbaliev/dfakit/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  `Exposes validate_url and run_automaton as MCP tools so agent hosts can drive the engine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		storeDir, _ := cmd.Flags().GetString("store")

		server := mcpAdapter.NewServer(
			dfakit.NewURLValidator(),
			file.NewStore(storeDir),
			dfakit.Version,
		)
		if err := server.ServeStdio(); err != nil {
			return fmt.Errorf("mcp server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
