package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rbaliev/dfakit"
	"github.com/rbaliev/dfakit/internal/cli"
	"github.com/rbaliev/dfakit/internal/presentation/tui"
	"github.com/rbaliev/dfakit/pkg/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <url>",
	Short: "Validate a URL and print its state trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strategy, _ := cmd.Flags().GetString("strategy")

		var validator validate.Validator
		switch strategy {
		case "machine":
			validator = dfakit.NewURLValidator()
		case "heuristic":
			validator = dfakit.NewHeuristicValidator()
		default:
			return fmt.Errorf("unknown strategy %q (want machine or heuristic)", strategy)
		}

		url := args[0]
		report := validator.Validate(url)
		report.SecurityIssues = validator.DetectSecurityIssues(url)

		render := tui.NewRenderer()
		out, err := render(cli.FormatReport(url, report))
		if err != nil {
			// Rendering is cosmetic; fall back to the raw markdown.
			out = cli.FormatReport(url, report)
		}
		fmt.Print(out)

		if !report.Valid {
			return fmt.Errorf("URL is invalid")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("strategy", "machine", "Validation strategy: machine or heuristic")
}
