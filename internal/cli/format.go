package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rbaliev/dfakit/pkg/validate"
)

// FormatReport renders a validation report as markdown for the terminal.
func FormatReport(url string, report validate.Report) string {
	var b strings.Builder

	verdict := "**invalid**"
	if report.Valid {
		verdict = "**valid**"
	}
	fmt.Fprintf(&b, "# URL Validation\n\n`%s` is %s\n\n", url, verdict)

	if report.RejectionReason != "" {
		fmt.Fprintf(&b, "Rejection reason: %s\n\n", report.RejectionReason)
	}

	fmt.Fprintf(&b, "State sequence: `%s`\n", FormatTrace(report.StateSequence))

	if report.Components != nil {
		c := report.Components
		b.WriteString("\n## Components\n\n")
		fmt.Fprintf(&b, "| Part | Value |\n|---|---|\n")
		fmt.Fprintf(&b, "| Scheme | %s |\n", c.Scheme)
		fmt.Fprintf(&b, "| Authority | %s |\n", c.Authority)
		fmt.Fprintf(&b, "| Path | %s |\n", c.Path)
		fmt.Fprintf(&b, "| Query | %s |\n", c.Query)
		fmt.Fprintf(&b, "| Fragment | %s |\n", c.Fragment)
	}

	if len(report.SecurityIssues) > 0 {
		b.WriteString("\n## Potential security issues\n\n")
		kinds := make([]string, 0, len(report.SecurityIssues))
		for kind := range report.SecurityIssues {
			kinds = append(kinds, string(kind))
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			matches := report.SecurityIssues[validate.IssueKind(kind)]
			fmt.Fprintf(&b, "- **%s**: %s\n", strings.ReplaceAll(kind, "_", " "), strings.Join(matches, ", "))
		}
	}

	return b.String()
}
