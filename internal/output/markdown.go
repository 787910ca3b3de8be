package output

import (
	"fmt"
	"io"

	"github.com/quillworks/redline/internal/review"
)

// MarkdownWriter outputs a notes-friendly markdown report with one fenced
// diff block per hunk.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *review.Report) error {
	fmt.Fprintf(w, "## Redline Review\n\n")
	fmt.Fprintf(w, "`%s` → `%s`\n\n", report.Inputs.Original, report.Inputs.Revised)

	fmt.Fprintf(w, "| Metric | Count |\n")
	fmt.Fprintf(w, "|----------|-------|\n")
	fmt.Fprintf(w, "| Hunks     | %d |\n", report.Summary.Hunks)
	fmt.Fprintf(w, "| Additions | %d |\n", report.Summary.Additions)
	fmt.Fprintf(w, "| Deletions | %d |\n", report.Summary.Deletions)
	fmt.Fprintf(w, "| Accepted  | %d |\n", report.Summary.Accepted)
	fmt.Fprintf(w, "| Rejected  | %d |\n\n", report.Summary.Rejected)

	if report.Summary.Hunks == 0 {
		fmt.Fprintln(w, "No changes. :white_check_mark:")
		return nil
	}

	for _, h := range report.Hunks {
		fmt.Fprintf(w, "### Hunk %d — %s\n\n", h.ID, h.Decision)
		fmt.Fprintf(w, "```diff\n")
		for _, op := range h.Changes {
			fmt.Fprintf(w, "%s%s\n", linePrefix(op.Kind), op.Content)
		}
		fmt.Fprintf(w, "```\n\n")
	}

	fmt.Fprintf(w, "*Run %s*\n", report.RunID)
	return nil
}
