package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/quillworks/redline/internal/diff"
	"github.com/quillworks/redline/internal/review"
)

// TextWriter outputs a human-readable hunk listing.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *review.Report) error {
	ew := &errWriter{w: w}

	ew.printf("Redline Review — %s → %s\n", report.Inputs.Original, report.Inputs.Revised)
	ew.println(strings.Repeat("─", 60))
	ew.printf("Hunks: %d (+%d −%d)",
		report.Summary.Hunks, report.Summary.Additions, report.Summary.Deletions)
	if report.Summary.Hunks > 0 {
		ew.printf(" | %d accepted, %d rejected",
			report.Summary.Accepted, report.Summary.Rejected)
	}
	ew.println("")
	ew.println(strings.Repeat("─", 60))

	if report.Summary.Hunks == 0 {
		ew.println("\nNo changes. The texts are identical.")
		return ew.err
	}

	for _, h := range report.Hunks {
		ew.printf("\nHunk %d [%s]\n", h.ID, h.Decision)
		for _, op := range h.Changes {
			ew.printf("%s %s\n", linePrefix(op.Kind), op.Content)
		}
	}

	return ew.err
}

func linePrefix(kind diff.OpKind) string {
	switch kind {
	case diff.OpAdd:
		return "+"
	case diff.OpDelete:
		return "-"
	default:
		return " "
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
