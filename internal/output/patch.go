package output

import (
	"fmt"
	"io"

	difflib "github.com/pmezard/go-difflib/difflib"

	"github.com/quillworks/redline/internal/review"
)

// PatchWriter exports the full change set as a classic unified diff
// (---/+++ headers, @@ hunks). Decisions are not reflected: the patch always
// describes original → revised, for hand-off to external tooling.
type PatchWriter struct{}

func (p *PatchWriter) Write(w io.Writer, report *review.Report) error {
	ctx := report.Inputs.ContextLines
	if ctx <= 0 {
		ctx = 3
	}

	u := difflib.UnifiedDiff{
		A:        withNewlines(report.OriginalLines),
		B:        withNewlines(report.RevisedLines),
		FromFile: report.Inputs.Original,
		ToFile:   report.Inputs.Revised,
		Context:  ctx,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return fmt.Errorf("building unified diff: %w", err)
	}
	_, err = io.WriteString(w, s)
	return err
}

// withNewlines terminates each line so difflib produces well-formed hunks.
func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}
