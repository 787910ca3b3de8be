package review

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/quillworks/redline/internal/diff"
)

// Inputs describes where the two text snapshots came from.
type Inputs struct {
	Original     string `json:"original"`
	Revised      string `json:"revised"`
	ContextLines int    `json:"contextLines"`
}

// HunkView is a hunk together with its effective decision.
type HunkView struct {
	ID       int           `json:"id"`
	Decision diff.Decision `json:"decision"`
	Changes  []diff.Op     `json:"changes"`
}

// Summary provides an overview of the diff and the review state.
type Summary struct {
	Hunks     int `json:"hunks"`
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Accepted  int `json:"accepted"`
	Rejected  int `json:"rejected"`
}

// Report is the top-level structure handed to output writers.
type Report struct {
	Tool          string     `json:"tool"`
	Version       string     `json:"version"`
	RunID         string     `json:"runId"`
	Inputs        Inputs     `json:"inputs"`
	Summary       Summary    `json:"summary"`
	Hunks         []HunkView `json:"hunks"`
	Ops           []diff.Op  `json:"ops"`
	OriginalLines []string   `json:"originalLines"`
	RevisedLines  []string   `json:"revisedLines"`
}

// BuildReport projects a session into a Report. Each hunk carries its
// effective decision, so hunks never marked explicitly show as accepted.
func BuildReport(s *Session, inputs Inputs) *Report {
	res := s.Result

	hunks := make([]HunkView, 0, len(res.Hunks))
	summary := Summary{
		Hunks:     len(res.Hunks),
		Additions: res.Stats.Additions,
		Deletions: res.Stats.Deletions,
	}
	for _, h := range res.Hunks {
		d := s.DecisionFor(h.ID)
		if d == diff.DecisionRejected {
			summary.Rejected++
		} else {
			summary.Accepted++
		}
		hunks = append(hunks, HunkView{ID: h.ID, Decision: d, Changes: h.Changes})
	}

	return &Report{
		Tool:          "redline",
		Version:       "1.0",
		RunID:         generateRunID(),
		Inputs:        inputs,
		Summary:       summary,
		Hunks:         hunks,
		Ops:           res.Ops,
		OriginalLines: res.OriginalLines,
		RevisedLines:  res.RevisedLines,
	}
}

func generateRunID() string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%d", time.Now().UnixNano())))
	return fmt.Sprintf("%x", h[:8])
}
