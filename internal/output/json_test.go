package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/quillworks/redline/internal/diff"
	"github.com/quillworks/redline/internal/review"
)

func TestJSONWriter_RoundTrip(t *testing.T) {
	report := sampleReport(t, map[int]diff.Decision{1: diff.DecisionRejected})

	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var decoded review.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Tool != "redline" {
		t.Errorf("tool = %q, want redline", decoded.Tool)
	}
	if decoded.Summary.Hunks != 2 || decoded.Summary.Rejected != 1 {
		t.Errorf("summary = %+v, want 2 hunks, 1 rejected", decoded.Summary)
	}
	if len(decoded.Hunks) != 2 {
		t.Fatalf("got %d hunks, want 2", len(decoded.Hunks))
	}
	if decoded.Hunks[0].Decision != diff.DecisionRejected {
		t.Errorf("hunks[0].decision = %s, want rejected", decoded.Hunks[0].Decision)
	}
	if len(decoded.Ops) != len(report.Ops) {
		t.Errorf("got %d ops, want %d", len(decoded.Ops), len(report.Ops))
	}
	if len(decoded.OriginalLines) != 9 || len(decoded.RevisedLines) != 9 {
		t.Errorf("line snapshots = %d/%d lines, want 9/9",
			len(decoded.OriginalLines), len(decoded.RevisedLines))
	}
}

func TestJSONWriter_ContextOpsOmitHunkID(t *testing.T) {
	report := sampleReport(t, nil)

	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var decoded struct {
		Ops []map[string]interface{} `json:"ops"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	for i, op := range decoded.Ops {
		_, stamped := op["hunkId"]
		if op["kind"] == "context" && stamped {
			t.Errorf("ops[%d] is context but serializes a hunkId", i)
		}
		if op["kind"] != "context" && !stamped {
			t.Errorf("ops[%d] is %v but has no hunkId", i, op["kind"])
		}
	}
}
