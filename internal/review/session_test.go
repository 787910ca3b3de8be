package review

import (
	"testing"

	"github.com/quillworks/redline/internal/diff"
)

func twoHunkSession(t *testing.T) *Session {
	t.Helper()
	res := diff.Compute(
		"L1\nL2\nL3\nL4\nL5\nL6\nL7\nL8\nL9",
		"L1\nX2\nL3\nL4\nL5\nL6\nL7\nX8\nL9",
		diff.DefaultOptions(),
	)
	if len(res.Hunks) != 2 {
		t.Fatalf("fixture produced %d hunks, want 2", len(res.Hunks))
	}
	return NewSession(res)
}

func TestSession_DefaultsToAccepted(t *testing.T) {
	s := twoHunkSession(t)

	for _, h := range s.Result.Hunks {
		if got := s.DecisionFor(h.ID); got != diff.DecisionAccepted {
			t.Errorf("DecisionFor(%d) = %s, want accepted by default", h.ID, got)
		}
	}

	accepted, rejected, pending := s.Counts()
	if accepted != 0 || rejected != 0 || pending != 2 {
		t.Errorf("Counts() = %d, %d, %d, want 0, 0, 2 (no explicit marks yet)",
			accepted, rejected, pending)
	}
}

func TestSession_RejectAndApply(t *testing.T) {
	s := twoHunkSession(t)
	s.Reject(1)

	want := "L1\nL2\nL3\nL4\nL5\nL6\nL7\nX8\nL9"
	if got := s.Apply(); got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestSession_Toggle(t *testing.T) {
	s := twoHunkSession(t)

	s.Toggle(1)
	if got := s.DecisionFor(1); got != diff.DecisionRejected {
		t.Errorf("after first Toggle, DecisionFor(1) = %s, want rejected", got)
	}
	s.Toggle(1)
	if got := s.DecisionFor(1); got != diff.DecisionAccepted {
		t.Errorf("after second Toggle, DecisionFor(1) = %s, want accepted", got)
	}
}

func TestSession_Reset(t *testing.T) {
	s := twoHunkSession(t)
	s.Reject(2)
	s.Reset(2)

	if got := s.DecisionFor(2); got != diff.DecisionAccepted {
		t.Errorf("DecisionFor(2) after Reset = %s, want accepted", got)
	}
	if _, _, pending := s.Counts(); pending != 2 {
		t.Errorf("pending = %d after Reset, want 2", pending)
	}
}

func TestSession_AcceptAllRejectAll(t *testing.T) {
	s := twoHunkSession(t)

	s.RejectAll()
	if got := s.Apply(); got != "L1\nL2\nL3\nL4\nL5\nL6\nL7\nL8\nL9" {
		t.Errorf("RejectAll then Apply = %q, want original", got)
	}

	s.AcceptAll()
	if got := s.Apply(); got != "L1\nX2\nL3\nL4\nL5\nL6\nL7\nX8\nL9" {
		t.Errorf("AcceptAll then Apply = %q, want revised", got)
	}
}

func TestSession_UnknownIDsIgnored(t *testing.T) {
	s := twoHunkSession(t)

	s.Reject(99)
	s.Accept(-1)
	s.Toggle(42)

	if len(s.Decisions()) != 0 {
		t.Errorf("Decisions() = %v, want empty (unknown ids discarded)", s.Decisions())
	}
}

func TestSession_SetDecisionsFiltersUnknown(t *testing.T) {
	s := twoHunkSession(t)

	s.SetDecisions(map[int]diff.Decision{
		1:  diff.DecisionRejected,
		99: diff.DecisionRejected,
	})

	got := s.Decisions()
	if len(got) != 1 || got[1] != diff.DecisionRejected {
		t.Errorf("Decisions() = %v, want only hunk 1 rejected", got)
	}
}

func TestSession_DecisionsReturnsCopy(t *testing.T) {
	s := twoHunkSession(t)
	s.Reject(1)

	m := s.Decisions()
	m[2] = diff.DecisionRejected

	if got := s.DecisionFor(2); got != diff.DecisionAccepted {
		t.Error("mutating the Decisions() copy leaked into the session")
	}
}

func TestParseHunkList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "3", []int{3}, false},
		{"multiple", "1,3,9", []int{1, 3, 9}, false},
		{"whitespace", " 1 , 2 ", []int{1, 2}, false},
		{"empty parts skipped", "1,,2", []int{1, 2}, false},
		{"zero", "0", nil, true},
		{"negative", "-2", nil, true},
		{"not a number", "1,two", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHunkList(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHunkList(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseHunkList(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseHunkList(%q)[%d] = %d, want %d", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildReport(t *testing.T) {
	s := twoHunkSession(t)
	s.Reject(2)

	report := BuildReport(s, Inputs{Original: "ch1.txt", Revised: "ch1.ai.txt", ContextLines: 2})

	if report.Tool != "redline" {
		t.Errorf("Tool = %q, want redline", report.Tool)
	}
	if report.RunID == "" {
		t.Error("RunID should not be empty")
	}
	if report.Summary.Hunks != 2 || report.Summary.Accepted != 1 || report.Summary.Rejected != 1 {
		t.Errorf("Summary = %+v, want 2 hunks, 1 accepted, 1 rejected", report.Summary)
	}
	if report.Summary.Additions != 2 || report.Summary.Deletions != 2 {
		t.Errorf("Summary = %+v, want 2 additions, 2 deletions", report.Summary)
	}
	if len(report.Hunks) != 2 {
		t.Fatalf("got %d hunk views, want 2", len(report.Hunks))
	}
	if report.Hunks[0].Decision != diff.DecisionAccepted {
		t.Errorf("Hunks[0].Decision = %s, want accepted", report.Hunks[0].Decision)
	}
	if report.Hunks[1].Decision != diff.DecisionRejected {
		t.Errorf("Hunks[1].Decision = %s, want rejected", report.Hunks[1].Decision)
	}
	if report.Inputs.Original != "ch1.txt" || report.Inputs.ContextLines != 2 {
		t.Errorf("Inputs = %+v, want labels and context carried through", report.Inputs)
	}
}
