package review

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quillworks/redline/internal/diff"
)

// Session is one review cycle over a computed diff: the result plus the
// reviewer's explicit decisions so far. It is not safe for concurrent use;
// a caller embedding it in an interactive surface serializes access.
type Session struct {
	Result *diff.Result

	decisions map[int]diff.Decision
	known     map[int]bool
}

// NewSession starts a review over res with no explicit decisions.
func NewSession(res *diff.Result) *Session {
	known := make(map[int]bool, len(res.Hunks))
	for _, h := range res.Hunks {
		known[h.ID] = true
	}
	return &Session{
		Result:    res,
		decisions: make(map[int]diff.Decision),
		known:     known,
	}
}

// Accept marks hunk id as explicitly accepted. Unknown ids are ignored.
func (s *Session) Accept(id int) {
	s.mark(id, diff.DecisionAccepted)
}

// Reject marks hunk id as rejected. Unknown ids are ignored.
func (s *Session) Reject(id int) {
	s.mark(id, diff.DecisionRejected)
}

// Toggle flips the effective decision for hunk id.
func (s *Session) Toggle(id int) {
	if !s.known[id] {
		return
	}
	if s.DecisionFor(id) == diff.DecisionAccepted {
		s.decisions[id] = diff.DecisionRejected
	} else {
		s.decisions[id] = diff.DecisionAccepted
	}
}

// Reset drops any explicit mark for hunk id, restoring the accept default.
func (s *Session) Reset(id int) {
	delete(s.decisions, id)
}

// AcceptAll marks every hunk accepted.
func (s *Session) AcceptAll() {
	for id := range s.known {
		s.decisions[id] = diff.DecisionAccepted
	}
}

// RejectAll marks every hunk rejected.
func (s *Session) RejectAll() {
	for id := range s.known {
		s.decisions[id] = diff.DecisionRejected
	}
}

func (s *Session) mark(id int, d diff.Decision) {
	if s.known[id] {
		s.decisions[id] = d
	}
}

// DecisionFor returns the effective decision for hunk id (accepted unless
// explicitly rejected).
func (s *Session) DecisionFor(id int) diff.Decision {
	return diff.DecisionFor(s.decisions, id)
}

// Decisions returns a copy of the explicit decision map.
func (s *Session) Decisions() map[int]diff.Decision {
	out := make(map[int]diff.Decision, len(s.decisions))
	for id, d := range s.decisions {
		out[id] = d
	}
	return out
}

// SetDecisions replaces the explicit marks with those from m, dropping
// entries for hunks that do not exist in this result.
func (s *Session) SetDecisions(m map[int]diff.Decision) {
	s.decisions = make(map[int]diff.Decision, len(m))
	for id, d := range m {
		s.mark(id, d)
	}
}

// Counts reports how many hunks are explicitly accepted, explicitly
// rejected, and still pending (no explicit mark).
func (s *Session) Counts() (accepted, rejected, pending int) {
	for _, h := range s.Result.Hunks {
		switch s.decisions[h.ID] {
		case diff.DecisionAccepted:
			accepted++
		case diff.DecisionRejected:
			rejected++
		default:
			pending++
		}
	}
	return accepted, rejected, pending
}

// Apply materializes the final text under the current decisions.
func (s *Session) Apply() string {
	return diff.ApplyDecisions(s.Result.OriginalLines, s.Result.Ops, s.decisions)
}

// ParseHunkList parses a comma-separated list of hunk ids, e.g. "1,3,9".
// Ids must be positive integers; duplicates are kept in input order.
func ParseHunkList(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid hunk id %q: %w", part, err)
		}
		if id < 1 {
			return nil, fmt.Errorf("invalid hunk id %d: ids start at 1", id)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
