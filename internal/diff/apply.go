package diff

// Decision is a reviewer's verdict on one hunk.
type Decision string

const (
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
)

// DecisionFor resolves the effective decision for a hunk id against a sparse
// decision map. Absent ids and any value other than DecisionRejected resolve
// to DecisionAccepted.
func DecisionFor(decisions map[int]Decision, id int) Decision {
	if decisions[id] == DecisionRejected {
		return DecisionRejected
	}
	return DecisionAccepted
}

// ApplyDecisions reconstructs the final text from the original lines, the
// stamped op sequence produced by Compute, and per-hunk decisions. Context
// lines are always kept. An add is emitted only if its hunk is accepted; a
// delete restores the original line only if its hunk is rejected. Hunk ids in
// the map that stamp no op are inert.
func ApplyDecisions(originalLines []string, ops []Op, decisions map[int]Decision) string {
	out := make([]string, 0, len(ops))
	orig := 0
	for _, op := range ops {
		switch op.Kind {
		case OpContext:
			out = append(out, op.Content)
			orig++
		case OpAdd:
			if DecisionFor(decisions, op.HunkID) == DecisionAccepted {
				out = append(out, op.Content)
			}
		case OpDelete:
			if DecisionFor(decisions, op.HunkID) == DecisionRejected {
				line := op.Content
				if orig < len(originalLines) {
					line = originalLines[orig]
				}
				out = append(out, line)
			}
			orig++
		}
	}
	return JoinLines(out)
}
