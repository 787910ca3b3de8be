package diff

// grouperState threads one left-to-right pass over the op sequence: the
// rolling pre-context buffer (at most contextLines most recent context ops
// since the last flush), the currently open hunk, and the trailing-context
// count of that hunk.
type grouperState struct {
	preContext []Op
	open       *Hunk
	trailing   int
}

// groupHunks clusters change ops into hunks bounded by contextLines of
// padding and accumulates global stats. Change ops are stamped with their
// hunk id in place, so the returned hunks and the input slice agree.
//
// A hunk closes once contextLines trailing context ops accumulate, so changes
// separated by contextLines or more unchanged lines end up in separate hunks.
func groupHunks(ops []Op, contextLines int) ([]Hunk, Stats) {
	hunks := []Hunk{}
	var stats Stats
	var st grouperState
	nextID := 1

	flush := func() {
		if st.open != nil {
			hunks = append(hunks, *st.open)
			st.open = nil
		}
		st.trailing = 0
	}

	for idx := range ops {
		switch ops[idx].Kind {
		case OpContext:
			if st.open == nil {
				if contextLines > 0 {
					st.preContext = append(st.preContext, ops[idx])
					if len(st.preContext) > contextLines {
						st.preContext = st.preContext[1:]
					}
				}
				continue
			}
			if contextLines == 0 {
				flush()
				continue
			}
			st.open.Changes = append(st.open.Changes, ops[idx])
			st.trailing++
			if st.trailing == contextLines {
				flush()
			}
		case OpAdd, OpDelete:
			// Stats count every scanned change, regardless of grouping.
			if ops[idx].Kind == OpAdd {
				stats.Additions++
			} else {
				stats.Deletions++
			}
			if st.open == nil {
				st.open = &Hunk{ID: nextID}
				nextID++
				st.open.Changes = append(st.open.Changes, st.preContext...)
				st.preContext = nil
			}
			ops[idx].HunkID = st.open.ID
			st.open.Changes = append(st.open.Changes, ops[idx])
			st.trailing = 0
		}
	}
	flush()

	return hunks, stats
}
