package diff

// sequenceOps walks the suffix table from the start of both sequences and
// emits one op per line of each input. Equal lines become a single context
// op. On a mismatch the table decides which side advances; when the scores
// tie, delete wins. The tie-break is load-bearing: changing it reshuffles op
// order and therefore hunk ids, which stored decisions depend on.
func sequenceOps(a, b []string, table [][]int) []Op {
	ops := make([]Op, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			ops = append(ops, Op{Kind: OpContext, Content: a[i]})
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			ops = append(ops, Op{Kind: OpDelete, Content: a[i]})
			i++
		default:
			ops = append(ops, Op{Kind: OpAdd, Content: b[j]})
			j++
		}
	}
	for ; i < len(a); i++ {
		ops = append(ops, Op{Kind: OpDelete, Content: a[i]})
	}
	for ; j < len(b); j++ {
		ops = append(ops, Op{Kind: OpAdd, Content: b[j]})
	}
	return ops
}
