package diff

// lcsTable builds the (m+1)x(n+1) suffix table where cell [i][j] holds the
// length of the longest common subsequence of a[i:] and b[j:]. Filled
// backward so the op sequencer can walk forward from [0][0]. O(m*n) time and
// space, which is fine at chapter scale (low thousands of lines).
func lcsTable(a, b []string) [][]int {
	m, n := len(a), len(b)
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			switch {
			case a[i] == b[j]:
				table[i][j] = table[i+1][j+1] + 1
			case table[i+1][j] >= table[i][j+1]:
				table[i][j] = table[i+1][j]
			default:
				table[i][j] = table[i][j+1]
			}
		}
	}
	return table
}
