// Package distance computes the Levenshtein edit distance between two
// strings with the classic dynamic-programming recurrence. It is the
// reference the automaton results are checked against.
package distance

// Levenshtein returns the minimum number of single code point insertions,
// deletions and substitutions turning a into b.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Only two rows of the m x n table are live at a time.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Within reports whether Levenshtein(a, b) <= k. It gives up as soon as a
// whole row of the table exceeds k.
func Within(a, b string, k int) bool {
	if k < 0 {
		return false
	}
	ra, rb := []rune(a), []rune(b)
	if abs(len(ra)-len(rb)) > k {
		return false
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i
		best := row[0]
		for j := 1; j <= len(rb); j++ {
			above := row[j]
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			row[j] = min(above+1, row[j-1]+1, diag+cost)
			diag = above
			best = min(best, row[j])
		}
		if best > k {
			return false
		}
	}
	return row[len(rb)] <= k
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
