package match

// Levenshtein computes the edit distance between two strings, counting
// single-rune insertions, deletions and substitutions.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// keep the shorter string in ra so the rows stay small
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity returns 1 - distance/maxLen over the folded forms of a and b:
// 1.0 for identical identifiers, 0.0 for completely different ones.
func Similarity(a, b string) float64 {
	fa, fb := Fold(a), Fold(b)

	maxLen := max(len([]rune(fa)), len([]rune(fb)))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(fa, fb))/float64(maxLen)
}
