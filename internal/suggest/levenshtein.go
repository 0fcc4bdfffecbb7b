package suggest

// Levenshtein returns the number of single-character insertions, deletions
// and substitutions needed to turn a into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Rows are sized by the shorter string.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity maps the edit distance to [0, 1], where 1 means equal.
func Similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(max(len(a), len(b)))
}

// NameSimilarity compares two kind or option names after normalization,
// also trying with the kind suffixes removed, and returns the better score.
func NameSimilarity(a, b string) float64 {
	score := Similarity(NormalizeName(a), NormalizeName(b))

	stripped := Similarity(NormalizeNameWithSuffixStrip(a), NormalizeNameWithSuffixStrip(b))
	if stripped > score {
		return stripped
	}

	return score
}
