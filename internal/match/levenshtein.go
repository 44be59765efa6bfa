package match

import (
	"strings"

	"member-generator/internal/ident"
)

// Levenshtein computes the edit distance between two strings, counted in runes.
// The distance is the minimum number of single-rune insertions, deletions or
// substitutions required to transform one string into the other.
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

	// keep the shorter string in the rows
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
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
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

// Similarity returns 1 - distance/max(len(a), len(b)): 1 for identical strings,
// 0 for strings sharing nothing.
func Similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(max(la, lb))
}

// NormalizeIdent folds an identifier for fuzzy comparison: tokens are split on
// separators and CamelCase boundaries, lower-cased and concatenated.
func NormalizeIdent(s string) string {
	return strings.ReplaceAll(ident.Snake(s), "_", "")
}

// Score is the similarity of two identifiers after normalization.
func Score(a, b string) float64 {
	return Similarity(NormalizeIdent(a), NormalizeIdent(b))
}
