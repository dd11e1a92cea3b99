// Package textmatch provides the string-similarity primitives used by the
// degree and experience-field comparators.
package textmatch

import "strings"

// DefaultThreshold is the ratio above which two strings count as similar.
const DefaultThreshold = 0.7

// Ratio returns a similarity ratio in [0, 1] between the two strings. The
// ratio weights the longest common subsequence against the combined length
// (2*lcs/(len(a)+len(b))) and is case-insensitive. Two empty strings are
// identical and yield 1.
func Ratio(a, b string) float64 {
	ar := []rune(strings.ToLower(a))
	br := []rune(strings.ToLower(b))

	total := len(ar) + len(br)
	if total == 0 {
		return 1
	}
	if len(ar) == 0 || len(br) == 0 {
		return 0
	}

	return 2 * float64(lcsLength(ar, br)) / float64(total)
}

// Similar reports whether the similarity ratio of the two strings strictly
// exceeds the threshold. Empty or absent inputs are never similar.
func Similar(a, b string, threshold float64) bool {
	if a == "" || b == "" {
		return false
	}
	return Ratio(a, b) > threshold
}

// lcsLength computes the longest-common-subsequence length with a rolling
// two-row table.
func lcsLength(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
