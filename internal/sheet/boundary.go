package sheet

import "strings"

// WordBoundaries returns the start and end offset of every token of
// text split on single spaces, in ascending order with consecutive
// duplicates removed. The text "ab cd" yields [0 2 3 5]; an empty text
// yields [0].
func WordBoundaries(text string) []int {
	var out []int
	index := 0
	for i, token := range strings.Split(text, " ") {
		if i != 0 {
			index++
		}
		out = appendDistinct(out, index)
		out = appendDistinct(out, index+len(token))
		index += len(token)
	}
	return out
}

func appendDistinct(out []int, v int) []int {
	if len(out) > 0 && out[len(out)-1] == v {
		return out
	}
	return append(out, v)
}

// NearestBoundary returns the boundary with the smallest absolute
// distance to column. Ties go to the boundary seen first, which for
// WordBoundaries output is the lower one.
//
// boundaries must not be empty.
func NearestBoundary(boundaries []int, column int) int {
	if len(boundaries) == 0 {
		panic("sheet: NearestBoundary called without boundaries")
	}
	best := boundaries[0]
	bestDiff := absDiff(best, column)
	for _, b := range boundaries[1:] {
		if d := absDiff(b, column); d < bestDiff {
			best, bestDiff = b, d
		}
	}
	return best
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
