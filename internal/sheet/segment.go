// Package sheet holds the dialect-independent pieces of chord realignment:
// splitting a node sequence into lines, measuring text offsets, choosing
// word boundaries and inserting chords at an offset.
//
// Offsets are byte offsets over the concatenation of a line's Text
// nodes. Chord and Label nodes have zero width.
package sheet

import (
	"fmt"
	"strings"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// NormaliseLineEndings converts CRLF and lone CR line endings to "\n".
func NormaliseLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// SplitLines splits a flat node sequence at Newline nodes. A sequence
// with k Newline nodes always yields k+1 lines, so empty lines keep
// their position and JoinLines(SplitLines(ns)) reproduces ns.
func SplitLines(nodes domain.Nodes) []domain.Nodes {
	lines := []domain.Nodes{{}}
	for _, n := range nodes {
		if _, ok := n.(domain.Newline); ok {
			lines = append(lines, domain.Nodes{})
			continue
		}
		last := len(lines) - 1
		lines[last] = append(lines[last], n)
	}
	return lines
}

// JoinLines concatenates lines with a single Newline between each pair.
func JoinLines(lines []domain.Nodes) domain.Nodes {
	var out domain.Nodes
	for i, line := range lines {
		if i > 0 {
			out = append(out, domain.Newline{})
		}
		out = append(out, line...)
	}
	if out == nil {
		out = domain.Nodes{}
	}
	return out
}

// LineText returns the concatenated content of every Text node in line.
func LineText(line domain.Nodes) string {
	var b strings.Builder
	for _, n := range line {
		if t, ok := n.(domain.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

// HasChord reports whether line contains a Chord.
func HasChord(line domain.Nodes) bool {
	for _, n := range line {
		if domain.IsChord(n) {
			return true
		}
	}
	return false
}

// FirstLabel returns the first Label in line.
func FirstLabel(line domain.Nodes) (domain.Label, bool) {
	for _, n := range line {
		if l, ok := n.(domain.Label); ok {
			return l, true
		}
	}
	return "", false
}

// mustBeLineNode panics unless n may appear inside a realigned line.
func mustBeLineNode(n domain.TextNode, where string) {
	switch n.(type) {
	case domain.Text, domain.Chord:
	default:
		panic(fmt.Sprintf("sheet: %s: unexpected %T inside a text/chord line", where, n))
	}
}
