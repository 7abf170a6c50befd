package sheet

import "github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"

// SpaceAdjacentChords returns a copy of line with a single-space Text
// inserted between every two directly adjacent chords.
func SpaceAdjacentChords(line domain.Nodes) domain.Nodes {
	out := make(domain.Nodes, 0, len(line))
	for i, n := range line {
		if i > 0 && domain.IsChord(n) && domain.IsChord(line[i-1]) {
			out = append(out, domain.Text(" "))
		}
		out = append(out, n)
	}
	return out
}

// DropEmptyText returns a copy of line without zero-length Text nodes.
func DropEmptyText(line domain.Nodes) domain.Nodes {
	out := make(domain.Nodes, 0, len(line))
	for _, n := range line {
		if t, ok := n.(domain.Text); ok && t == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}

// ChordsOnly keeps the chords of line, one space apart. Column spacing
// in a chord line describes slots, not intended gaps.
func ChordsOnly(line domain.Nodes) domain.Nodes {
	out := domain.Nodes{}
	for _, n := range line {
		ch, ok := n.(domain.Chord)
		if !ok {
			continue
		}
		if len(out) > 0 {
			out = append(out, domain.Text(" "))
		}
		out = append(out, ch)
	}
	return out
}
