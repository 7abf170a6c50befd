package sheet

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// InsertChordAt returns a copy of line with chord inserted at offset.
//
// The Text node whose span contains offset is located. When only
// whitespace follows the split point, the chord goes after that Text
// node and after any chords already sitting there, so it lands in front
// of the next word instead of inside the gap. Otherwise the Text node is
// split into left, chord, right; either part may be empty.
//
// When no Text node spans offset the chord is appended at the end.
func InsertChordAt(line domain.Nodes, offset int, chord domain.Chord) domain.Nodes {
	if offset < 0 {
		panic(fmt.Sprintf("sheet: negative chord offset %d", offset))
	}

	charIndex := 0
	for i, n := range line {
		mustBeLineNode(n, "InsertChordAt")
		text, ok := n.(domain.Text)
		if !ok {
			continue
		}

		if offset >= charIndex && offset <= charIndex+len(text) {
			split := offset - charIndex
			left, right := text[:split], text[split:]

			if strings.TrimRightFunc(string(right), unicode.IsSpace) == "" {
				at := i + 1
				for at < len(line) && domain.IsChord(line[at]) {
					at++
				}
				return insertAt(line, at, chord)
			}

			out := make(domain.Nodes, 0, len(line)+2)
			out = append(out, line[:i]...)
			out = append(out, left, chord, right)
			out = append(out, line[i+1:]...)
			return out
		}

		charIndex += len(text)
	}

	out := line.Clone()
	return append(out, chord)
}

func insertAt(line domain.Nodes, at int, n domain.TextNode) domain.Nodes {
	out := make(domain.Nodes, 0, len(line)+1)
	out = append(out, line[:at]...)
	out = append(out, n)
	out = append(out, line[at:]...)
	return out
}
