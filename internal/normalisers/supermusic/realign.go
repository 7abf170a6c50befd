package supermusic

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/sheet"
)

type pendingChord struct {
	offset int
	chord  domain.Chord
}

// realignLine moves every chord that sits inside a word to the word
// boundary nearest its column, then tidies the line.
func realignLine(line domain.Nodes) domain.Nodes {
	boundaries := sheet.WordBoundaries(sheet.LineText(line))

	kept := make(domain.Nodes, 0, len(line))
	var pending []pendingChord
	column := 0
	for i, n := range line {
		switch v := n.(type) {
		case domain.Text:
			kept = append(kept, v)
			column += len(v)
		case domain.Chord:
			if misplaced(line, i) {
				pending = append(pending, pendingChord{
					offset: sheet.NearestBoundary(boundaries, column),
					chord:  v,
				})
				continue
			}
			kept = append(kept, v)
		default:
			panic(fmt.Sprintf("supermusic: unexpected %T inside a line", n))
		}
	}

	for _, p := range pending {
		kept = sheet.InsertChordAt(kept, p.offset, p.chord)
	}

	return sheet.SpaceAdjacentChords(sheet.DropEmptyText(kept))
}

// misplaced reports whether the chord at line[i] is glued to a word.
// A run of adjacent chords counts as one: the run must start at line
// start or after whitespace, and end at line end or before whitespace.
func misplaced(line domain.Nodes, i int) bool {
	before := i - 1
	for before >= 0 && domain.IsChord(line[before]) {
		before--
	}
	after := i + 1
	for after < len(line) && domain.IsChord(line[after]) {
		after++
	}

	precededOK := before < 0 || endsWithSpace(line[before])
	followedOK := after == len(line) || startsWithSpace(line[after])
	return !precededOK || !followedOK
}

func startsWithSpace(n domain.TextNode) bool {
	t, ok := n.(domain.Text)
	if !ok || t == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(string(t))
	return unicode.IsSpace(r)
}

func endsWithSpace(n domain.TextNode) bool {
	t, ok := n.(domain.Text)
	if !ok || t == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(string(t))
	return unicode.IsSpace(r)
}
