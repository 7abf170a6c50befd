package ultimateguitar

import (
	"fmt"
	"strings"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/sheet"
)

// ChordWidth is the number of columns a chord is assumed to occupy in a
// chord line once its [ch] markup is stripped.
const ChordWidth = 3

// mergeLines realigns a sheet that is already split into non-empty lines.
//
// Label lines become a blank line; chorus labels additionally keep the
// configured chorus marker. Chord lines are reduced to their chords. A
// lyric line directly below a chord line replaces that chord line with
// the two merged.
func mergeLines(lines []domain.Nodes, opts domain.Options) []domain.Nodes {
	merged := make([]domain.Nodes, 0, len(lines))
	for i, line := range lines {
		if label, ok := sheet.FirstLabel(line); ok {
			merged = append(merged, domain.Nodes{})
			if isChorus(label) {
				merged = append(merged, domain.Nodes{domain.Label(opts.ChorusLabel)})
			}
			continue
		}

		if sheet.HasChord(line) {
			merged = append(merged, sheet.ChordsOnly(line))
			continue
		}

		if i == 0 || !isChordLine(lines[i-1]) {
			merged = append(merged, line)
			continue
		}

		merged[len(merged)-1] = mergePair(lines[i-1], line)
	}
	return merged
}

// mergePair places the chords of chordLine onto lyricLine at the word
// boundary nearest the column each chord had in the chord line.
func mergePair(chordLine, lyricLine domain.Nodes) domain.Nodes {
	text := sheet.LineText(lyricLine)
	boundaries := sheet.WordBoundaries(text)

	out := domain.Nodes{domain.Text(text)}
	column := 0
	for _, n := range chordLine {
		switch v := n.(type) {
		case domain.Text:
			column += len(v)
		case domain.Chord:
			out = sheet.InsertChordAt(out, sheet.NearestBoundary(boundaries, column), v)
			column += ChordWidth
		default:
			panic(fmt.Sprintf("ultimateguitar: unexpected %T in chord line", n))
		}
	}

	return sheet.SpaceAdjacentChords(sheet.DropEmptyText(out))
}

func isChordLine(line domain.Nodes) bool {
	_, labelled := sheet.FirstLabel(line)
	return !labelled && sheet.HasChord(line)
}

func isChorus(label domain.Label) bool {
	return strings.Contains(strings.ToLower(string(label)), "chorus")
}
