package chords

import (
	"fmt"
	"strings"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// twoCharRoots is checked, in order, before the single-letter table.
var twoCharRoots = []struct {
	prefix      string
	semitone    int
	susSemitone int
}{
	{"C#", 1, -1},
	{"D#", 3, -1},
	{"Eb", 3, 4},
	{"F#", 6, -1},
	{"G#", 8, -1},
	{"Ab", 8, 9},
	{"A#", 10, -1},
	{"Bb", 10, -1},
}

var naturalRoots = map[byte]int{
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
	'A': 9,
	'B': 10,
	'H': 11,
}

// canonical is the spelling used whenever a root is re-rendered.
var canonical = [12]string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "B", "H"}

// Transpose shifts the root of chord, and every bass note after a "/",
// by modifier semitones and re-renders them with the canonical spelling.
// The suffix after the root ("m7", "sus4") is kept.
//
// "Ebsu..." and "Absu..." keep a two-character root but are read as E
// and A, so "Ebsus4" transposes like "Esus4". CzechFlats leaves "Asus4"
// alone, so this reading only applies to chords supplied directly, never
// to a normalised supermusic sheet. Transposing by zero still re-renders,
// so "D#" comes back as "Eb".
//
// A root outside the tables returns ErrUnknownChordRoot instead of
// panicking. Chords arrive from user files, MCP requests and the TUI, and
// a bad chord must not take those down; TransposeNodes works on a copy so
// nothing is left half transposed.
func Transpose(chord string, modifier int) (string, error) {
	parts := strings.Split(chord, "/")
	for i, part := range parts {
		t, err := transposeRoot(part, modifier)
		if err != nil {
			return "", fmt.Errorf("chord %q: %w", chord, err)
		}
		parts[i] = t
	}
	return strings.Join(parts, "/"), nil
}

func transposeRoot(part string, modifier int) (string, error) {
	semitone, rootLen, err := classifyRoot(part)
	if err != nil {
		return "", err
	}
	shifted := ((semitone+modifier)%12 + 12) % 12
	return canonical[shifted] + part[rootLen:], nil
}

// classifyRoot returns the semitone index of part's root and how many
// bytes of part the root occupies.
func classifyRoot(part string) (semitone, rootLen int, err error) {
	for _, r := range twoCharRoots {
		if !strings.HasPrefix(part, r.prefix) {
			continue
		}
		if r.susSemitone >= 0 && strings.HasPrefix(part, r.prefix+"su") {
			return r.susSemitone, 2, nil
		}
		return r.semitone, 2, nil
	}

	if part == "" {
		return 0, 0, fmt.Errorf("%w: empty root", domain.ErrUnknownChordRoot)
	}
	semitone, ok := naturalRoots[part[0]]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrUnknownChordRoot, part)
	}
	return semitone, 1, nil
}

// TransposeNodes returns a copy of nodes with every chord transposed.
// The first malformed chord aborts the whole operation.
func TransposeNodes(nodes domain.Nodes, modifier int) (domain.Nodes, error) {
	out := nodes.Clone()
	for i, n := range out {
		ch, ok := n.(domain.Chord)
		if !ok {
			continue
		}
		t, err := Transpose(string(ch), modifier)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		out[i] = domain.Chord(t)
	}
	return out, nil
}

// TransposeSong transposes song in place. On error song is unchanged.
func TransposeSong(song *domain.LyricsWithChords, modifier int) error {
	text, err := TransposeNodes(song.Text, modifier)
	if err != nil {
		return err
	}
	song.Text = text
	return nil
}
