// Package chords rewrites chord symbols: dialect-specific spelling fixes
// and transposition by a semitone offset.
package chords

import (
	"strings"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// Substitution rewrites a root spelling From into To.
type Substitution struct {
	From string
	To   string

	// KeepSus skips the rewrite when the root letter is followed by
	// "sus", so "Asus4" is not read as "As" + "us4".
	KeepSus bool
}

// Spelling is an ordered substitution table. The first entry whose From
// prefixes a root wins, so longer spellings must come first.
type Spelling []Substitution

// CzechFlats turns the German/Czech flat names used by supermusic into
// the flat spelling the transposer reads.
var CzechFlats = Spelling{
	{From: "Es", To: "Eb", KeepSus: true},
	{From: "As", To: "Ab", KeepSus: true},
}

// EuropeanB converts English note names from ultimate-guitar to the
// European naming, where H is the natural B and B is B-flat.
var EuropeanB = Spelling{
	{From: "Bb", To: "B"},
	{From: "B#", To: "C"},
	{From: "B", To: "H"},
}

// Spellings lists the tables by configuration name.
var Spellings = map[string]Spelling{
	"czech-flats": CzechFlats,
	"european-b":  EuropeanB,
}

// Apply rewrites the root of chord and of every bass note after a "/".
func (s Spelling) Apply(chord string) string {
	parts := strings.Split(chord, "/")
	for i, part := range parts {
		parts[i] = s.applyRoot(part)
	}
	return strings.Join(parts, "/")
}

func (s Spelling) applyRoot(part string) string {
	for _, sub := range s {
		if sub.KeepSus && len(part) > 1 && strings.HasPrefix(part[1:], "sus") {
			continue
		}
		if strings.HasPrefix(part, sub.From) {
			return sub.To + part[len(sub.From):]
		}
	}
	return part
}

// ApplyNodes returns a copy of nodes with every Chord respelled.
func (s Spelling) ApplyNodes(nodes domain.Nodes) domain.Nodes {
	out := nodes.Clone()
	for i, n := range out {
		if ch, ok := n.(domain.Chord); ok {
			out[i] = domain.Chord(s.Apply(string(ch)))
		}
	}
	return out
}
