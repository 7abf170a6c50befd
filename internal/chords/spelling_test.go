package chords

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

func TestCzechFlats(t *testing.T) {
	tests := map[string]string{
		"Es":     "Eb",
		"Esmaj7": "Ebmaj7",
		"As":     "Ab",
		"Asus4":  "Asus4",
		"Esus2":  "Esus2",
		"Essus4": "Ebsus4",
		"Am":     "Am",
		"C/As":   "C/Ab",
		"E":      "E",
	}

	for in, want := range tests {
		assert.Equal(t, want, CzechFlats.Apply(in), "chord %q", in)
	}
}

func TestEuropeanB(t *testing.T) {
	tests := map[string]string{
		"B":      "H",
		"Bm7":    "Hm7",
		"Bb":     "B",
		"Bbmaj":  "Bmaj",
		"B#":     "C",
		"G/B":    "G/H",
		"Bsus4":  "Hsus4",
		"Bbsus4": "Bsus4",
		"Bsus2":  "Hsus2",
		"C":      "C",
	}

	for in, want := range tests {
		assert.Equal(t, want, EuropeanB.Apply(in), "chord %q", in)
	}
}

func TestSpelling_ApplyNodes(t *testing.T) {
	nodes := domain.Nodes{domain.Chord("B"), domain.Text("B"), domain.Label("B"), domain.Newline{}}

	got := EuropeanB.ApplyNodes(nodes)

	assert.Equal(t, domain.Nodes{domain.Chord("H"), domain.Text("B"), domain.Label("B"), domain.Newline{}}, got)
	assert.Equal(t, domain.Chord("B"), nodes[0])
}

func TestSpellings_Registered(t *testing.T) {
	assert.Equal(t, CzechFlats, Spellings["czech-flats"])
	assert.Equal(t, EuropeanB, Spellings["european-b"])
}
