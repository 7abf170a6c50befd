package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLyricsWithChords_Title tests heading composition
func TestLyricsWithChords_Title(t *testing.T) {
	tests := []struct {
		artist, song, want string
	}{
		{"Kabát", "Pohoda", "Kabát - Pohoda"},
		{"", "Pohoda", "Pohoda"},
		{"Kabát", "", "Kabát"},
		{"", "", ""},
	}

	for _, tt := range tests {
		l := NewLyricsWithChords(nil, tt.artist, tt.song)
		assert.Equal(t, tt.want, l.Title())
	}
}

// TestLyricsWithChords_JSON tests the stored song body encoding
func TestLyricsWithChords_JSON(t *testing.T) {
	l := NewLyricsWithChords(Nodes{Chord("C"), Text("la")}, "Artist", "Song")

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `{"artist":"Artist","song_name":"Song","text":[{"Chord":"C"},{"Text":"la"}]}`, string(data))

	var back LyricsWithChords
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *l, back)
}

// TestDefaultOptions tests the default chorus label
func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, "®:", DefaultOptions().ChorusLabel)
}
