package domain

import "time"

// LyricsWithChords is a complete song body with its artist and title.
// It is built once by a dialect normaliser and afterwards only mutated
// by transposition.
type LyricsWithChords struct {
	// Artist is the performing artist.
	Artist string `json:"artist"`

	// SongName is the song title.
	SongName string `json:"song_name"`

	// Text is the whole song, lines separated by Newline nodes.
	Text Nodes `json:"text"`
}

// NewLyricsWithChords builds a song body from a complete node sequence.
func NewLyricsWithChords(text Nodes, artist, songName string) *LyricsWithChords {
	return &LyricsWithChords{
		Artist:   artist,
		SongName: songName,
		Text:     text,
	}
}

// Title returns the "Artist - Song" heading used by renderers.
func (l *LyricsWithChords) Title() string {
	switch {
	case l.Artist == "":
		return l.SongName
	case l.SongName == "":
		return l.Artist
	default:
		return l.Artist + " - " + l.SongName
	}
}

// Song is a LyricsWithChords stored in the library.
type Song struct {
	// ID is the unique identifier for the song.
	ID string `json:"id"`

	// Dialect is the markup dialect the song was parsed from.
	Dialect Dialect `json:"dialect"`

	// URI is where the markup came from (file path, URL), if known.
	URI string `json:"uri,omitempty"`

	// Lyrics is the normalised song body.
	Lyrics LyricsWithChords `json:"lyrics"`

	// CreatedAt is when the song was first imported.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the song was last changed.
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultChorusLabel is the marker substituted for chorus labels.
const DefaultChorusLabel = "®:"

// Options controls labelling of the normalised output.
type Options struct {
	// ChorusLabel replaces any label recognised as a chorus marker.
	ChorusLabel string `json:"chorus_label"`
}

// DefaultOptions returns Options with the default chorus label.
func DefaultOptions() Options {
	return Options{ChorusLabel: DefaultChorusLabel}
}
