// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLibrary lists the stored songs.
	ViewLibrary ViewType = iota
	// ViewSong shows one song with its chords.
	ViewSong
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLibrary:
		return "library"
	case ViewSong:
		return "song"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SongsLoaded carries the song library from the service.
type SongsLoaded struct {
	Songs []domain.Song
	Err   error
}

// SongSelected signals a song was opened from the library.
type SongSelected struct {
	Song domain.Song
}

// SongTransposed carries a song after a stored transposition.
type SongTransposed struct {
	Song      *domain.Song
	Semitones int
	Err       error
}

// SongDeleted signals a song was removed from the library.
type SongDeleted struct {
	ID  string
	Err error
}
