package driven

import (
	"context"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// SongStore persists normalised songs.
// Backed by SQLite for the CLI, in-memory for tests and the MCP server.
type SongStore interface {
	// SaveSong stores or updates a song.
	SaveSong(ctx context.Context, song *domain.Song) error

	// GetSong retrieves a song by ID.
	// Returns domain.ErrNotFound if no song has that ID.
	GetSong(ctx context.Context, id string) (*domain.Song, error)

	// FindSongByURI returns the oldest song imported from uri.
	// Returns domain.ErrNotFound if none was.
	FindSongByURI(ctx context.Context, uri string) (*domain.Song, error)

	// ListSongs returns all songs ordered by artist, then song name.
	ListSongs(ctx context.Context) ([]domain.Song, error)

	// DeleteSong removes a song.
	// Returns domain.ErrNotFound if no song has that ID.
	DeleteSong(ctx context.Context, id string) error
}
