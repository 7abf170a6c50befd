package driving

import (
	"context"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// SongService parses chord sheets and manages the song library.
type SongService interface {
	// Parse normalises a raw sheet and runs the post-processing pipeline
	// without storing the result.
	Parse(ctx context.Context, raw *domain.RawSheet) (*domain.LyricsWithChords, error)

	// Import parses a raw sheet and stores it as a new song.
	Import(ctx context.Context, raw *domain.RawSheet) (*domain.Song, error)

	// List returns all stored songs.
	List(ctx context.Context) ([]domain.Song, error)

	// Get retrieves a song by ID.
	Get(ctx context.Context, id string) (*domain.Song, error)

	// Delete removes a song.
	Delete(ctx context.Context, id string) error

	// Transpose shifts every chord of a stored song and saves it.
	Transpose(ctx context.Context, id string, semitones int) (*domain.Song, error)

	// Hints returns the editing hints for a stored song.
	Hints(ctx context.Context, id string) ([]domain.EditingHint, error)
}
