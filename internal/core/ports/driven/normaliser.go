package driven

import (
	"context"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// SheetNormaliser turns a raw chord sheet of one dialect into the
// canonical lyrics-with-chords form. Implementations are pure: the same
// input always produces the same output.
type SheetNormaliser interface {
	// Dialect returns the markup dialect this normaliser understands.
	Dialect() domain.Dialect

	// Normalise parses raw.Content and realigns chords onto word boundaries.
	// Returns a *domain.ParseError when the content is not well formed.
	Normalise(ctx context.Context, raw *domain.RawSheet, opts domain.Options) (*domain.LyricsWithChords, error)
}
