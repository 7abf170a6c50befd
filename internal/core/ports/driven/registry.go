package driven

import (
	"context"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// NormaliserRegistry dispatches raw sheets to the normaliser for their dialect.
type NormaliserRegistry interface {
	// Normalise transforms a raw sheet using the normaliser registered for raw.Dialect.
	// Returns domain.ErrUnsupportedDialect if none is registered.
	Normalise(ctx context.Context, raw *domain.RawSheet, opts domain.Options) (*domain.LyricsWithChords, error)

	// Register adds a normaliser, replacing any previous one for the same dialect.
	Register(normaliser SheetNormaliser)

	// Dialects returns the registered dialects in sorted order.
	Dialects() []domain.Dialect
}
