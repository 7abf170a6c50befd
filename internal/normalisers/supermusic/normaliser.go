package supermusic

import (
	"context"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/chords"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driven"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/sheet"
)

// Ensure Normaliser implements the interface.
var _ driven.SheetNormaliser = (*Normaliser)(nil)

// Normaliser handles supermusic inline-chord sheets.
type Normaliser struct{}

// New creates a new supermusic normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Dialect returns the dialect this normaliser handles.
func (n *Normaliser) Dialect() domain.Dialect {
	return domain.DialectSupermusic
}

// Normalise parses the sheet and realigns every line independently.
// Every source line, empty ones included, is kept. Czech flat names
// are rewritten to the Eb/Ab spelling.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawSheet, _ domain.Options) (*domain.LyricsWithChords, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	nodes, err := Parse(sheet.NormaliseLineEndings(raw.Content))
	if err != nil {
		return nil, err
	}

	lines := sheet.SplitLines(nodes)
	for i, line := range lines {
		lines[i] = realignLine(line)
	}

	text := chords.CzechFlats.ApplyNodes(sheet.JoinLines(lines))
	return domain.NewLyricsWithChords(text, raw.Artist, raw.SongName), nil
}
