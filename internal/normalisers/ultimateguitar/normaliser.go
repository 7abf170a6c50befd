package ultimateguitar

import (
	"context"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/chords"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driven"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/sheet"
)

// Ensure Normaliser implements the interface.
var _ driven.SheetNormaliser = (*Normaliser)(nil)

// Normaliser handles ultimate-guitar tab sheets.
type Normaliser struct{}

// New creates a new ultimate-guitar normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Dialect returns the dialect this normaliser handles.
func (n *Normaliser) Dialect() domain.Dialect {
	return domain.DialectUltimateGuitar
}

// Normalise parses the sheet, drops source blank lines, merges chord
// lines into the lyrics below them and converts chords to European
// note names.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawSheet, opts domain.Options) (*domain.LyricsWithChords, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if opts.ChorusLabel == "" {
		opts.ChorusLabel = domain.DefaultChorusLabel
	}

	nodes, err := Parse(StripWrappers(sheet.NormaliseLineEndings(raw.Content)))
	if err != nil {
		return nil, err
	}

	var lines []domain.Nodes
	for _, line := range sheet.SplitLines(nodes) {
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}

	text := chords.EuropeanB.ApplyNodes(sheet.JoinLines(mergeLines(lines, opts)))
	return domain.NewLyricsWithChords(text, raw.Artist, raw.SongName), nil
}
