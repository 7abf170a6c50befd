// Package transpose provides a processor that shifts every chord by a
// fixed number of semitones.
package transpose

import (
	"context"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/chords"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// Name is the registry and config name of the processor.
const Name = "transpose"

// Processor transposes chords.
// It implements the PostProcessor interface.
type Processor struct {
	semitones int
}

// New creates a transpose processor.
func New(semitones int) *Processor {
	return &Processor{semitones: semitones}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Semitones returns the configured offset.
func (p *Processor) Semitones() int {
	return p.semitones
}

// Process transposes every chord. A zero offset leaves nodes untouched
// instead of re-rendering their spelling.
func (p *Processor) Process(_ context.Context, nodes domain.Nodes) (domain.Nodes, error) {
	if p.semitones == 0 {
		return nodes, nil
	}
	return chords.TransposeNodes(nodes, p.semitones)
}
