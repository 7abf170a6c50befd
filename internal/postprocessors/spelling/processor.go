// Package spelling provides a processor that rewrites chord roots with a
// substitution table.
package spelling

import (
	"context"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/chords"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// Name is the registry and config name of the processor.
const Name = "spelling"

// Processor respells chords.
type Processor struct {
	table string
	sp    chords.Spelling
}

// New creates a spelling processor for the named table.
func New(table string, sp chords.Spelling) *Processor {
	return &Processor{table: table, sp: sp}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Table returns the configured table name.
func (p *Processor) Table() string {
	return p.table
}

// Process applies the table to every chord.
func (p *Processor) Process(_ context.Context, nodes domain.Nodes) (domain.Nodes, error) {
	return p.sp.ApplyNodes(nodes), nil
}
