package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driven"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/logger"
)

// Ensure NormaliserRegistry implements the interface.
var _ driven.NormaliserRegistry = (*NormaliserRegistry)(nil)

// NormaliserRegistry dispatches raw sheets by dialect.
type NormaliserRegistry struct {
	mu          sync.RWMutex
	normalisers map[domain.Dialect]driven.SheetNormaliser
}

// NewNormaliserRegistry creates a registry holding the given normalisers.
func NewNormaliserRegistry(normalisers ...driven.SheetNormaliser) *NormaliserRegistry {
	r := &NormaliserRegistry{
		normalisers: make(map[domain.Dialect]driven.SheetNormaliser),
	}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Register adds a normaliser, replacing any previous one for its dialect.
func (r *NormaliserRegistry) Register(normaliser driven.SheetNormaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.normalisers[normaliser.Dialect()] = normaliser
}

// Dialects returns the registered dialects in sorted order.
func (r *NormaliserRegistry) Dialects() []domain.Dialect {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dialects := make([]domain.Dialect, 0, len(r.normalisers))
	for d := range r.normalisers {
		dialects = append(dialects, d)
	}
	sort.Slice(dialects, func(i, j int) bool { return dialects[i] < dialects[j] })
	return dialects
}

// Normalise transforms a raw sheet with the normaliser for its dialect.
func (r *NormaliserRegistry) Normalise(
	ctx context.Context,
	raw *domain.RawSheet,
	opts domain.Options,
) (*domain.LyricsWithChords, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	r.mu.RLock()
	normaliser, ok := r.normalisers[raw.Dialect]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedDialect, raw.Dialect)
	}

	defer logger.Stage(fmt.Sprintf("normalise %s", raw.Dialect))()
	return normaliser.Normalise(ctx, raw, opts)
}
