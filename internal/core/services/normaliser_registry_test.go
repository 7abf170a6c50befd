package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// mockNormaliser records what it was asked to normalise.
type mockNormaliser struct {
	dialect domain.Dialect
	err     error
	calls   int
	opts    domain.Options
}

func (m *mockNormaliser) Dialect() domain.Dialect { return m.dialect }

func (m *mockNormaliser) Normalise(
	_ context.Context,
	raw *domain.RawSheet,
	opts domain.Options,
) (*domain.LyricsWithChords, error) {
	m.calls++
	m.opts = opts
	if m.err != nil {
		return nil, m.err
	}
	return domain.NewLyricsWithChords(domain.Nodes{domain.Text(raw.Content)}, raw.Artist, raw.SongName), nil
}

func TestNewNormaliserRegistry(t *testing.T) {
	registry := NewNormaliserRegistry(
		&mockNormaliser{dialect: domain.DialectUltimateGuitar},
		&mockNormaliser{dialect: domain.DialectSupermusic},
	)

	assert.Equal(t, []domain.Dialect{domain.DialectSupermusic, domain.DialectUltimateGuitar}, registry.Dialects())
}

func TestNormaliserRegistry_DispatchesByDialect(t *testing.T) {
	sm := &mockNormaliser{dialect: domain.DialectSupermusic}
	ug := &mockNormaliser{dialect: domain.DialectUltimateGuitar}
	registry := NewNormaliserRegistry(sm, ug)
	opts := domain.Options{ChorusLabel: "R:"}

	got, err := registry.Normalise(context.Background(), &domain.RawSheet{
		Dialect:  domain.DialectUltimateGuitar,
		Content:  "la",
		Artist:   "A",
		SongName: "S",
	}, opts)

	require.NoError(t, err)
	assert.Equal(t, "A - S", got.Title())
	assert.Equal(t, 0, sm.calls)
	assert.Equal(t, 1, ug.calls)
	assert.Equal(t, opts, ug.opts)
}

func TestNormaliserRegistry_RegisterReplaces(t *testing.T) {
	first := &mockNormaliser{dialect: domain.DialectSupermusic}
	second := &mockNormaliser{dialect: domain.DialectSupermusic}
	registry := NewNormaliserRegistry(first)
	registry.Register(second)

	_, err := registry.Normalise(context.Background(), &domain.RawSheet{Dialect: domain.DialectSupermusic}, domain.DefaultOptions())

	require.NoError(t, err)
	assert.Equal(t, 0, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Len(t, registry.Dialects(), 1)
}

func TestNormaliserRegistry_UnknownDialect(t *testing.T) {
	registry := NewNormaliserRegistry(&mockNormaliser{dialect: domain.DialectSupermusic})

	_, err := registry.Normalise(context.Background(), &domain.RawSheet{Dialect: "chordpro"}, domain.DefaultOptions())

	assert.ErrorIs(t, err, domain.ErrUnsupportedDialect)
	assert.Contains(t, err.Error(), "chordpro")
}

func TestNormaliserRegistry_NilSheet(t *testing.T) {
	registry := NewNormaliserRegistry()

	_, err := registry.Normalise(context.Background(), nil, domain.DefaultOptions())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormaliserRegistry_PropagatesError(t *testing.T) {
	parseErr := &domain.ParseError{Dialect: domain.DialectSupermusic, Rule: "chord", Message: "unexpected EOF"}
	registry := NewNormaliserRegistry(&mockNormaliser{dialect: domain.DialectSupermusic, err: parseErr})

	_, err := registry.Normalise(context.Background(), &domain.RawSheet{Dialect: domain.DialectSupermusic}, domain.DefaultOptions())

	var pe *domain.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "chord", pe.Rule)
	assert.ErrorIs(t, err, domain.ErrParse)
}
