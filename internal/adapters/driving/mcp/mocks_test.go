package mcp

import (
	"context"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driven/storage/memory"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/services"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/normalisers/supermusic"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/normalisers/ultimateguitar"
)

// mockSongService fails every call with err.
type mockSongService struct {
	err error
}

func (m *mockSongService) Parse(context.Context, *domain.RawSheet) (*domain.LyricsWithChords, error) {
	return nil, m.err
}

func (m *mockSongService) Import(context.Context, *domain.RawSheet) (*domain.Song, error) {
	return nil, m.err
}

func (m *mockSongService) List(context.Context) ([]domain.Song, error) {
	return nil, m.err
}

func (m *mockSongService) Get(context.Context, string) (*domain.Song, error) {
	return nil, m.err
}

func (m *mockSongService) Delete(context.Context, string) error {
	return m.err
}

func (m *mockSongService) Transpose(context.Context, string, int) (*domain.Song, error) {
	return nil, m.err
}

func (m *mockSongService) Hints(context.Context, string) ([]domain.EditingHint, error) {
	return nil, m.err
}

// newSongService wires a real song service over an in-memory library.
func newSongService() *services.SongService {
	registry := services.NewNormaliserRegistry(supermusic.New(), ultimateguitar.New())
	return services.NewSongService(registry, memory.NewSongStore(), nil, nil)
}
