package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driven"
)

// Ensure SongStore implements the interface.
var _ driven.SongStore = (*SongStore)(nil)

// SongStore is an in-memory song library. Songs are copied on the way
// in and out so callers never share node slices with the store.
type SongStore struct {
	mu    sync.RWMutex
	songs map[string]domain.Song
}

// NewSongStore creates an empty in-memory song store.
func NewSongStore() *SongStore {
	return &SongStore{
		songs: make(map[string]domain.Song),
	}
}

// SaveSong stores or updates a song.
func (s *SongStore) SaveSong(ctx context.Context, song *domain.Song) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if song == nil || song.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.songs[song.ID] = copySong(*song)
	return nil
}

// GetSong retrieves a song by ID.
func (s *SongStore) GetSong(ctx context.Context, id string) (*domain.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	song, ok := s.songs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := copySong(song)
	return &out, nil
}

// FindSongByURI returns the oldest song imported from uri.
func (s *SongStore) FindSongByURI(ctx context.Context, uri string) (*domain.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if uri == "" {
		return nil, domain.ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *domain.Song
	for _, song := range s.songs {
		if song.URI != uri {
			continue
		}
		if found == nil || song.CreatedAt.Before(found.CreatedAt) ||
			(song.CreatedAt.Equal(found.CreatedAt) && song.ID < found.ID) {
			out := copySong(song)
			found = &out
		}
	}
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

// ListSongs returns all songs ordered by artist, then song name.
func (s *SongStore) ListSongs(ctx context.Context) ([]domain.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	result := make([]domain.Song, 0, len(s.songs))
	for _, song := range s.songs {
		result = append(result, copySong(song))
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].Lyrics, result[j].Lyrics
		if a.Artist != b.Artist {
			return a.Artist < b.Artist
		}
		if a.SongName != b.SongName {
			return a.SongName < b.SongName
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// DeleteSong removes a song.
func (s *SongStore) DeleteSong(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.songs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.songs, id)
	return nil
}

func copySong(song domain.Song) domain.Song {
	song.Lyrics.Text = song.Lyrics.Text.Clone()
	return song
}
