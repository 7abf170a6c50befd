package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/chords"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driven"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driving"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/logger"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/sheet"
)

// Ensure SongService implements the interface.
var _ driving.SongService = (*SongService)(nil)

// SongService parses chord sheets and manages the song library.
type SongService struct {
	registry driven.NormaliserRegistry
	store    driven.SongStore
	pipeline driven.PostProcessorPipeline
	settings driving.SettingsService
	now      func() time.Time
}

// NewSongService creates a new song service.
// The pipeline and settings are optional: without a pipeline normalised
// sheets are stored as-is, without settings the default options and
// dialect are used.
func NewSongService(
	registry driven.NormaliserRegistry,
	store driven.SongStore,
	pipeline driven.PostProcessorPipeline,
	settings driving.SettingsService,
) *SongService {
	return &SongService{
		registry: registry,
		store:    store,
		pipeline: pipeline,
		settings: settings,
		now:      time.Now,
	}
}

// Parse normalises a raw sheet and runs the post-processing pipeline.
func (s *SongService) Parse(ctx context.Context, raw *domain.RawSheet) (*domain.LyricsWithChords, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if s.registry == nil {
		return nil, fmt.Errorf("parse: no normaliser registry configured")
	}

	sheetCopy := *raw
	if sheetCopy.Dialect == "" {
		sheetCopy.Dialect = s.defaultDialect()
	}

	logger.Section("Parse")
	logger.Debug("Dialect: %s, %d bytes", sheetCopy.Dialect, len(sheetCopy.Content))

	lyrics, err := s.registry.Normalise(ctx, &sheetCopy, s.options())
	if err != nil {
		return nil, fmt.Errorf("normalise: %w", err)
	}
	logger.Debug("Normalised into %d nodes, %d chords", len(lyrics.Text), len(lyrics.Text.Chords()))

	if s.pipeline != nil {
		done := logger.Stage("postprocess")
		text, err := s.pipeline.Process(ctx, lyrics.Text)
		done()
		if err != nil {
			return nil, fmt.Errorf("postprocess: %w", err)
		}
		lyrics.Text = text
	}

	return lyrics, nil
}

// Import parses a raw sheet and stores it as a new song. A sheet whose
// URI matches a stored song replaces that song's lyrics instead, keeping
// its ID and CreatedAt, so re-importing an edited file does not duplicate it.
func (s *SongService) Import(ctx context.Context, raw *domain.RawSheet) (*domain.Song, error) {
	if s.store == nil {
		return nil, fmt.Errorf("import: no song store configured")
	}

	lyrics, err := s.Parse(ctx, raw)
	if err != nil {
		return nil, err
	}

	dialect := raw.Dialect
	if dialect == "" {
		dialect = s.defaultDialect()
	}

	existing, err := s.findByURI(ctx, raw.URI)
	if err != nil {
		return nil, err
	}

	now := s.now()
	song := &domain.Song{
		ID:        uuid.New().String(),
		Dialect:   dialect,
		URI:       raw.URI,
		Lyrics:    *lyrics,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing != nil {
		song.ID = existing.ID
		song.CreatedAt = existing.CreatedAt
	}

	if err := s.store.SaveSong(ctx, song); err != nil {
		return nil, fmt.Errorf("save song: %w", err)
	}

	if existing != nil {
		logger.Info("Updated %q (%s) from %s", song.Lyrics.Title(), song.ID, song.URI)
	} else {
		logger.Info("Imported %q as %s", song.Lyrics.Title(), song.ID)
	}
	return song, nil
}

func (s *SongService) findByURI(ctx context.Context, uri string) (*domain.Song, error) {
	if uri == "" {
		return nil, nil
	}
	song, err := s.store.FindSongByURI(ctx, uri)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find song by uri: %w", err)
	}
	return song, nil
}

// List returns all stored songs.
func (s *SongService) List(ctx context.Context) ([]domain.Song, error) {
	if s.store == nil {
		return nil, fmt.Errorf("list: no song store configured")
	}
	return s.store.ListSongs(ctx)
}

// Get retrieves a song by ID.
func (s *SongService) Get(ctx context.Context, id string) (*domain.Song, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: song id is required", domain.ErrInvalidInput)
	}
	if s.store == nil {
		return nil, fmt.Errorf("get: no song store configured")
	}
	return s.store.GetSong(ctx, id)
}

// Delete removes a song.
func (s *SongService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: song id is required", domain.ErrInvalidInput)
	}
	if s.store == nil {
		return fmt.Errorf("delete: no song store configured")
	}
	return s.store.DeleteSong(ctx, id)
}

// Transpose shifts every chord of a stored song and saves it. A failed
// transposition leaves the stored song unchanged.
func (s *SongService) Transpose(ctx context.Context, id string, semitones int) (*domain.Song, error) {
	song, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := chords.TransposeSong(&song.Lyrics, semitones); err != nil {
		return nil, fmt.Errorf("transpose: %w", err)
	}
	song.UpdatedAt = s.now()

	if err := s.store.SaveSong(ctx, song); err != nil {
		return nil, fmt.Errorf("save song: %w", err)
	}

	logger.Info("Transposed %s by %+d", song.ID, semitones)
	return song, nil
}

// Hints returns the editing hints for a stored song.
func (s *SongService) Hints(ctx context.Context, id string) ([]domain.EditingHint, error) {
	song, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return sheet.EditingHints(song.Lyrics.Text), nil
}

func (s *SongService) options() domain.Options {
	if s.settings == nil {
		return domain.DefaultOptions()
	}
	return s.settings.Options()
}

func (s *SongService) defaultDialect() domain.Dialect {
	if s.settings == nil {
		return domain.DefaultAppSettings().Import.Dialect
	}
	settings, err := s.settings.Get()
	if err != nil || settings.Import.Dialect == "" {
		return domain.DefaultAppSettings().Import.Dialect
	}
	return settings.Import.Dialect
}
