package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driven"
)

// timeLayout is how timestamps are written to TEXT columns.
const timeLayout = time.RFC3339Nano

// songStore implements driven.SongStore.
type songStore struct {
	store *Store
}

var _ driven.SongStore = (*songStore)(nil)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// SaveSong stores or updates a song.
func (s *songStore) SaveSong(ctx context.Context, song *domain.Song) error {
	if song == nil || song.ID == "" {
		return domain.ErrInvalidInput
	}

	lyricsJSON, err := json.Marshal(song.Lyrics.Text)
	if err != nil {
		return fmt.Errorf("marshalling lyrics: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO songs (id, dialect, uri, artist, song_name, lyrics, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			dialect = excluded.dialect,
			uri = excluded.uri,
			artist = excluded.artist,
			song_name = excluded.song_name,
			lyrics = excluded.lyrics,
			updated_at = excluded.updated_at
	`, song.ID, string(song.Dialect), nullString(song.URI),
		song.Lyrics.Artist, song.Lyrics.SongName, string(lyricsJSON),
		formatTime(song.CreatedAt), formatTime(song.UpdatedAt))

	if err != nil {
		return fmt.Errorf("saving song: %w", err)
	}
	return nil
}

// GetSong retrieves a song by ID.
func (s *songStore) GetSong(ctx context.Context, id string) (*domain.Song, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, dialect, uri, artist, song_name, lyrics, created_at, updated_at
		FROM songs WHERE id = ?
	`, id)

	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return song, nil
}

// FindSongByURI returns the oldest song imported from uri.
func (s *songStore) FindSongByURI(ctx context.Context, uri string) (*domain.Song, error) {
	if uri == "" {
		return nil, domain.ErrNotFound
	}

	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, dialect, uri, artist, song_name, lyrics, created_at, updated_at
		FROM songs WHERE uri = ?
		ORDER BY created_at, id
		LIMIT 1
	`, uri)

	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return song, nil
}

// ListSongs returns all songs ordered by artist, then song name.
func (s *songStore) ListSongs(ctx context.Context) ([]domain.Song, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, dialect, uri, artist, song_name, lyrics, created_at, updated_at
		FROM songs
		ORDER BY artist, song_name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying songs: %w", err)
	}
	defer rows.Close()

	songs := []domain.Song{}
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, *song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating songs: %w", err)
	}

	return songs, nil
}

// DeleteSong removes a song.
func (s *songStore) DeleteSong(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM songs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting song: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting song: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSong(row rowScanner) (*domain.Song, error) {
	var song domain.Song
	var dialect, lyricsJSON, createdAt, updatedAt string
	var uri sql.NullString
	if err := row.Scan(&song.ID, &dialect, &uri, &song.Lyrics.Artist, &song.Lyrics.SongName,
		&lyricsJSON, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning song: %w", err)
	}

	if err := json.Unmarshal([]byte(lyricsJSON), &song.Lyrics.Text); err != nil {
		return nil, fmt.Errorf("unmarshaling lyrics of %s: %w", song.ID, err)
	}

	var err error
	if song.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at of %s: %w", song.ID, err)
	}
	if song.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at of %s: %w", song.ID, err)
	}

	song.Dialect = domain.Dialect(dialect)
	song.URI = uri.String
	return &song, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// nullString converts an empty string to a NULL value.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
