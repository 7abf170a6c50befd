package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func testSong(id, artist, name string) *domain.Song {
	created := time.Date(2024, 2, 10, 8, 30, 0, 123456789, time.UTC)
	return &domain.Song{
		ID:      id,
		Dialect: domain.DialectUltimateGuitar,
		URI:     "/inbox/" + artist + " - " + name + ".tab",
		Lyrics: domain.LyricsWithChords{
			Artist:   artist,
			SongName: name,
			Text: domain.Nodes{
				domain.Newline{},
				domain.Chord("Am"), domain.Text("la la"), domain.Newline{},
				domain.Label("®:"), domain.Newline{},
				domain.Chord("H"), domain.Text("na na"),
			},
		},
		CreatedAt: created,
		UpdatedAt: created.Add(time.Minute),
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, DBName), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_RecordsSchemaVersion(t *testing.T) {
	store := setupTestStore(t)

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SongStore().SaveSong(ctx, testSong("s1", "Kabát", "Pohoda")))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.SongStore().GetSong(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Pohoda", got.Lyrics.SongName)

	version, err := reopened.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}

func TestMigrate_OnlyRunsNewVersions(t *testing.T) {
	store := setupTestStore(t)

	fsys := fstest.MapFS{
		"001_initial.up.sql":   {Data: []byte("this would fail if it ran again")},
		"002_songs_uri.up.sql": {Data: []byte("this would fail if it ran again")},
		"003_extra.up.sql":     {Data: []byte("CREATE TABLE extra (id TEXT PRIMARY KEY);")},
		"003_extra.down.sql":   {Data: []byte("DROP TABLE extra;")},
		"notes.txt":            {Data: []byte("ignored")},
		"abc_broken.up.sql":    {Data: []byte("ignored, no version")},
	}

	require.NoError(t, store.migrate(fsys))

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 3, version)

	_, err = store.db.Exec("INSERT INTO extra (id) VALUES ('x')")
	assert.NoError(t, err)
}

func TestMigrate_FailedScriptIsNotRecorded(t *testing.T) {
	store := setupTestStore(t)

	fsys := fstest.MapFS{
		"003_bad.up.sql": {Data: []byte("CREATE TABLE broken (")},
	}

	err := store.migrate(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "003_bad.up.sql")

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}
