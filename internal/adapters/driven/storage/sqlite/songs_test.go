package sqlite

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

func TestSongStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	songs := setupTestStore(t).SongStore()

	song := testSong("s1", "Kabát", "Pohoda")
	require.NoError(t, songs.SaveSong(ctx, song))

	got, err := songs.GetSong(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, song, got)
}

func TestSongStore_SaveWithoutURI(t *testing.T) {
	ctx := context.Background()
	songs := setupTestStore(t).SongStore()

	song := testSong("s1", "A", "B")
	song.URI = ""
	require.NoError(t, songs.SaveSong(ctx, song))

	got, err := songs.GetSong(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got.URI)
}

func TestSongStore_SaveUpdates(t *testing.T) {
	ctx := context.Background()
	songs := setupTestStore(t).SongStore()

	song := testSong("s1", "Kabát", "Pohoda")
	require.NoError(t, songs.SaveSong(ctx, song))

	song.Lyrics.Text = domain.Nodes{domain.Chord("Bm"), domain.Text("la la")}
	song.UpdatedAt = song.UpdatedAt.Add(24 * time.Hour)
	require.NoError(t, songs.SaveSong(ctx, song))

	got, err := songs.GetSong(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, song.Lyrics.Text, got.Lyrics.Text)
	assert.Equal(t, song.UpdatedAt, got.UpdatedAt)
	assert.Equal(t, song.CreatedAt, got.CreatedAt)

	all, err := songs.ListSongs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSongStore_SaveRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	songs := setupTestStore(t).SongStore()

	assert.ErrorIs(t, songs.SaveSong(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, songs.SaveSong(ctx, &domain.Song{}), domain.ErrInvalidInput)
}

func TestSongStore_GetMissing(t *testing.T) {
	_, err := setupTestStore(t).SongStore().GetSong(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSongStore_ListOrdersByArtistThenName(t *testing.T) {
	ctx := context.Background()
	songs := setupTestStore(t).SongStore()

	require.NoError(t, songs.SaveSong(ctx, testSong("3", "Queen", "Bohemian Rhapsody")))
	require.NoError(t, songs.SaveSong(ctx, testSong("1", "Kabát", "Pohoda")))
	require.NoError(t, songs.SaveSong(ctx, testSong("2", "Kabát", "Dole v dole")))

	all, err := songs.ListSongs(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2", all[0].ID)
	assert.Equal(t, "1", all[1].ID)
	assert.Equal(t, "3", all[2].ID)
	assert.Equal(t, testSong("1", "Kabát", "Pohoda").Lyrics.Text, all[1].Lyrics.Text)
}

func TestSongStore_ListEmpty(t *testing.T) {
	all, err := setupTestStore(t).SongStore().ListSongs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestSongStore_FindByURI(t *testing.T) {
	ctx := context.Background()
	songs := setupTestStore(t).SongStore()

	older := testSong("s1", "Kabát", "Pohoda")
	newer := testSong("s2", "Kabát", "Pohoda")
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)
	require.NoError(t, songs.SaveSong(ctx, newer))
	require.NoError(t, songs.SaveSong(ctx, older))
	require.NoError(t, songs.SaveSong(ctx, testSong("s3", "Other", "Song")))

	got, err := songs.FindSongByURI(ctx, older.URI)
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)

	_, err = songs.FindSongByURI(ctx, "/inbox/missing.tab")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = songs.FindSongByURI(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSongStore_Delete(t *testing.T) {
	ctx := context.Background()
	songs := setupTestStore(t).SongStore()
	require.NoError(t, songs.SaveSong(ctx, testSong("s1", "A", "B")))

	require.NoError(t, songs.DeleteSong(ctx, "s1"))

	_, err := songs.GetSong(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, songs.DeleteSong(ctx, "s1"), domain.ErrNotFound)
}

func TestSongStore_CorruptLyrics(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	require.NoError(t, store.SongStore().SaveSong(ctx, testSong("s1", "A", "B")))

	_, err := store.db.Exec(`UPDATE songs SET lyrics = '[{"Bogus":1}]' WHERE id = 's1'`)
	require.NoError(t, err)

	_, err = store.SongStore().GetSong(ctx, "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshaling lyrics")
}

func TestSongStore_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	songs := setupTestStore(t).SongStore()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, songs.SaveSong(ctx, testSong(string(rune('a'+n)), "A", "B")))
		}(i)
	}
	wg.Wait()

	all, err := songs.ListSongs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}
