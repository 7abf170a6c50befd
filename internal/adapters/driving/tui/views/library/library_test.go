package library

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driven/storage/memory"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driving/tui/messages"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/services"
)

func newService(store *memory.SongStore) *services.SongService {
	return services.NewSongService(services.NewNormaliserRegistry(), store, nil, nil)
}

func testSongs() []domain.Song {
	return []domain.Song{
		{ID: "a", Dialect: domain.DialectSupermusic, Lyrics: domain.LyricsWithChords{Artist: "Kabát", SongName: "Pohoda"}},
		{ID: "b", Dialect: domain.DialectUltimateGuitar, Lyrics: domain.LyricsWithChords{SongName: "Wonderwall"}},
		{ID: "c", Dialect: domain.DialectSupermusic},
	}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_Init_LoadsSongs(t *testing.T) {
	store := memory.NewSongStore()
	for _, song := range testSongs() {
		song := song
		require.NoError(t, store.SaveSong(context.Background(), &song))
	}
	v := NewView(nil, nil, newService(store))

	cmd := v.Init()
	require.NotNil(t, cmd)
	assert.Contains(t, v.View(), "Loading songs...")

	loaded, ok := cmd().(messages.SongsLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Len(t, loaded.Songs, 3)
}

func TestView_Init_NoService(t *testing.T) {
	v := NewView(nil, nil, nil)

	loaded, ok := v.Init()().(messages.SongsLoaded)
	require.True(t, ok)
	assert.Error(t, loaded.Err)
}

func TestView_Navigation(t *testing.T) {
	v := NewView(nil, nil, nil)
	v, _ = v.Update(messages.SongsLoaded{Songs: testSongs()})

	song, ok := v.SelectedSong()
	require.True(t, ok)
	assert.Equal(t, "a", song.ID)

	v, _ = v.Update(keyPress("j"))
	v, _ = v.Update(keyPress("j"))
	v, _ = v.Update(keyPress("j"))
	song, _ = v.SelectedSong()
	assert.Equal(t, "c", song.ID)

	v, _ = v.Update(keyPress("k"))
	song, _ = v.SelectedSong()
	assert.Equal(t, "b", song.ID)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	selected, ok := cmd().(messages.SongSelected)
	require.True(t, ok)
	assert.Equal(t, "b", selected.Song.ID)
}

func TestView_SelectionClampedOnReload(t *testing.T) {
	v := NewView(nil, nil, nil)
	v, _ = v.Update(messages.SongsLoaded{Songs: testSongs()})
	v, _ = v.Update(keyPress("j"))
	v, _ = v.Update(keyPress("j"))

	v, _ = v.Update(messages.SongsLoaded{Songs: testSongs()[:1]})

	song, ok := v.SelectedSong()
	require.True(t, ok)
	assert.Equal(t, "a", song.ID)
}

func TestView_EnterOnEmptyLibrary(t *testing.T) {
	v := NewView(nil, nil, nil)
	v, _ = v.Update(messages.SongsLoaded{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Contains(t, v.View(), "No songs imported yet")
}

func TestView_Delete(t *testing.T) {
	store := memory.NewSongStore()
	for _, song := range testSongs() {
		song := song
		require.NoError(t, store.SaveSong(context.Background(), &song))
	}
	svc := newService(store)
	v := NewView(nil, nil, svc)
	v, _ = v.Update(messages.SongsLoaded{Songs: testSongs()})

	_, cmd := v.Update(keyPress("x"))
	require.NotNil(t, cmd)
	deleted, ok := cmd().(messages.SongDeleted)
	require.True(t, ok)
	require.NoError(t, deleted.Err)
	assert.Equal(t, "a", deleted.ID)

	v, cmd = v.Update(deleted)
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())

	assert.Len(t, v.Songs(), 2)
	assert.Contains(t, v.View(), "Deleted a")
}

func TestView_Render(t *testing.T) {
	v := NewView(nil, nil, nil)
	v.SetDimensions(80, 24)
	v, _ = v.Update(messages.SongsLoaded{Songs: testSongs()})

	out := v.View()

	assert.Contains(t, out, "Song Library (3)")
	assert.Contains(t, out, "> Kabát - Pohoda")
	assert.Contains(t, out, "Wonderwall")
	assert.Contains(t, out, "(Untitled)")
}

func TestView_LoadError(t *testing.T) {
	v := NewView(nil, nil, nil)
	v, _ = v.Update(messages.SongsLoaded{Err: errors.New("disk on fire")})

	assert.Error(t, v.Err())
	assert.Contains(t, v.View(), "Error: disk on fire")
}

func TestView_KeysEmitMessages(t *testing.T) {
	v := NewView(nil, nil, nil)

	_, cmd := v.Update(keyPress("?"))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHelp}, cmd())

	_, cmd = v.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.Quit{}, cmd())
}
