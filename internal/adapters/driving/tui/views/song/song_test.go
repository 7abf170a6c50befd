package song

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driven/storage/memory"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driving/tui/messages"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/services"
)

func testSong() domain.Song {
	return domain.Song{
		ID:      "s1",
		Dialect: domain.DialectSupermusic,
		Lyrics: domain.LyricsWithChords{
			Artist:   "Kabát",
			SongName: "Pohoda",
			Text: domain.Nodes{
				domain.Chord("C"), domain.Text("la "), domain.Chord("Am"), domain.Text("na"),
			},
		},
	}
}

func newTestView(t *testing.T) *View {
	t.Helper()
	store := memory.NewSongStore()
	song := testSong()
	require.NoError(t, store.SaveSong(context.Background(), &song))
	svc := services.NewSongService(services.NewNormaliserRegistry(), store, nil, nil)
	v := NewView(nil, nil, svc)
	v.SetSong(song)
	return v
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_NoSong(t *testing.T) {
	v := NewView(nil, nil, nil)

	assert.Nil(t, v.Song())
	assert.Empty(t, v.Content())
	assert.Contains(t, v.View(), "No song selected")

	_, cmd := v.Update(keyPress("+"))
	assert.Nil(t, cmd)
}

func TestView_SetSong(t *testing.T) {
	v := newTestView(t)

	require.NotNil(t, v.Song())
	assert.Equal(t, 0, v.Shift())
	assert.Contains(t, v.Content(), "Am")
	assert.Contains(t, v.View(), "supermusic")
}

func TestView_Transpose(t *testing.T) {
	v := newTestView(t)

	_, cmd := v.Update(keyPress("-"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.SongTransposed)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, -1, msg.Semitones)

	v, _ = v.Update(msg)

	assert.Equal(t, -1, v.Shift())
	assert.Equal(t, []string{"H", "Abm"}, v.Song().Lyrics.Text.Chords())
	assert.Contains(t, v.View(), "transposed -1")
}

func TestView_TransposeError(t *testing.T) {
	v := NewView(nil, nil, nil)
	v.SetSong(testSong())

	_, cmd := v.Update(keyPress("+"))
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())

	assert.Error(t, v.Err())
	assert.Equal(t, 0, v.Shift())
	assert.Equal(t, []string{"C", "Am"}, v.Song().Lyrics.Text.Chords())
}

func TestView_KeysEmitMessages(t *testing.T) {
	v := newTestView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewLibrary}, cmd())

	_, cmd = v.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.Quit{}, cmd())
}

func TestView_SetDimensions(t *testing.T) {
	v := NewView(nil, nil, nil)

	v.SetDimensions(10, 3)

	assert.Equal(t, 20, v.viewport.Width)
	assert.Equal(t, 1, v.viewport.Height)
}
