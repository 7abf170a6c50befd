package supermusic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.Equal(t, domain.DialectSupermusic, normaliser.Dialect())
}

func TestNormalise_Success(t *testing.T) {
	raw := &domain.RawSheet{
		Dialect:  domain.DialectSupermusic,
		Content:  "[C]Hello[G] world\n",
		Artist:   "Artist",
		SongName: "Song",
	}

	got, err := New().Normalise(context.Background(), raw, domain.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "Artist", got.Artist)
	assert.Equal(t, "Song", got.SongName)
	assert.Equal(t, domain.Nodes{
		domain.Chord("C"), domain.Text("Hello"), domain.Chord("G"), domain.Text(" world"), domain.Newline{},
	}, got.Text)
}

func TestNormalise_KeepsBlankLinesAndFixesFlats(t *testing.T) {
	raw := &domain.RawSheet{Content: "[Es]la [As]\r\n\r\nna"}

	got, err := New().Normalise(context.Background(), raw, domain.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, domain.Nodes{
		domain.Chord("Eb"), domain.Text("la "), domain.Chord("Ab"), domain.Newline{},
		domain.Newline{},
		domain.Text("na"),
	}, got.Text)
}

func TestNormalise_ParseError(t *testing.T) {
	_, err := New().Normalise(context.Background(), &domain.RawSheet{Content: "la [C"}, domain.DefaultOptions())
	assert.True(t, errors.Is(err, domain.ErrParse))
}

func TestNormalise_NilInput(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil, domain.DefaultOptions())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
