package ultimateguitar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

func TestParse(t *testing.T) {
	input := "[Verse 1]\n[ch]Am[/ch]   [ch]G/B[/ch]\nHello world"

	got, err := Parse(input)
	require.NoError(t, err)

	assert.Equal(t, domain.Nodes{
		domain.Label("Verse 1"), domain.Newline{},
		domain.Chord("Am"), domain.Text("   "), domain.Chord("G/B"), domain.Newline{},
		domain.Text("Hello world"),
	}, got)
}

func TestParse_BracketsAreLabels(t *testing.T) {
	got, err := Parse("[Intro] [x2]")
	require.NoError(t, err)
	assert.Equal(t, domain.Nodes{domain.Label("Intro"), domain.Text(" "), domain.Label("x2")}, got)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		rule   string
		offset int
	}{
		{"unclosed chord", "la\n[ch]C\n", "chord", 3},
		{"empty chord", "[ch][/ch]", "chord", 0},
		{"unclosed label", "ab [Verse", "label", 3},
		{"stray closing bracket", "ab]", "text", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrParse))

			var perr *domain.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, domain.DialectUltimateGuitar, perr.Dialect)
			assert.Equal(t, tt.rule, perr.Rule)
			assert.Equal(t, tt.offset, perr.Offset)
			assert.Equal(t, tt.input[tt.offset:], perr.Remaining)
		})
	}
}

func TestStripWrappers(t *testing.T) {
	assert.Equal(t, "[ch]C[/ch]\nla\n", StripWrappers("[tab][ch]C[/ch]\r\nla[/tab]\r\n"))
}
