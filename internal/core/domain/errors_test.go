package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedDialect", ErrUnsupportedDialect},
		{"ErrParse", ErrParse},
		{"ErrUnknownChordRoot", ErrUnknownChordRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}

// TestErrors_Wrapped tests that wrapped sentinels still match
func TestErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("song %q: %w", "abc", ErrNotFound)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrParse))
}

// TestParseError_Error tests the formatted message
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Dialect:   DialectSupermusic,
		Rule:      "chord",
		Message:   "invalid input text",
		Offset:    5,
		Remaining: "[C",
	}

	assert.Equal(t, `supermusic: chord: invalid input text at offset 5: "[C"`, err.Error())
}

// TestParseError_Unwrap tests that ParseError matches ErrParse
func TestParseError_Unwrap(t *testing.T) {
	var err error = &ParseError{Dialect: DialectUltimateGuitar, Rule: "label"}
	wrapped := fmt.Errorf("import: %w", err)

	assert.True(t, errors.Is(wrapped, ErrParse))

	var perr *ParseError
	require.True(t, errors.As(wrapped, &perr))
	assert.Equal(t, "label", perr.Rule)
}
