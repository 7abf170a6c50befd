package domain

import (
	"fmt"
	"strings"
)

// Dialect identifies a supported source markup convention.
type Dialect string

const (
	// DialectSupermusic is the inline bracket-chord dialect: any
	// non-empty [...] span is a chord written into the lyric line.
	DialectSupermusic Dialect = "supermusic"

	// DialectUltimateGuitar is the bracket-everything dialect:
	// [ch]...[/ch] is a chord, any other [...] span is a label, and
	// chords sit on their own line above the lyrics.
	DialectUltimateGuitar Dialect = "ultimate-guitar"
)

// Dialects returns all supported dialects.
func Dialects() []Dialect {
	return []Dialect{DialectSupermusic, DialectUltimateGuitar}
}

// ParseDialect resolves a dialect name. A few short aliases are accepted.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "supermusic", "sm", "inline":
		return DialectSupermusic, nil
	case "ultimate-guitar", "ultimateguitar", "ug", "bracket":
		return DialectUltimateGuitar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, s)
	}
}

// RawSheet is markup text ready for a dialect normaliser. Wrapper tags
// are already stripped and line endings are a single "\n".
type RawSheet struct {
	// Dialect selects the normaliser.
	Dialect Dialect

	// Content is the markup.
	Content string

	// Artist is the previously extracted artist name.
	Artist string

	// SongName is the previously extracted song title.
	SongName string

	// URI is where the markup came from, if known.
	URI string
}
