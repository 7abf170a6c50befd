package inbox

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/normalisers/supermusic"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DialectForPath picks the dialect for a sheet file by extension.
// ".tab" is Ultimate Guitar, ".txt" is defaultDialect. Other extensions
// are not sheet files.
func DialectForPath(path string, defaultDialect domain.Dialect) (domain.Dialect, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tab":
		return domain.DialectUltimateGuitar, true
	case ".txt":
		return defaultDialect, true
	default:
		return "", false
	}
}

// DecodeText returns data as UTF-8. A leading byte order mark is dropped;
// input that is not valid UTF-8 is decoded as Windows-1250, the code page
// of Czech and Slovak song-sheet exports.
func DecodeText(data []byte) (string, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	reader := transform.NewReader(bytes.NewReader(data), charmap.Windows1250.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("decoding as windows-1250: %w", err)
	}
	return string(decoded), nil
}

// TitleFromPath derives artist and song name from "Artist - Song.ext".
// A name without the separator becomes the song name alone.
func TitleFromPath(path string) (artist, song string) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	artist, song, err := supermusic.SplitTitle(base)
	if err != nil {
		return "", strings.TrimSpace(base)
	}
	return artist, song
}

// ReadSheet loads a sheet file into a RawSheet ready for import.
func ReadSheet(path string, defaultDialect domain.Dialect) (*domain.RawSheet, error) {
	dialect, ok := DialectForPath(path, defaultDialect)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a .txt or .tab file", domain.ErrInvalidInput, filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	content, err := DecodeText(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	artist, song := TitleFromPath(path)
	return &domain.RawSheet{
		Dialect:  dialect,
		Content:  content,
		Artist:   artist,
		SongName: song,
		URI:      path,
	}, nil
}
