package supermusic

import (
	"fmt"
	"strings"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// exportHeaderLines is the number of lines supermusic prepends to a
// downloaded sheet (title and a blank line).
const exportHeaderLines = 2

// TrimExportHeader drops the header lines of a supermusic export.
// Content shorter than the header becomes empty.
func TrimExportHeader(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= exportHeaderLines {
		return ""
	}
	return strings.Join(lines[exportHeaderLines:], "\n")
}

// SplitTitle splits a supermusic page title of the form "Artist - Song".
// Anything after a second separator is ignored.
func SplitTitle(title string) (artist, song string, err error) {
	parts := strings.Split(title, " - ")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("%w: title %q is not \"artist - song\"", domain.ErrInvalidInput, title)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}
