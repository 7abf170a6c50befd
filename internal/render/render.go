package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// Renderer writes a song.
type Renderer interface {
	Render(w io.Writer, lyrics *domain.LyricsWithChords) error
}

// Ensure both renderers implement the interface.
var (
	_ Renderer = Plain{}
	_ Renderer = (*Terminal)(nil)
)

// nodeFormatter turns one node into output text.
type nodeFormatter struct {
	title func(string) string
	chord func(string) string
	label func(string) string
}

func (f nodeFormatter) write(w io.Writer, lyrics *domain.LyricsWithChords) error {
	if lyrics == nil {
		return domain.ErrInvalidInput
	}

	bw := bufio.NewWriter(w)
	if title := lyrics.Title(); title != "" {
		fmt.Fprintf(bw, "%s\n\n", f.title(title))
	}

	endsWithNewline := true
	for _, n := range lyrics.Text {
		switch v := n.(type) {
		case domain.Text:
			bw.WriteString(string(v))
		case domain.Chord:
			bw.WriteString(f.chord(string(v)))
		case domain.Label:
			bw.WriteString(f.label(string(v)))
		case domain.Newline:
			bw.WriteString("\n")
		default:
			return fmt.Errorf("render: unknown node type %T", n)
		}
		_, endsWithNewline = n.(domain.Newline)
	}
	if !endsWithNewline {
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Plain renders chords inline as [C].
type Plain struct{}

// Render writes lyrics to w.
func (Plain) Render(w io.Writer, lyrics *domain.LyricsWithChords) error {
	return plainFormatter.write(w, lyrics)
}

var plainFormatter = nodeFormatter{
	title: identity,
	chord: func(s string) string { return "[" + s + "]" },
	label: identity,
}

func identity(s string) string { return s }

// PlainString renders lyrics with the plain renderer.
func PlainString(lyrics *domain.LyricsWithChords) string {
	var sb strings.Builder
	if err := (Plain{}).Render(&sb, lyrics); err != nil {
		return ""
	}
	return sb.String()
}

// Terminal renders with colours.
type Terminal struct {
	styles *Styles
}

// NewTerminal creates a terminal renderer. A nil theme uses DefaultTheme.
func NewTerminal(theme *Theme) *Terminal {
	return &Terminal{styles: NewStyles(theme)}
}

// Render writes lyrics to w.
func (t *Terminal) Render(w io.Writer, lyrics *domain.LyricsWithChords) error {
	s := t.styles
	f := nodeFormatter{
		title: s.Title.Render,
		chord: func(c string) string {
			return s.Bracket.Render("[") + s.Chord.Render(c) + s.Bracket.Render("]")
		},
		label: s.Label.Render,
	}
	return f.write(w, lyrics)
}

// ForWriter picks Terminal when w is a terminal and Plain otherwise.
func ForWriter(w io.Writer) Renderer {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewTerminal(nil)
	}
	return Plain{}
}
