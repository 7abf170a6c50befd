// Package song provides the song view for the TUI.
package song

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driving/tui/keymap"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driving/tui/messages"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driving/tui/styles"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driving"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/render"
)

// View shows one song and transposes it in place.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	help        help.Model
	songService driving.SongService
	renderer    render.Renderer
	viewport    viewport.Model

	song *domain.Song

	// shift is the net transposition applied since the song was opened.
	shift int

	err    error
	width  int
	height int
}

// NewView creates a new song view.
func NewView(s *styles.Styles, km *keymap.KeyMap, songService driving.SongService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	v := &View{
		styles:      s,
		keymap:      km,
		help:        help.New(),
		songService: songService,
		renderer:    s.SongRenderer(),
		viewport:    viewport.New(76, 18),
	}
	v.SetDimensions(80, 24)
	return v
}

// SetSong opens song.
func (v *View) SetSong(song domain.Song) {
	v.song = &song
	v.shift = 0
	v.err = nil
	v.refresh()
	v.viewport.GotoTop()
}

func (v *View) refresh() {
	if v.song == nil {
		v.viewport.SetContent("")
		return
	}
	var b strings.Builder
	if err := v.renderer.Render(&b, &v.song.Lyrics); err != nil {
		v.err = err
		return
	}
	v.viewport.SetContent(b.String())
}

func (v *View) transpose(semitones int) tea.Cmd {
	if v.song == nil {
		return nil
	}
	svc := v.songService
	id := v.song.ID
	return func() tea.Msg {
		if svc == nil {
			return messages.SongTransposed{Err: errors.New("song service not available")}
		}
		song, err := svc.Transpose(context.Background(), id, semitones)
		return messages.SongTransposed{Song: song, Semitones: semitones, Err: err}
	}
}

// Update handles messages for the song view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SongTransposed:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.song = msg.Song
		v.shift += msg.Semitones
		v.refresh()
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewLibrary}
			}
		case key.Matches(msg, v.keymap.TransposeUp):
			return v, v.transpose(1)
		case key.Matches(msg, v.keymap.TransposeDown):
			return v, v.transpose(-1)
		case key.Matches(msg, v.keymap.Quit):
			return v, func() tea.Msg {
				return messages.Quit{}
			}
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the song view.
func (v *View) View() string {
	if v.song == nil {
		return v.styles.Muted.Render("No song selected") + "\n\n" + v.help.ShortHelpView(v.keymap.SongHelp())
	}

	var b strings.Builder
	b.WriteString(v.styles.Page.Render(v.viewport.View()))
	b.WriteString("\n")

	info := fmt.Sprintf("%s  %d%%", v.song.Dialect, int(v.viewport.ScrollPercent()*100))
	if v.shift != 0 {
		info = fmt.Sprintf("%s  transposed %+d", info, v.shift)
	}
	b.WriteString(v.styles.Muted.Render(info))
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	}
	b.WriteString(v.help.ShortHelpView(v.keymap.SongHelp()))

	return b.String()
}

// SetDimensions sets the view dimensions. The border, info line and help
// take six rows.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width

	v.viewport.Width = max(width-4, 20)
	v.viewport.Height = max(height-6, 1)
}

// Song returns the open song.
func (v *View) Song() *domain.Song {
	return v.song
}

// Shift returns the net transposition applied since the song was opened.
func (v *View) Shift() int {
	return v.shift
}

// Content returns the rendered song body.
func (v *View) Content() string {
	if v.song == nil {
		return ""
	}
	var b strings.Builder
	_ = v.renderer.Render(&b, &v.song.Lyrics)
	return b.String()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
