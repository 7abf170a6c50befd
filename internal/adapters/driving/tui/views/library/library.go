// Package library provides the song list view for the TUI.
package library

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driving/tui/keymap"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driving/tui/messages"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driving/tui/styles"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driving"
)

var errNoSongService = errors.New("song service not available")

// View is the song library view.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	help        help.Model
	songService driving.SongService

	songs    []domain.Song
	selected int
	status   string
	loading  bool
	err      error
	width    int
	height   int
}

// NewView creates a new library view.
func NewView(s *styles.Styles, km *keymap.KeyMap, songService driving.SongService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:      s,
		keymap:      km,
		help:        help.New(),
		songService: songService,
		width:       80,
		height:      24,
	}
}

// Init loads the library.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadSongs()
}

func (v *View) loadSongs() tea.Cmd {
	svc := v.songService
	return func() tea.Msg {
		if svc == nil {
			return messages.SongsLoaded{Err: errNoSongService}
		}
		songs, err := svc.List(context.Background())
		return messages.SongsLoaded{Songs: songs, Err: err}
	}
}

func (v *View) deleteSong(id string) tea.Cmd {
	svc := v.songService
	return func() tea.Msg {
		if svc == nil {
			return messages.SongDeleted{ID: id, Err: errNoSongService}
		}
		return messages.SongDeleted{ID: id, Err: svc.Delete(context.Background(), id)}
	}
}

// Update handles messages for the library view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SongsLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.songs = msg.Songs
			v.clampSelection()
		}
		return v, nil

	case messages.SongDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.status = fmt.Sprintf("Deleted %s", msg.ID)
		return v, v.loadSongs()

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case key.Matches(msg, v.keymap.Down):
		if v.selected < len(v.songs)-1 {
			v.selected++
		}
	case key.Matches(msg, v.keymap.Select):
		if song, ok := v.SelectedSong(); ok {
			return v, func() tea.Msg {
				return messages.SongSelected{Song: song}
			}
		}
	case key.Matches(msg, v.keymap.Delete):
		if song, ok := v.SelectedSong(); ok {
			return v, v.deleteSong(song.ID)
		}
	case key.Matches(msg, v.keymap.Refresh):
		v.status = ""
		return v, v.Init()
	case key.Matches(msg, v.keymap.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}
	case key.Matches(msg, v.keymap.Quit):
		return v, func() tea.Msg {
			return messages.Quit{}
		}
	}
	return v, nil
}

func (v *View) clampSelection() {
	if v.selected >= len(v.songs) {
		v.selected = len(v.songs) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
}

// View renders the library.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Song Library (%d)", len(v.songs))))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading songs..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case len(v.songs) == 0:
		b.WriteString(v.styles.Muted.Render("No songs imported yet. Use 'spevnikovac import' or drop sheets into the inbox."))
	default:
		b.WriteString(v.renderList())
	}
	b.WriteString("\n\n")

	if v.status != "" {
		b.WriteString(v.styles.Success.Render(v.status))
		b.WriteString("\n")
	}
	b.WriteString(v.help.ShortHelpView(v.keymap.LibraryHelp()))

	return b.String()
}

func (v *View) renderList() string {
	// Title, blank line, status and help take six rows.
	visible := v.height - 6
	if visible < 1 {
		visible = 1
	}

	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := start + visible
	if end > len(v.songs) {
		end = len(v.songs)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, v.renderSong(i, &v.songs[i]))
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderSong(index int, song *domain.Song) string {
	title := song.Lyrics.Title()
	if title == "" {
		title = "(Untitled)"
	}
	details := fmt.Sprintf("%s, %d chords", song.Dialect, len(song.Lyrics.Text.Chords()))

	if index == v.selected {
		return v.styles.Selected.Render("> "+title) + "  " + v.styles.Muted.Render(details)
	}
	return "  " + v.styles.Normal.Render(title) + "  " + v.styles.Muted.Render(details)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width
}

// SelectedSong returns the highlighted song.
func (v *View) SelectedSong() (domain.Song, bool) {
	if v.selected < 0 || v.selected >= len(v.songs) {
		return domain.Song{}, false
	}
	return v.songs[v.selected], true
}

// Songs returns the loaded songs.
func (v *View) Songs() []domain.Song {
	return v.songs
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
