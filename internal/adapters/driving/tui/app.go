package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driving/tui/keymap"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driving/tui/messages"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driving/tui/styles"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driving/tui/views/library"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driving/tui/views/song"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	libraryView *library.View
	songView    *song.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		libraryView: library.NewView(s, km, ports.Song),
		songView:    song.NewView(s, km, ports.Song),
		currentView: messages.ViewLibrary,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("spevnikovac - Song Library"),
		a.libraryView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewLibrary:
			a.libraryView, cmd = a.libraryView.Update(msg)
		case messages.ViewSong:
			a.songView, cmd = a.songView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "?" {
				a.currentView = messages.ViewLibrary
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewLibrary {
			// Transpositions made in the song view are stored; reload.
			return a, a.libraryView.Init()
		}
		return a, nil

	case messages.SongSelected:
		a.songView.SetSong(msg.Song)
		a.currentView = messages.ViewSong
		return a, nil

	case messages.SongsLoaded, messages.SongDeleted:
		a.libraryView, cmd = a.libraryView.Update(msg)
		return a, cmd

	case messages.SongTransposed:
		a.songView, cmd = a.songView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewLibrary:
			a.libraryView, cmd = a.libraryView.Update(msg)
		case messages.ViewSong:
			a.songView, cmd = a.songView.Update(msg)
		case messages.ViewHelp:
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	if a.currentView == messages.ViewSong {
		a.songView, cmd = a.songView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSong:
		return a.songView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.libraryView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Library:
  j/k, ↑/↓    Navigate songs
  enter       Open song
  x           Delete song
  r           Reload library
  q           Quit

Song:
  +/-         Transpose up/down a semitone (saved)
  j/k, ↑/↓    Scroll
  f/b         Page down/up
  esc         Back to library

` + a.styles.Muted.Render("[esc] back to library")
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.libraryView.SetDimensions(width, height)
	a.songView.SetDimensions(width, height)
}
