// Package tui provides an interactive terminal browser for the song library.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Song lists, shows, transposes and deletes stored songs.
	Song driving.SongService

	// Settings is optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Song == nil {
		return ErrMissingSongService
	}
	return nil
}
