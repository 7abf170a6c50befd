package mcp

import (
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Song parses sheets and manages the library.
	Song driving.SongService

	// Settings is optional; when set the settings resource is served.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Song == nil {
		return ErrMissingSongService
	}
	return nil
}
