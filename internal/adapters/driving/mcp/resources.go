package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/render"
)

const (
	// uriScheme is the custom URI scheme for song resources.
	uriScheme = "spevnikovac://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "songs",
		Name:        "songs",
		Description: "All songs in the library",
		MIMEType:    "application/json",
	}, s.handleSongsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "songs/{songId}",
		Name:        "song",
		Description: "A stored song with chords written inline as [C]",
		MIMEType:    "text/plain",
	}, s.handleSongResource)

	if s.ports.Settings != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "settings",
			Name:        "settings",
			Description: "Chorus label, default dialect and import pipeline in use",
			MIMEType:    "application/json",
		}, s.handleSettingsResource)
	}
}

// handleSongsResource returns a summary of every stored song.
func (s *Server) handleSongsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	songs, err := s.ports.Song.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing songs: %w", err)
	}

	data, err := json.MarshalIndent(songSummaries(songs), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling songs: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSongResource renders one song as plain text.
func (s *Server) handleSongResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// spevnikovac://songs/{songId}
	songID := extractSongID(req.Params.URI)
	if songID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	song, err := s.ports.Song.Get(ctx, songID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting song: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     render.PlainString(&song.Lyrics),
		}},
	}, nil
}

// handleSettingsResource returns the effective settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSongID extracts the song ID from a URI like spevnikovac://songs/{songId}.
func extractSongID(uri string) string {
	const prefix = uriScheme + "songs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
