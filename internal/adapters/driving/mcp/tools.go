package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/render"
)

// SheetInput is the input schema for parse_sheet and import_sheet.
type SheetInput struct {
	Content  string `json:"content" jsonschema:"the chord sheet markup"`
	Dialect  string `json:"dialect,omitempty" jsonschema:"supermusic (inline [C] chords) or ultimate-guitar ([ch]C[/ch] above lyrics); defaults to the configured dialect"`
	Artist   string `json:"artist,omitempty" jsonschema:"the performing artist"`
	SongName string `json:"song_name,omitempty" jsonschema:"the song title"`
}

// SongIDInput is the input schema for tools addressing one stored song.
type SongIDInput struct {
	SongID string `json:"song_id" jsonschema:"the song ID returned by import_sheet or list_songs"`
}

// TransposeInput is the input schema for the transpose_song tool.
type TransposeInput struct {
	SongID    string `json:"song_id" jsonschema:"the song ID"`
	Semitones int    `json:"semitones" jsonschema:"semitones to shift every chord by, may be negative"`
}

// ListInput is the (empty) input schema for the list_songs tool.
type ListInput struct{}

// LyricsOutput is a normalised song body.
type LyricsOutput struct {
	Artist   string       `json:"artist"`
	SongName string       `json:"song_name"`
	Text     domain.Nodes `json:"text"`
	Chords   []string     `json:"chords"`
	Rendered string       `json:"rendered"`
}

// SongOutput is a stored song.
type SongOutput struct {
	ID        string       `json:"id"`
	Dialect   string       `json:"dialect"`
	URI       string       `json:"uri,omitempty"`
	Lyrics    LyricsOutput `json:"lyrics"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// SongSummary describes a stored song without its body.
type SongSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Dialect  string `json:"dialect"`
	Chords   int    `json:"chords"`
	Imported string `json:"imported"`
}

// ListOutput is the output schema for the list_songs tool.
type ListOutput struct {
	Songs []SongSummary `json:"songs"`
	Count int           `json:"count"`
}

// HintsOutput is the output schema for the editing_hints tool.
type HintsOutput struct {
	SongID string `json:"song_id"`
	Count  int    `json:"count"`
	// Hints holds []domain.EditingHint; typed as any because its JSON form
	// is a mix of strings and objects.
	Hints any `json:"hints"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_sheet",
		Description: "Parse a chord sheet into normalised lyrics with chords without storing it",
	}, s.handleParseSheet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "import_sheet",
		Description: "Parse a chord sheet and store it in the song library",
	}, s.handleImportSheet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "transpose_song",
		Description: "Transpose every chord of a stored song by a number of semitones",
	}, s.handleTransposeSong)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_songs",
		Description: "List the songs in the library, ordered by artist and title",
	}, s.handleListSongs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_song",
		Description: "Get a stored song with its chords",
	}, s.handleGetSong)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "editing_hints",
		Description: "Get the editor view of a stored song: nodes interleaved with places a chord can be dropped",
	}, s.handleEditingHints)
}

func (s *Server) handleParseSheet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SheetInput,
) (*mcp.CallToolResult, LyricsOutput, error) {
	raw, err := rawSheet(input)
	if err != nil {
		return nil, LyricsOutput{}, err
	}

	lyrics, err := s.ports.Song.Parse(ctx, raw)
	if err != nil {
		return nil, LyricsOutput{}, err
	}
	return nil, lyricsOutput(lyrics), nil
}

func (s *Server) handleImportSheet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SheetInput,
) (*mcp.CallToolResult, SongOutput, error) {
	raw, err := rawSheet(input)
	if err != nil {
		return nil, SongOutput{}, err
	}

	song, err := s.ports.Song.Import(ctx, raw)
	if err != nil {
		return nil, SongOutput{}, err
	}
	return nil, songOutput(song), nil
}

func (s *Server) handleTransposeSong(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TransposeInput,
) (*mcp.CallToolResult, SongOutput, error) {
	song, err := s.ports.Song.Transpose(ctx, input.SongID, input.Semitones)
	if err != nil {
		return nil, SongOutput{}, err
	}
	return nil, songOutput(song), nil
}

func (s *Server) handleListSongs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	songs, err := s.ports.Song.List(ctx)
	if err != nil {
		return nil, ListOutput{}, err
	}

	summaries := songSummaries(songs)
	return nil, ListOutput{Songs: summaries, Count: len(summaries)}, nil
}

func (s *Server) handleGetSong(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SongIDInput,
) (*mcp.CallToolResult, SongOutput, error) {
	song, err := s.ports.Song.Get(ctx, input.SongID)
	if err != nil {
		return nil, SongOutput{}, err
	}
	return nil, songOutput(song), nil
}

func (s *Server) handleEditingHints(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SongIDInput,
) (*mcp.CallToolResult, HintsOutput, error) {
	hints, err := s.ports.Song.Hints(ctx, input.SongID)
	if err != nil {
		return nil, HintsOutput{}, err
	}
	if hints == nil {
		hints = []domain.EditingHint{}
	}
	return nil, HintsOutput{SongID: input.SongID, Count: len(hints), Hints: hints}, nil
}

// rawSheet validates tool input. An empty dialect is left for the
// service to default.
func rawSheet(input SheetInput) (*domain.RawSheet, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}

	raw := &domain.RawSheet{
		Content:  input.Content,
		Artist:   input.Artist,
		SongName: input.SongName,
	}
	if input.Dialect != "" {
		d, err := domain.ParseDialect(input.Dialect)
		if err != nil {
			return nil, err
		}
		raw.Dialect = d
	}
	return raw, nil
}

func lyricsOutput(l *domain.LyricsWithChords) LyricsOutput {
	text := l.Text
	if text == nil {
		text = domain.Nodes{}
	}
	chords := l.Text.Chords()
	if chords == nil {
		chords = []string{}
	}
	return LyricsOutput{
		Artist:   l.Artist,
		SongName: l.SongName,
		Text:     text,
		Chords:   chords,
		Rendered: render.PlainString(l),
	}
}

func songOutput(song *domain.Song) SongOutput {
	return SongOutput{
		ID:        song.ID,
		Dialect:   string(song.Dialect),
		URI:       song.URI,
		Lyrics:    lyricsOutput(&song.Lyrics),
		CreatedAt: song.CreatedAt,
		UpdatedAt: song.UpdatedAt,
	}
}

func songSummaries(songs []domain.Song) []SongSummary {
	summaries := make([]SongSummary, len(songs))
	for i := range songs {
		summaries[i] = SongSummary{
			ID:       songs[i].ID,
			Title:    songs[i].Lyrics.Title(),
			Dialect:  string(songs[i].Dialect),
			Chords:   len(songs[i].Lyrics.Text.Chords()),
			Imported: songs[i].CreatedAt.Format(time.RFC3339),
		}
	}
	return summaries
}
