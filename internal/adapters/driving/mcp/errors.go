// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants parse chord sheets and browse the song library.
package mcp

import "errors"

// ErrMissingSongService is returned when the song service is not provided.
var ErrMissingSongService = errors.New("mcp: song service is required")
