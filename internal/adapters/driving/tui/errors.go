package tui

import "errors"

// ErrMissingSongService is returned when the song service is not provided.
var ErrMissingSongService = errors.New("tui: song service is required")
