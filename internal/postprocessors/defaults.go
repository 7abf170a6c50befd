package postprocessors

import (
	"fmt"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/chords"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driven"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/postprocessors/spelling"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/postprocessors/transpose"
)

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register(transpose.Name, buildTranspose)
	r.Register(spelling.Name, buildSpelling)
}

// buildTranspose creates a transpose processor from generic config.
// Supported config keys:
//   - semitones (int): Offset applied to every chord (default: 0)
func buildTranspose(cfg map[string]any) (driven.PostProcessor, error) {
	return transpose.New(getIntFromConfig(cfg, "semitones")), nil
}

// buildSpelling creates a spelling processor from generic config.
// Supported config keys:
//   - table (string): Name of a chords.Spellings table (required)
func buildSpelling(cfg map[string]any) (driven.PostProcessor, error) {
	name, _ := cfg["table"].(string)
	table, ok := chords.Spellings[name]
	if !ok {
		return nil, fmt.Errorf("spelling: unknown table %q", name)
	}
	return spelling.New(name, table), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
