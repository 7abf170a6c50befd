package postprocessors

import (
	"context"
	"reflect"
	"testing"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driven"
)

// registryMockProcessor is a simple mock for testing registry functionality.
type registryMockProcessor struct {
	name string
}

func (m *registryMockProcessor) Name() string { return m.name }
func (m *registryMockProcessor) Process(_ context.Context, nodes domain.Nodes) (domain.Nodes, error) {
	return nodes, nil
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if len(r.builders) != 0 {
		t.Errorf("expected empty builders, got %d", len(r.builders))
	}
}

func TestRegistry_Build_Success(t *testing.T) {
	r := NewRegistry()

	r.Register("test", func(cfg map[string]any) (driven.PostProcessor, error) {
		name := "default"
		if n, ok := cfg["name"].(string); ok {
			name = n
		}
		return &registryMockProcessor{name: name}, nil
	})

	proc, err := r.Build("test", map[string]any{"name": "custom"})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if proc.Name() != "custom" {
		t.Errorf("expected name 'custom', got %q", proc.Name())
	}
}

func TestRegistry_Build_UnknownProcessor(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Build("unknown", nil); err == nil {
		t.Error("expected error for unknown processor")
	}
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()

	if names := r.Names(); len(names) != 0 {
		t.Errorf("expected 0 names, got %d", len(names))
	}

	for _, name := range []string{"beta", "alpha"} {
		name := name
		r.Register(name, func(_ map[string]any) (driven.PostProcessor, error) {
			return &registryMockProcessor{name: name}, nil
		})
	}

	if names := r.Names(); !reflect.DeepEqual(names, []string{"alpha", "beta"}) {
		t.Errorf("expected sorted names [alpha beta], got %v", names)
	}
}

func TestRegistry_BuildPipeline(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	configs := map[string]map[string]any{
		"transpose": {"semitones": int64(2)},
		"spelling":  {"table": "european-b"},
	}

	p, err := r.BuildPipeline([]string{"transpose", "spelling"}, func(name string) map[string]any {
		return configs[name]
	})
	if err != nil {
		t.Fatalf("BuildPipeline failed: %v", err)
	}

	out, err := p.Process(context.Background(), domain.Nodes{domain.Chord("A"), domain.Text("la")})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	// A +2 is rendered as H, which european-b leaves alone.
	want := domain.Nodes{domain.Chord("H"), domain.Text("la")}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("expected %v, got %v", want, out)
	}
}

func TestRegistry_BuildPipeline_UnknownName(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	if _, err := r.BuildPipeline([]string{"transpose", "chunker"}, nil); err == nil {
		t.Error("expected error for unknown processor")
	}
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	for _, name := range []string{"transpose", "spelling"} {
		if !r.Has(name) {
			t.Errorf("expected %q to be registered after RegisterDefaults", name)
		}
	}
}

func TestBuildSpelling_UnknownTable(t *testing.T) {
	if _, err := buildSpelling(map[string]any{"table": "klingon"}); err == nil {
		t.Error("expected error for unknown spelling table")
	}
	if _, err := buildSpelling(nil); err == nil {
		t.Error("expected error for missing spelling table")
	}
}

func TestGetIntFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      map[string]any
		key      string
		expected int
	}{
		{"int value", map[string]any{"semitones": 3}, "semitones", 3},
		{"int64 value", map[string]any{"semitones": int64(-2)}, "semitones", -2},
		{"float64 value", map[string]any{"semitones": float64(5)}, "semitones", 5},
		{"string value", map[string]any{"semitones": "4"}, "semitones", 0},
		{"missing key", map[string]any{"other": 100}, "semitones", 0},
		{"nil config", nil, "semitones", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := getIntFromConfig(tt.cfg, tt.key)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}
