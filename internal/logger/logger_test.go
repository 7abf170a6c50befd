package logger

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
}

func TestLevels_WhenVerbose(t *testing.T) {
	defer reset()

	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"debug", func() { Debug("parse %s", "ok") }, "[DEBUG] parse ok\n"},
		{"info", func() { Info("imported %d", 2) }, "[INFO] imported 2\n"},
		{"warn", func() { Warn("skipped") }, "[WARN] skipped\n"},
		{"error", func() { Error("failed") }, "[ERROR] failed\n"},
		{"section", func() { Section("Import") }, "\n=== Import ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			SetVerbose(true)

			tt.log()

			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestLevels_WhenQuiet(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}

	Error("shown")
	if buf.String() != "[ERROR] shown\n" {
		t.Errorf("expected error output, got %q", buf.String())
	}
}

func TestStage(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Stage("realign")()

	out := buf.String()
	if !strings.HasPrefix(out, "[DEBUG] realign: start\n[DEBUG] realign: done in ") {
		t.Errorf("unexpected stage output: %q", out)
	}
}

func TestConcurrentAccess(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			Debug("concurrent %d", i)
			IsVerbose()
		}(i)
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "[DEBUG] concurrent"); got != 10 {
		t.Errorf("expected 10 lines, got %d", got)
	}
}
