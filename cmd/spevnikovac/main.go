// Command spevnikovac normalises chord sheets and manages a local song library.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driven/config/file"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driven/storage/sqlite"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driving/cli"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driven"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/services"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/logger"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/normalisers/supermusic"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/normalisers/ultimateguitar"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/postprocessors"
)

// Set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	if err := file.LoadDotEnv(".env"); err != nil {
		logger.Warn("loading .env: %v", err)
	}

	configDir, err := file.DefaultDir()
	if err != nil {
		return report(fmt.Errorf("resolving config directory: %w", err))
	}
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return report(fmt.Errorf("loading config: %w", err))
	}

	processors := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(processors)

	settingsService := services.NewSettingsService(configStore, processors.Names())
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("invalid settings, using defaults: %v", err)
		defaults := settingsService.GetDefaults()
		settings = &defaults
	}

	// A broken pipeline must not block "settings set", so it is only warned about.
	var pipeline driven.PostProcessorPipeline
	if len(settings.Pipeline.Processors) > 0 {
		built, err := processors.BuildPipeline(settings.Pipeline.Processors, pipelineConfig(settings))
		if err != nil {
			logger.Warn("post-processing disabled: %v", err)
		} else {
			pipeline = built
		}
	}

	store, err := sqlite.NewStore(settings.Storage.DataDir)
	if err != nil {
		return report(fmt.Errorf("opening song library: %w", err))
	}
	defer store.Close()

	normalisers := services.NewNormaliserRegistry(supermusic.New(), ultimateguitar.New())
	songService := services.NewSongService(normalisers, store.SongStore(), pipeline, settingsService)

	cli.SetVersion(version)
	cli.SetServices(songService, settingsService)
	cli.SetInboxDir(filepath.Join(filepath.Dir(store.Path()), "inbox"))

	// cobra has already printed the error.
	return cli.Execute()
}

// pipelineConfig returns per-processor config from settings.
func pipelineConfig(settings *domain.AppSettings) func(name string) map[string]any {
	return func(name string) map[string]any {
		switch name {
		case "transpose":
			return map[string]any{"semitones": settings.Pipeline.TransposeSemitones}
		case "spelling":
			return map[string]any{"table": settings.Pipeline.SpellingTable}
		default:
			return nil
		}
	}
}

func report(err error) error {
	logger.Error("%v", err)
	return err
}
