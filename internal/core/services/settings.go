package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/chords"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driven"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyChorusLabel        = "options.chorus_label"
	keyImportDialect      = "import.dialect"
	keyProcessors         = "pipeline.processors"
	keyTransposeSemitones = "pipeline.transpose.semitones"
	keySpellingTable      = "pipeline.spelling.table"
	keyInboxDir           = "inbox.dir"
	keyInboxDebounce      = "inbox.debounce"
	keyStorageDataDir     = "storage.data_dir"
)

var settingKeys = []string{
	keyChorusLabel,
	keyImportDialect,
	keyProcessors,
	keyTransposeSemitones,
	keySpellingTable,
	keyInboxDir,
	keyInboxDebounce,
	keyStorageDataDir,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	processors  map[string]bool
}

// NewSettingsService creates a new settings service. processors lists
// the post-processor names accepted in the pipeline setting; when empty
// any name is accepted.
func NewSettingsService(configStore driven.ConfigStore, processors []string) *SettingsService {
	known := make(map[string]bool, len(processors))
	for _, p := range processors {
		known[p] = true
	}
	return &SettingsService{
		configStore: configStore,
		processors:  known,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	dialect := defaults.Import.Dialect
	if raw := s.configStore.GetString(keyImportDialect); raw != "" {
		d, err := domain.ParseDialect(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyImportDialect, err)
		}
		dialect = d
	}

	debounce := defaults.Inbox.Debounce
	if raw := s.configStore.GetString(keyInboxDebounce); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyInboxDebounce, err)
		}
		debounce = d
	}

	return &domain.AppSettings{
		Options: domain.Options{
			ChorusLabel: s.getString(keyChorusLabel, defaults.Options.ChorusLabel),
		},
		Import: domain.ImportSettings{
			Dialect: dialect,
		},
		Pipeline: domain.PipelineSettings{
			Processors:         s.configStore.GetStringSlice(keyProcessors),
			TransposeSemitones: s.configStore.GetInt(keyTransposeSemitones),
			SpellingTable:      s.configStore.GetString(keySpellingTable),
		},
		Inbox: domain.InboxSettings{
			Dir:      s.configStore.GetString(keyInboxDir),
			Debounce: debounce,
		},
		Storage: domain.StorageSettings{
			DataDir: s.configStore.GetString(keyStorageDataDir),
		},
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return fmt.Errorf("save settings: no config store configured")
	}

	values := []struct {
		key   string
		value any
	}{
		{keyChorusLabel, settings.Options.ChorusLabel},
		{keyImportDialect, string(settings.Import.Dialect)},
		{keyProcessors, settings.Pipeline.Processors},
		{keyTransposeSemitones, settings.Pipeline.TransposeSemitones},
		{keySpellingTable, settings.Pipeline.SpellingTable},
		{keyInboxDir, settings.Inbox.Dir},
		{keyInboxDebounce, settings.Inbox.Debounce.String()},
		{keyStorageDataDir, settings.Storage.DataDir},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Options returns the normaliser options. Unreadable settings fall back
// to the defaults.
func (s *SettingsService) Options() domain.Options {
	settings, err := s.Get()
	if err != nil || settings.Options.ChorusLabel == "" {
		return domain.DefaultOptions()
	}
	return settings.Options
}

// SetChorusLabel updates the marker used for chorus labels.
func (s *SettingsService) SetChorusLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf("%w: chorus label must not be empty", domain.ErrInvalidInput)
	}
	return s.set(keyChorusLabel, label)
}

// SetDefaultDialect updates the dialect used when none is given.
func (s *SettingsService) SetDefaultDialect(dialect domain.Dialect) error {
	d, err := domain.ParseDialect(string(dialect))
	if err != nil {
		return err
	}
	return s.set(keyImportDialect, string(d))
}

// SetPipeline updates the post-processors run on import.
func (s *SettingsService) SetPipeline(processors []string) error {
	if err := s.validateProcessors(processors); err != nil {
		return err
	}
	return s.set(keyProcessors, processors)
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if err := s.validateProcessors(settings.Pipeline.Processors); err != nil {
		return err
	}
	for _, p := range settings.Pipeline.Processors {
		if p != "spelling" {
			continue
		}
		if _, ok := chords.Spellings[settings.Pipeline.SpellingTable]; !ok {
			return fmt.Errorf("%w: %s %q is not a known spelling table", domain.ErrInvalidInput,
				keySpellingTable, settings.Pipeline.SpellingTable)
		}
	}
	if settings.Inbox.Debounce < 0 {
		return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, keyInboxDebounce)
	}
	return nil
}

// Keys returns every settable key in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// Value returns a single setting rendered as text.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}

	switch key {
	case keyChorusLabel:
		return settings.Options.ChorusLabel, nil
	case keyImportDialect:
		return string(settings.Import.Dialect), nil
	case keyProcessors:
		return strings.Join(settings.Pipeline.Processors, ","), nil
	case keyTransposeSemitones:
		return strconv.Itoa(settings.Pipeline.TransposeSemitones), nil
	case keySpellingTable:
		return settings.Pipeline.SpellingTable, nil
	case keyInboxDir:
		return settings.Inbox.Dir, nil
	case keyInboxDebounce:
		return settings.Inbox.Debounce.String(), nil
	case keyStorageDataDir:
		return settings.Storage.DataDir, nil
	default:
		return "", fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// SetValue parses and stores a single setting.
func (s *SettingsService) SetValue(key, value string) error {
	switch key {
	case keyChorusLabel:
		return s.SetChorusLabel(value)
	case keyImportDialect:
		return s.SetDefaultDialect(domain.Dialect(value))
	case keyProcessors:
		return s.SetPipeline(splitList(value))
	case keyTransposeSemitones:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
		}
		return s.set(key, n)
	case keySpellingTable:
		if _, ok := chords.Spellings[value]; !ok {
			return fmt.Errorf("%w: unknown spelling table %q", domain.ErrInvalidInput, value)
		}
		return s.set(key, value)
	case keyInboxDebounce:
		d, err := time.ParseDuration(strings.TrimSpace(value))
		if err != nil || d < 0 {
			return fmt.Errorf("%w: %s: %q is not a non-negative duration", domain.ErrInvalidInput, key, value)
		}
		return s.set(key, d.String())
	case keyInboxDir, keyStorageDataDir:
		return s.set(key, strings.TrimSpace(value))
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

func (s *SettingsService) set(key string, value any) error {
	if s.configStore == nil {
		return fmt.Errorf("save %s: no config store configured", key)
	}
	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *SettingsService) validateProcessors(processors []string) error {
	if len(s.processors) == 0 {
		return nil
	}
	for _, p := range processors {
		if !s.processors[p] {
			return fmt.Errorf("%w: unknown post-processor %q", domain.ErrInvalidInput, p)
		}
	}
	return nil
}

// getString returns a string config value or a default.
func (s *SettingsService) getString(key, defaultVal string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return defaultVal
}

func splitList(s string) []string {
	result := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
