package driving

import "github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Options returns the normaliser options derived from settings.
	Options() domain.Options

	// SetChorusLabel updates the marker used for chorus labels.
	SetChorusLabel(label string) error

	// SetDefaultDialect updates the dialect used when none is given.
	SetDefaultDialect(dialect domain.Dialect) error

	// SetPipeline updates the post-processors run on import.
	SetPipeline(processors []string) error

	// Validate checks the current settings.
	Validate() error

	// Keys returns every settable key in display order.
	Keys() []string

	// Value returns a single setting rendered as text.
	Value(key string) (string, error)

	// SetValue parses and stores a single setting.
	SetValue(key, value string) error
}
