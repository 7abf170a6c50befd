package domain

import "time"

// DefaultInboxDebounce is how long the inbox watcher waits after the last
// write to a file before importing it.
const DefaultInboxDebounce = 500 * time.Millisecond

// AppSettings is the full user-configurable state of the application.
type AppSettings struct {
	Options  Options          `json:"options"`
	Import   ImportSettings   `json:"import"`
	Pipeline PipelineSettings `json:"pipeline"`
	Inbox    InboxSettings    `json:"inbox"`
	Storage  StorageSettings  `json:"storage"`
}

// ImportSettings controls how sheets without an explicit dialect are read.
type ImportSettings struct {
	// Dialect is used when the caller does not name one.
	Dialect Dialect `json:"dialect"`
}

// PipelineSettings configures the post-processing passes run on import.
type PipelineSettings struct {
	// Processors are post-processor names, run in order.
	Processors []string `json:"processors"`

	// TransposeSemitones is the offset used by the "transpose" processor.
	TransposeSemitones int `json:"transpose_semitones"`

	// SpellingTable names the table used by the "spelling" processor.
	SpellingTable string `json:"spelling_table"`
}

// InboxSettings configures the inbox watcher.
type InboxSettings struct {
	// Dir is the watched directory. Empty means <data dir>/inbox.
	Dir string `json:"dir"`

	// Debounce delays imports until writes to a file settle.
	Debounce time.Duration `json:"debounce"`
}

// StorageSettings configures where the song library lives.
type StorageSettings struct {
	// DataDir holds the database. Empty means the config directory.
	DataDir string `json:"data_dir"`
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Options: DefaultOptions(),
		Import: ImportSettings{
			Dialect: DialectSupermusic,
		},
		Inbox: InboxSettings{
			Debounce: DefaultInboxDebounce,
		},
	}
}
