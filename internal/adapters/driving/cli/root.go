// Package cli provides the cobra command tree for spevnikovac.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/ports/driving"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/logger"
)

var (
	version = "dev"

	songService     driving.SongService
	settingsService driving.SettingsService

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "spevnikovac",
	Short: "Chord sheet normaliser and song library",
	Long: `spevnikovac turns chord sheets from supermusic.cz and Ultimate Guitar
into one normalised lyrics-with-chords format, keeps them in a local
song library and serves them to AI assistants over MCP.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// SetServices injects the core services used by the commands.
func SetServices(song driving.SongService, settings driving.SettingsService) {
	songService = song
	settingsService = settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
