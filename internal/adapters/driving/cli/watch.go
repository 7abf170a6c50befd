package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driven/inbox"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// defaultInboxDir is used when neither --dir nor inbox.dir is set.
var defaultInboxDir string

var (
	watchDir  string
	watchScan bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Import sheets dropped into the inbox directory",
	Long: `Watch the inbox directory and import every .txt or .tab sheet that is
created or changed there. Writes are debounced so a file is imported once
it stops changing.

File names of the form "Artist - Song.txt" set the artist and song name.
.tab files are read as Ultimate Guitar markup, .txt files use the
configured default dialect.

Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchDir, "dir", "", "Inbox directory (default from settings)")
	watchCmd.Flags().BoolVar(&watchScan, "scan", false, "Import sheets already in the inbox before watching")
	rootCmd.AddCommand(watchCmd)
}

// SetInboxDir sets the inbox used when no directory is configured.
func SetInboxDir(dir string) {
	defaultInboxDir = dir
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if songService == nil {
		return errors.New("song service not configured")
	}

	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		s, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		settings = *s
	}

	dir := resolveInboxDir(watchDir, settings.Inbox.Dir)
	if dir == "" {
		return errors.New("no inbox directory configured, use --dir or set inbox.dir")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher := inbox.NewWatcher(dir, songService,
		inbox.WithDebounce(settings.Inbox.Debounce),
		inbox.WithDefaultDialect(settings.Import.Dialect),
		inbox.WithResults(func(r inbox.Result) {
			if r.Err != nil {
				cmd.PrintErrf("Failed to import %s: %v\n", r.Path, r.Err)
				return
			}
			cmd.Printf("Imported %s: %s\n", r.Song.ID, r.Song.Lyrics.Title())
		}),
	)

	if watchScan {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("creating inbox directory: %w", err)
		}
		if _, err := watcher.Scan(ctx); err != nil {
			return fmt.Errorf("failed to scan inbox: %w", err)
		}
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", watcher.Dir())
	if err := watcher.Run(ctx); err != nil {
		return fmt.Errorf("watching inbox: %w", err)
	}
	return nil
}

func resolveInboxDir(flag, configured string) string {
	switch {
	case flag != "":
		return flag
	case configured != "":
		return configured
	default:
		return defaultInboxDir
	}
}
