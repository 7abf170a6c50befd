package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var importFlags sheetFlags

var importCmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Import chord sheets into the song library",
	Long: `Parse chord sheets and store them in the song library.

The artist and song name are taken from file names of the form
"Artist - Song.txt" unless --artist and --song are given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importFlags.register(importCmd)
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if songService == nil {
		return errors.New("song service not configured")
	}

	failed := 0
	for _, path := range args {
		raw, err := readSheet(cmd, path, &importFlags)
		if err == nil {
			song, importErr := songService.Import(cmd.Context(), raw)
			if importErr == nil {
				cmd.Printf("Imported %s: %s\n", song.ID, song.Lyrics.Title())
				continue
			}
			err = importErr
		}

		failed++
		cmd.PrintErrf("Failed to import %s: %v\n", path, err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sheets failed to import", failed, len(args))
	}
	return nil
}
