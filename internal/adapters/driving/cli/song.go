package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/render"
)

var songCmd = &cobra.Command{
	Use:   "song",
	Short: "Manage the song library",
	Long:  `List, show, transpose or delete imported songs.`,
}

var songListCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported songs",
	Args:  cobra.NoArgs,
	RunE:  runSongList,
}

var songShowCmd = &cobra.Command{
	Use:   "show [song-id]",
	Short: "Print a song with its chords",
	Args:  cobra.ExactArgs(1),
	RunE:  runSongShow,
}

var songDeleteCmd = &cobra.Command{
	Use:   "delete [song-id]",
	Short: "Delete a song from the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runSongDelete,
}

var songTransposeCmd = &cobra.Command{
	Use:   "transpose [song-id]",
	Short: "Transpose a stored song",
	Long: `Shift every chord of a stored song by a number of semitones and save
the result. Negative values transpose down.

Example:
  spevnikovac song transpose 3f2a --semitones -2`,
	Args: cobra.ExactArgs(1),
	RunE: runSongTranspose,
}

var songHintsCmd = &cobra.Command{
	Use:   "hints [song-id]",
	Short: "Print the editing hints of a song as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runSongHints,
}

var (
	songShowJSON       bool
	transposeSemitones int
)

func init() {
	songShowCmd.Flags().BoolVar(&songShowJSON, "json", false, "Print the stored song as JSON")
	songTransposeCmd.Flags().IntVarP(&transposeSemitones, "semitones", "s", 0, "Semitones to transpose by")
	_ = songTransposeCmd.MarkFlagRequired("semitones")

	songCmd.AddCommand(songListCmd)
	songCmd.AddCommand(songShowCmd)
	songCmd.AddCommand(songDeleteCmd)
	songCmd.AddCommand(songTransposeCmd)
	songCmd.AddCommand(songHintsCmd)
	rootCmd.AddCommand(songCmd)
}

func runSongList(cmd *cobra.Command, _ []string) error {
	if songService == nil {
		return errors.New("song service not configured")
	}

	songs, err := songService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list songs: %w", err)
	}

	if len(songs) == 0 {
		cmd.Println("No songs imported yet.")
		return nil
	}

	cmd.Println("Songs:")
	cmd.Println()
	for i := range songs {
		cmd.Printf("  %s\n", songs[i].ID)
		cmd.Printf("    Title:   %s\n", songs[i].Lyrics.Title())
		cmd.Printf("    Dialect: %s\n", songs[i].Dialect)
		cmd.Printf("    Chords:  %d\n", len(songs[i].Lyrics.Text.Chords()))
		cmd.Println()
	}

	cmd.Printf("Total: %d songs\n", len(songs))
	return nil
}

func runSongShow(cmd *cobra.Command, args []string) error {
	song, err := getSong(cmd, args[0])
	if err != nil {
		return err
	}

	if songShowJSON {
		return printJSON(cmd, song)
	}
	return render.ForWriter(cmd.OutOrStdout()).Render(cmd.OutOrStdout(), &song.Lyrics)
}

func runSongDelete(cmd *cobra.Command, args []string) error {
	if songService == nil {
		return errors.New("song service not configured")
	}

	if err := songService.Delete(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("song not found: %s", args[0])
		}
		return fmt.Errorf("failed to delete song: %w", err)
	}

	cmd.Printf("Deleted song: %s\n", args[0])
	return nil
}

func runSongTranspose(cmd *cobra.Command, args []string) error {
	if songService == nil {
		return errors.New("song service not configured")
	}

	song, err := songService.Transpose(cmd.Context(), args[0], transposeSemitones)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("song not found: %s", args[0])
		}
		return fmt.Errorf("failed to transpose song: %w", err)
	}

	return render.ForWriter(cmd.OutOrStdout()).Render(cmd.OutOrStdout(), &song.Lyrics)
}

func runSongHints(cmd *cobra.Command, args []string) error {
	if songService == nil {
		return errors.New("song service not configured")
	}

	hints, err := songService.Hints(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("song not found: %s", args[0])
		}
		return fmt.Errorf("failed to get hints: %w", err)
	}
	if hints == nil {
		hints = []domain.EditingHint{}
	}
	return printJSON(cmd, hints)
}

func getSong(cmd *cobra.Command, id string) (*domain.Song, error) {
	if songService == nil {
		return nil, errors.New("song service not configured")
	}

	song, err := songService.Get(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("song not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get song: %w", err)
	}
	return song, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
