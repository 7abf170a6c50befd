package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/render"
)

var parseFlags sheetFlags

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Normalise a chord sheet and print it",
	Long: `Parse a chord sheet and print the normalised lyrics with inline chords.
The sheet is not stored.

Files ending in .tab are read as Ultimate Guitar markup, everything else
uses the configured default dialect unless --dialect is given. Use "-"
to read from stdin.

Examples:
  spevnikovac parse "Kabát - Pohoda.txt"
  spevnikovac parse --dialect ug --json song.tab
  cat export.txt | spevnikovac parse --export -`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseFlags.register(parseCmd)
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the node sequence as JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if songService == nil {
		return errors.New("song service not configured")
	}

	raw, err := readSheet(cmd, args[0], &parseFlags)
	if err != nil {
		return err
	}

	lyrics, err := songService.Parse(cmd.Context(), raw)
	if err != nil {
		return fmt.Errorf("failed to parse sheet: %w", err)
	}

	if parseJSON {
		return printJSON(cmd, lyrics)
	}

	return render.ForWriter(cmd.OutOrStdout()).Render(cmd.OutOrStdout(), lyrics)
}
