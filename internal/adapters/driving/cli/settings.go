package cli

import (
	"bufio"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the chorus label, default dialect, import pipeline,
inbox and storage settings.

Settings are stored in ~/.spevnikovac/config.toml. Environment variables
named SPEVNIKOVAC_<KEY> (dots replaced by underscores) override them.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting and save it.

Examples:
  spevnikovac settings set options.chorus_label "Ref:"
  spevnikovac settings set import.dialect ultimate-guitar
  spevnikovac settings set pipeline.processors transpose,spelling
  spevnikovac settings set pipeline.transpose.semitones -2
  spevnikovac settings set inbox.debounce 1s`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the settings for errors",
	Args:  cobra.NoArgs,
	RunE:  runSettingsValidate,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to pick the default dialect and chorus label.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsValidateCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Options]")
	cmd.Printf("  Chorus label: %s\n", settings.Options.ChorusLabel)
	cmd.Println()

	cmd.Println("[Import]")
	cmd.Printf("  Default dialect: %s\n", settings.Import.Dialect)
	cmd.Println()

	cmd.Println("[Pipeline]")
	if len(settings.Pipeline.Processors) == 0 {
		cmd.Println("  Processors: (none)")
	} else {
		cmd.Printf("  Processors: %s\n", strings.Join(settings.Pipeline.Processors, ", "))
	}
	cmd.Printf("  Transpose semitones: %d\n", settings.Pipeline.TransposeSemitones)
	cmd.Printf("  Spelling table: %s\n", orNotSet(settings.Pipeline.SpellingTable))
	cmd.Println()

	cmd.Println("[Inbox]")
	cmd.Printf("  Directory: %s\n", orNotSet(resolveInboxDir("", settings.Inbox.Dir)))
	cmd.Printf("  Debounce: %s\n", settings.Inbox.Debounce)
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Data directory: %s\n", orNotSet(settings.Storage.DataDir))
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'spevnikovac settings set' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	value, err := settingsService.Value(args[0])
	if err != nil {
		return unknownKeyError(args[0], err)
	}
	cmd.Println(value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetValue(args[0], args[1]); err != nil {
		return unknownKeyError(args[0], err)
	}

	value, err := settingsService.Value(args[0])
	if err != nil {
		return err
	}
	cmd.Printf("%s = %s\n", args[0], value)
	return nil
}

func runSettingsValidate(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cmd.Println("Configuration is valid.")
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	current := settingsService.GetDefaults()
	if s, err := settingsService.Get(); err == nil {
		current = *s
	}

	cmd.Println("Spevnikovac Settings Wizard")
	cmd.Println("===========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Step 1: Default Dialect")
	cmd.Println("-----------------------")
	dialects := domain.Dialects()
	defaultIdx := 1
	for i, d := range dialects {
		cmd.Printf("  %d. %s\n", i+1, d)
		if d == current.Import.Dialect {
			defaultIdx = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultIdx)
	idx := parseChoice(readLine(reader), len(dialects), defaultIdx)
	if err := settingsService.SetDefaultDialect(dialects[idx-1]); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	cmd.Printf("Set default dialect to: %s\n\n", dialects[idx-1])

	cmd.Println("Step 2: Chorus Label")
	cmd.Println("--------------------")
	cmd.Printf("Enter chorus label [%s]: ", current.Options.ChorusLabel)
	label := readLine(reader)
	if label == "" {
		label = current.Options.ChorusLabel
	}
	if err := settingsService.SetChorusLabel(label); err != nil {
		return fmt.Errorf("failed to set chorus label: %w", err)
	}
	cmd.Printf("Set chorus label to: %s\n\n", label)

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

// Helper functions.

func unknownKeyError(key string, err error) error {
	if keys := settingsService.Keys(); !slices.Contains(keys, key) {
		return fmt.Errorf("unknown setting %q, available: %s", key, strings.Join(keys, ", "))
	}
	return err
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
