package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette used by the terminal renderer.
type Theme struct {
	// Primary colours the song heading.
	Primary lipgloss.Color

	// Chord colours chord symbols.
	Chord lipgloss.Color

	// Label colours section labels such as the chorus marker.
	Label lipgloss.Color

	// Muted is for chord brackets and secondary text.
	Muted lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Chord:   lipgloss.Color("#06B6D4"), // Cyan
		Label:   lipgloss.Color("#F9E2AF"), // Yellow
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	// Title styles the "Artist - Song" heading.
	Title lipgloss.Style

	// Chord styles chord symbols.
	Chord lipgloss.Style

	// Bracket styles the brackets around chords.
	Bracket lipgloss.Style

	// Label styles section labels.
	Label lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(theme.Primary),

		Chord: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Chord),

		Bracket: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Label),
	}
}
