// Package styles defines the lipgloss styles shared by specforge's terminal
// output and the interactive viewer.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light text

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Phase status badges
	PhaseComplete = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	PhaseInProgress = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarningColor)

	PhasePending = lipgloss.NewStyle().
			Foreground(MutedColor)

	// SelectedRow highlights the focused row in the interactive viewer.
	SelectedRow = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 1)
)

// StatusIcon returns the glyph used for a phase status string.
func StatusIcon(status string) string {
	switch status {
	case "complete":
		return PhaseComplete.Render("✓")
	case "in_progress":
		return PhaseInProgress.Render("◐")
	default:
		return PhasePending.Render("○")
	}
}
