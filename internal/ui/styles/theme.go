package styles

import "github.com/charmbracelet/lipgloss"

// Common reusable styles built from the color tokens.
var (
	TextPrimaryStyle   = lipgloss.NewStyle().Foreground(TextPrimary)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	TextDimStyle       = lipgloss.NewStyle().Foreground(TextDim)
	TitleStyle         = lipgloss.NewStyle().Foreground(TitleText).Bold(true)

	SelectedOptionStyle = lipgloss.NewStyle().Foreground(SelectedOption).Bold(true)

	StatusSuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccess)
	StatusErrorStyle   = lipgloss.NewStyle().Foreground(StatusError)
	StatusRunningStyle = lipgloss.NewStyle().Foreground(StatusRunning)
	StatusWarningStyle = lipgloss.NewStyle().Foreground(StatusWarning)
)
