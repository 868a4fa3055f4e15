package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pcbdeck/pcbdeck/internal/task"
)

// Semantic colors, AdaptiveColor{Light, Dark}
var (
	BorderFocused   = lipgloss.AdaptiveColor{Light: "#2e5cb8", Dark: "#7aa2f7"}
	BorderUnfocused = lipgloss.AdaptiveColor{Light: "#c0c0c0", Dark: "#3b4261"}
	TitleText       = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	KeybindKey      = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}
	KeybindLabel    = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	TextPrimary     = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	TextSecondary   = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	TextDim         = lipgloss.AdaptiveColor{Light: "#b0b0b0", Dark: "#3b4261"}

	StatusRunning = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#7dcfff"}
	StatusSuccess = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#9ece6a"}
	StatusError   = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f7768e"}
	StatusWarning = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}
	StatusIdle    = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}

	SelectedOption = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#9ece6a"}
)

// StateColor returns the status color for a task state.
func StateColor(state task.State) lipgloss.AdaptiveColor {
	switch state {
	case task.StateRunning:
		return StatusRunning
	case task.StateIdle:
		return StatusIdle
	default:
		return TextDim
	}
}
