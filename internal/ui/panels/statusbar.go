package panels

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pcbdeck/pcbdeck/internal/task"
	"github.com/pcbdeck/pcbdeck/internal/ui/styles"
)

const flashDurationVal = 5 * time.Second

var statusSpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashDuration returns how long the status bar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

// FlashLevel controls the icon and color of a status bar flash message.
type FlashLevel int

const (
	FlashInfo    FlashLevel = iota // blue ●
	FlashSuccess                   // green ✓
	FlashWarning                   // yellow ⚠
	FlashError                     // red ✗
)

type StatusBar struct {
	width      int
	bomState   task.State
	kicadState task.State
	flash      string
	flashLevel FlashLevel
	flashUntil time.Time
	tickStep   int
}

func NewStatusBar() StatusBar {
	return StatusBar{bomState: task.StateIdle, kicadState: task.StateIdle}
}

func (s StatusBar) View() string {
	sep := styles.TextDimStyle.Render(" │ ")

	appName := "pcbdeck " + Version
	if s.bomState == task.StateRunning || s.kicadState == task.StateRunning {
		frame := statusSpinnerFrames[s.tickStep%len(statusSpinnerFrames)]
		spinner := lipgloss.NewStyle().Foreground(styles.StatusRunning).Render(frame)
		appName = spinner + " " + appName
	}
	version := styles.TextSecondaryStyle.Render(appName)

	bomStr := lipgloss.NewStyle().Foreground(styles.StateColor(s.bomState)).
		Render("bom: " + s.bomState.String())
	kicadStr := lipgloss.NewStyle().Foreground(styles.StateColor(s.kicadState)).
		Render("export: " + s.kicadState.String())

	left := " " + version + sep + bomStr + sep + kicadStr

	if s.flash != "" && time.Now().Before(s.flashUntil) {
		var icon string
		var color lipgloss.TerminalColor
		switch s.flashLevel {
		case FlashSuccess:
			icon, color = "✓", styles.StatusSuccess
		case FlashError:
			icon, color = "✗", styles.StatusError
		case FlashWarning:
			icon, color = "⚠", styles.StatusWarning
		default: // FlashInfo
			icon, color = "●", styles.StatusRunning
		}
		flashStr := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon + " " + s.flash)
		left += sep + flashStr
	}

	right := styles.TextSecondaryStyle.Render("tab:focus  ctrl+c:quit") + " "

	rightWidth := lipgloss.Width(right)
	maxLeft := s.width - rightWidth - 1
	if maxLeft > 0 && lipgloss.Width(left) > maxLeft {
		left = ansi.Truncate(left, maxLeft, "…")
	}

	gap := s.width - lipgloss.Width(left) - rightWidth
	if gap < 1 {
		gap = 1
	}

	return left + strings.Repeat(" ", gap) + right
}

// SetStates updates the per-tool run states shown in the bar.
func (s *StatusBar) SetStates(bom, kicad task.State) {
	s.bomState = bom
	s.kicadState = kicad
}

func (s *StatusBar) SetFlash(msg string) {
	s.SetFlashWithLevel(msg, FlashInfo)
}

func (s *StatusBar) SetFlashWithLevel(msg string, level FlashLevel) {
	s.flash = msg
	s.flashLevel = level
	s.flashUntil = time.Now().Add(flashDurationVal)
}

func (s *StatusBar) ClearFlash() {
	s.flash = ""
	s.flashLevel = FlashInfo
	s.flashUntil = time.Time{}
}

func (s *StatusBar) SetSize(w int) {
	s.width = w
}

// Tick advances the animation frame for the status bar spinner.
func (s *StatusBar) Tick() {
	s.tickStep++
}
