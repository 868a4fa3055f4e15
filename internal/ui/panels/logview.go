package panels

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pcbdeck/pcbdeck/internal/process"
	"github.com/pcbdeck/pcbdeck/internal/task"
	"github.com/pcbdeck/pcbdeck/internal/ui/border"
	"github.com/pcbdeck/pcbdeck/internal/ui/styles"
)

const gTimeout = 300 * time.Millisecond

// GTimerExpiredMsg is sent when the gg double-tap window expires.
type GTimerExpiredMsg struct{}

// LogView shows the merged stdout/stderr transcript of the most recent
// run. It reads straight from the controller's ring buffer and
// re-renders on OutputLineMsg.
type LogView struct {
	viewport    viewport.Model
	width       int
	height      int
	buffer      *process.RingBuffer
	kind        task.Kind
	title       string
	active      bool
	follow      bool
	focused     bool
	gPending    bool
	scrollSpeed int
}

func NewLogView() LogView {
	vp := viewport.New(0, 0)
	return LogView{viewport: vp, follow: true, scrollSpeed: 3}
}

func (l LogView) Update(msg tea.Msg) (LogView, tea.Cmd) {
	switch msg := msg.(type) {
	case OutputLineMsg:
		if msg.Kind == l.kind && l.buffer != nil {
			atBottom := l.viewport.AtBottom()
			l.viewport.SetContent(l.renderContent())
			if atBottom || l.follow {
				l.viewport.GotoBottom()
			}
		}
		return l, nil
	case GTimerExpiredMsg:
		l.gPending = false
		return l, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "G":
			l.follow = true
			l.viewport.GotoBottom()
			return l, nil
		case "g":
			if l.gPending {
				l.gPending = false
				l.follow = false
				l.viewport.GotoTop()
				return l, nil
			}
			l.gPending = true
			l.follow = false
			return l, tea.Tick(gTimeout, func(time.Time) tea.Msg {
				return GTimerExpiredMsg{}
			})
		case "f":
			l.follow = !l.follow
			if l.follow {
				l.viewport.GotoBottom()
			}
			return l, nil
		case "y":
			text := l.transcript()
			if text == "" {
				return l, nil
			}
			return l, func() tea.Msg { return YankMsg{Text: text} }
		case "j", "down":
			l.follow = false
			step := l.scrollSpeed
			if step <= 0 {
				step = 1
			}
			l.viewport.SetYOffset(l.viewport.YOffset + step)
			return l, nil
		case "k", "up":
			l.follow = false
			step := l.scrollSpeed
			if step <= 0 {
				step = 1
			}
			offset := l.viewport.YOffset - step
			if offset < 0 {
				offset = 0
			}
			l.viewport.SetYOffset(offset)
			return l, nil
		}
	}

	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd
}

func (l LogView) View() string {
	title := "[3] Output"
	if l.title != "" {
		title = "[3] Output: " + l.title
	}

	var keybinds []border.Keybind
	if l.focused {
		keybinds = []border.Keybind{
			{Key: "y", Label: "ank"},
			{Key: "G", Label: " bottom"},
			{Key: "g", Label: "g top"},
			{Key: "f", Label: "ollow"},
		}
		if !l.viewport.AtBottom() && !l.follow {
			keybinds = append(keybinds, border.Keybind{Key: "↓", Label: " new output"})
		}
	}

	return border.RenderPanel(title, l.viewport.View(), keybinds, l.width, l.height, l.focused)
}

func (l *LogView) SetSize(w, h int) {
	l.width = w
	l.height = h
	innerW := w - 2
	innerH := h - 2
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}
	l.viewport.Width = innerW
	l.viewport.Height = innerH
	l.refreshContent()
}

func (l *LogView) SetFocused(focused bool) {
	l.focused = focused
}

func (l *LogView) SetScrollSpeed(speed int) {
	if speed > 0 {
		l.scrollSpeed = speed
	}
}

// SetRun points the view at a run's buffer. Follow mode re-engages so
// fresh output is visible immediately.
func (l *LogView) SetRun(kind task.Kind, title string, buf *process.RingBuffer, active bool) {
	l.kind = kind
	l.title = title
	l.buffer = buf
	l.active = active
	l.follow = true
	l.refreshContent()
}

// SetActive marks the current run finished or streaming without
// switching buffers.
func (l *LogView) SetActive(active bool) {
	l.active = active
	l.refreshContent()
}

// Kind returns the kind of the run currently shown.
func (l LogView) Kind() task.Kind { return l.kind }

func (l *LogView) refreshContent() {
	l.viewport.SetContent(l.renderContent())
	if l.follow {
		l.viewport.GotoBottom()
	}
}

// transcript returns the raw buffer contents for yanking.
func (l *LogView) transcript() string {
	if l.buffer == nil {
		return ""
	}
	return strings.Join(l.buffer.Lines(), "\n")
}

func (l *LogView) renderContent() string {
	if l.buffer == nil {
		return styles.TextDimStyle.Render("No run yet. Fill a form and press enter.")
	}
	lines := l.buffer.Lines()
	if len(lines) == 0 {
		return styles.TextDimStyle.Render("Waiting for output...")
	}

	styled := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "$ "):
			styled = append(styled, styles.TextSecondaryStyle.Render(line))
		case strings.HasPrefix(line, "✓ "):
			styled = append(styled, styles.StatusSuccessStyle.Render(line))
		case strings.HasPrefix(line, "✗ "):
			styled = append(styled, styles.StatusErrorStyle.Render(line))
		default:
			// Raw subprocess lines pass through unwrapped to preserve
			// any ANSI sequences they carry.
			styled = append(styled, line)
		}
	}

	result := strings.Join(styled, "\n")
	if l.active {
		result += " ▍"
	}
	return result
}
