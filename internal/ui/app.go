package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/pcbdeck/pcbdeck/internal/config"
	"github.com/pcbdeck/pcbdeck/internal/locate"
	"github.com/pcbdeck/pcbdeck/internal/process"
	"github.com/pcbdeck/pcbdeck/internal/task"
	"github.com/pcbdeck/pcbdeck/internal/ui/clipboard"
	"github.com/pcbdeck/pcbdeck/internal/ui/layout"
	"github.com/pcbdeck/pcbdeck/internal/ui/panels"
)

const (
	panelBOMForm   = 0
	panelKiCadForm = 1
	panelLogView   = 2
	numPanels      = 3
)

const spinnerInterval = 120 * time.Millisecond

type spinnerTickMsg struct{}

type App struct {
	config       *config.Config
	controller   *process.Controller
	log          zerolog.Logger
	width        int
	height       int
	layout       layout.Layout
	focusedPanel int
	bomForm      panels.BOMForm
	kicadForm    panels.KiCadForm
	logView      panels.LogView
	statusBar    panels.StatusBar
	keys         KeyMap
	ready        bool
	spinning     bool
}

func NewApp(cfg *config.Config, ctrl *process.Controller, logger zerolog.Logger) App {
	bf := panels.NewBOMForm()
	bf.SetFocused(true)
	kf := panels.NewKiCadForm()
	if cfg.KiCad.CLI != "" {
		kf.SetCLIPath(cfg.KiCad.CLI)
	}
	lv := panels.NewLogView()
	lv.SetScrollSpeed(cfg.UI.LogScrollSpeed)

	return App{
		config:     cfg,
		controller: ctrl,
		log:        logger,
		bomForm:    bf,
		kicadForm:  kf,
		logView:    lv,
		statusBar:  panels.NewStatusBar(),
		keys:       DefaultKeyMap(),
	}
}

// PrefillKiCadCLI fills the form's kicad-cli field from detection.
func (a *App) PrefillKiCadCLI(path string) {
	a.kicadForm.SetCLIPath(path)
}

// PrefillBOMInput fills the BOM form's input path from the CLI flag.
func (a *App) PrefillBOMInput(path string) {
	a.bomForm.SetInputCSV(path)
}

// PrefillKiCadProject fills the KiCad form's project path from the CLI flag.
func (a *App) PrefillKiCadProject(path string) {
	a.kicadForm.SetProjectFile(path)
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout = layout.Calculate(msg.Width, msg.Height)
		a.propagateSizes()
		return a, nil

	case panels.OutputLineMsg:
		var cmd tea.Cmd
		a.logView, cmd = a.logView.Update(msg)
		return a, cmd

	case RunDoneMsg:
		return a.handleRunDone(msg)

	case panels.SubmitBOMRunMsg:
		return a.startRun(task.KindBOM, "bom convert", func() (task.Request, error) {
			return msg.Form.Request(a.config.Scripts.Python, a.config.Scripts.BOM)
		})

	case panels.SubmitKiCadRunMsg:
		return a.startRun(task.KindKiCad, "kicad export", func() (task.Request, error) {
			return msg.Form.Request(a.config.Scripts.Python, a.config.Scripts.KiCadExport)
		})

	case panels.YankMsg:
		if err := clipboard.Copy(msg.Text); err != nil {
			a.statusBar.SetFlashWithLevel("copy failed: "+err.Error(), panels.FlashError)
		} else {
			a.statusBar.SetFlashWithLevel("output copied", panels.FlashSuccess)
		}
		return a, clearFlashLater()

	case ClearFlashMsg:
		a.statusBar.ClearFlash()
		return a, nil

	case UpdateAvailableMsg:
		a.statusBar.SetFlash(fmt.Sprintf("update %s available; run pcbdeck update", msg.Version))
		return a, clearFlashLater()

	case spinnerTickMsg:
		if !a.anyRunning() {
			a.spinning = false
			return a, nil
		}
		a.statusBar.Tick()
		return a, spinnerTick()

	case panels.GTimerExpiredMsg:
		var cmd tea.Cmd
		a.logView, cmd = a.logView.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case msg.String() == "q":
			// q only quits from the log view; the forms need the letter.
			if a.focusedPanel == panelLogView {
				return a, tea.Quit
			}
		case key.Matches(msg, a.keys.FocusNext):
			a.focusedPanel = (a.focusedPanel + 1) % numPanels
			a.updateFocusState()
			return a, nil
		case key.Matches(msg, a.keys.FocusPrev):
			a.focusedPanel = (a.focusedPanel - 1 + numPanels) % numPanels
			a.updateFocusState()
			return a, nil
		case key.Matches(msg, a.keys.Detect):
			if a.focusedPanel == panelKiCadForm {
				return a.redetectCLI()
			}
		}
		return a.routeKey(msg)
	}
	return a, nil
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			a.width, a.height, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	leftCol := lipgloss.JoinVertical(lipgloss.Left, a.bomForm.View(), a.kicadForm.View())
	row := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, a.logView.View())
	return lipgloss.JoinVertical(lipgloss.Left, row, a.statusBar.View())
}

func (a App) redetectCLI() (tea.Model, tea.Cmd) {
	path, err := locate.Locate()
	if err != nil {
		a.log.Warn().Err(err).Msg("kicad-cli re-detection failed")
		a.statusBar.SetFlashWithLevel("kicad-cli not found", panels.FlashWarning)
		return a, clearFlashLater()
	}
	a.kicadForm.ReplaceCLIPath(path)
	a.statusBar.SetFlashWithLevel(fmt.Sprintf("detected %s", path), panels.FlashInfo)
	return a, clearFlashLater()
}

func (a App) startRun(kind task.Kind, title string, build func() (task.Request, error)) (tea.Model, tea.Cmd) {
	req, err := build()
	if err != nil {
		a.log.Warn().Err(err).Str("kind", string(kind)).Msg("run rejected")
		a.statusBar.SetFlashWithLevel(err.Error(), panels.FlashError)
		return a, clearFlashLater()
	}

	if err := a.controller.Start(req); err != nil {
		if errors.Is(err, process.ErrBusy) {
			a.statusBar.SetFlashWithLevel("already running", panels.FlashWarning)
		} else {
			a.statusBar.SetFlashWithLevel(err.Error(), panels.FlashError)
		}
		return a, clearFlashLater()
	}

	a.logView.SetRun(kind, title, a.controller.Buffer(kind), true)
	a.setRunning(kind, true)
	a.syncStates()

	cmds := []tea.Cmd{}
	if !a.spinning {
		a.spinning = true
		cmds = append(cmds, spinnerTick())
	}
	return a, tea.Batch(cmds...)
}

func (a App) handleRunDone(msg RunDoneMsg) (tea.Model, tea.Cmd) {
	done := msg.Done
	a.setRunning(done.Kind, false)
	a.syncStates()
	if a.logView.Kind() == done.Kind {
		a.logView.SetActive(false)
	}

	switch done.Outcome {
	case task.OutcomeSuccess:
		a.statusBar.SetFlashWithLevel("completed", panels.FlashSuccess)
	case task.OutcomeExitError:
		a.statusBar.SetFlashWithLevel(
			fmt.Sprintf("exited with code %d", done.ExitCode), panels.FlashError)
	default:
		flash := "launch failed"
		if done.Message != "" {
			flash = done.Message
		}
		a.statusBar.SetFlashWithLevel(flash, panels.FlashError)
	}
	return a, clearFlashLater()
}

func (a App) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.focusedPanel {
	case panelBOMForm:
		var cmd tea.Cmd
		a.bomForm, cmd = a.bomForm.Update(msg)
		return a, cmd
	case panelKiCadForm:
		var cmd tea.Cmd
		a.kicadForm, cmd = a.kicadForm.Update(msg)
		return a, cmd
	case panelLogView:
		var cmd tea.Cmd
		a.logView, cmd = a.logView.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) setRunning(kind task.Kind, running bool) {
	switch kind {
	case task.KindBOM:
		a.bomForm.SetRunning(running)
	case task.KindKiCad:
		a.kicadForm.SetRunning(running)
	}
}

func (a *App) syncStates() {
	a.statusBar.SetStates(
		a.controller.State(task.KindBOM),
		a.controller.State(task.KindKiCad),
	)
}

func (a *App) anyRunning() bool {
	return a.controller.State(task.KindBOM) == task.StateRunning ||
		a.controller.State(task.KindKiCad) == task.StateRunning
}

func (a *App) propagateSizes() {
	l := a.layout
	a.bomForm.SetSize(l.BOMFormWidth, l.BOMFormHeight)
	a.kicadForm.SetSize(l.KiCadFormWidth, l.KiCadFormHeight)
	a.logView.SetSize(l.LogViewWidth, l.LogViewHeight)
	a.statusBar.SetSize(l.StatusBarWidth)
}

func (a *App) updateFocusState() {
	a.bomForm.SetFocused(a.focusedPanel == panelBOMForm)
	a.kicadForm.SetFocused(a.focusedPanel == panelKiCadForm)
	a.logView.SetFocused(a.focusedPanel == panelLogView)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func clearFlashLater() tea.Cmd {
	return tea.Tick(panels.FlashDuration(), func(time.Time) tea.Msg {
		return ClearFlashMsg{}
	})
}
