package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pcbdeck/pcbdeck/internal/task"
	"github.com/pcbdeck/pcbdeck/internal/ui/border"
	"github.com/pcbdeck/pcbdeck/internal/ui/styles"
)

// Field indices within the KiCad form.
const (
	kicadFieldProject = iota
	kicadFieldOutputDir
	kicadFieldCLIPath
	kicadFieldSkipChecks
	kicadFieldSkipExports
	kicadFieldExportMode
	kicadFieldCount

	kicadTextFields = kicadFieldSkipChecks
)

var kicadFieldLabels = [kicadFieldCount]string{
	"Project file",
	"Output dir",
	"kicad-cli",
	"Skip checks",
	"Skip exports",
	"Export mode",
}

// KiCadForm collects the export pipeline arguments. The kicad-cli path
// is prefilled from detection at startup but stays editable.
type KiCadForm struct {
	inputs  [kicadTextFields]textinput.Model
	toggles [kicadFieldCount - kicadTextFields]bool
	cursor  int
	width   int
	height  int
	focused bool
	running bool
}

func NewKiCadForm() KiCadForm {
	f := KiCadForm{}
	placeholders := [kicadTextFields]string{
		"path/to/board.kicad_pro",
		"(default: outputs next to project)",
		"(auto-detected)",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 512
		ti.Prompt = ""
		f.inputs[i] = ti
	}
	return f
}

func (f KiCadForm) Update(msg tea.Msg) (KiCadForm, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch key.String() {
	case "down":
		f.moveCursor(1)
		return f, nil
	case "up":
		f.moveCursor(-1)
		return f, nil
	case "enter":
		if f.running {
			return f, nil
		}
		form := f.Value()
		return f, func() tea.Msg { return SubmitKiCadRunMsg{Form: form} }
	case " ":
		if f.cursor >= kicadTextFields {
			i := f.cursor - kicadTextFields
			f.toggles[i] = !f.toggles[i]
			return f, nil
		}
	}

	if f.cursor < kicadTextFields {
		var cmd tea.Cmd
		f.inputs[f.cursor], cmd = f.inputs[f.cursor].Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f *KiCadForm) moveCursor(delta int) {
	if f.cursor < kicadTextFields {
		f.inputs[f.cursor].Blur()
	}
	f.cursor = (f.cursor + delta + kicadFieldCount) % kicadFieldCount
	if f.cursor < kicadTextFields {
		f.inputs[f.cursor].Focus()
	}
}

// Value snapshots the current field contents.
func (f KiCadForm) Value() task.KiCadForm {
	return task.KiCadForm{
		ProjectFile: strings.TrimSpace(f.inputs[kicadFieldProject].Value()),
		OutputDir:   strings.TrimSpace(f.inputs[kicadFieldOutputDir].Value()),
		CLIPath:     strings.TrimSpace(f.inputs[kicadFieldCLIPath].Value()),
		SkipChecks:  f.toggles[kicadFieldSkipChecks-kicadTextFields],
		SkipExports: f.toggles[kicadFieldSkipExports-kicadTextFields],
		ExportMode:  f.toggles[kicadFieldExportMode-kicadTextFields],
	}
}

func (f KiCadForm) View() string {
	var b strings.Builder

	labelStyle := styles.TextSecondaryStyle
	for i := 0; i < kicadTextFields; i++ {
		if i == f.cursor && f.focused {
			b.WriteString(styles.SelectedOptionStyle.Render("› "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(labelStyle.Render(padLabel(kicadFieldLabels[i])))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	for i := kicadTextFields; i < kicadFieldCount; i++ {
		if i == f.cursor && f.focused {
			b.WriteString(styles.SelectedOptionStyle.Render("› "))
		} else {
			b.WriteString("  ")
		}
		check := "[ ]"
		if f.toggles[i-kicadTextFields] {
			check = "[x]"
		}
		b.WriteString(labelStyle.Render(padLabel(kicadFieldLabels[i])))
		b.WriteString(styles.TextPrimaryStyle.Render(check))
		if i < kicadFieldCount-1 {
			b.WriteString("\n")
		}
	}

	if f.running {
		b.WriteString("\n\n")
		b.WriteString(styles.StatusRunningStyle.Render("● exporting..."))
	}

	var kb []border.Keybind
	if f.focused {
		kb = []border.Keybind{
			{Key: "enter", Label: " run"},
			{Key: "↑↓", Label: " field"},
			{Key: "space", Label: " toggle"},
			{Key: "^d", Label: " detect"},
		}
	}

	title := "[2] KiCad Export"
	return border.RenderPanel(title, b.String(), kb, f.width, f.height, f.focused)
}

func (f *KiCadForm) SetSize(w, h int) {
	f.width = w
	f.height = h
	inner := w - 2 - 2 - 14
	if inner < 10 {
		inner = 10
	}
	for i := range f.inputs {
		f.inputs[i].Width = inner
	}
}

func (f *KiCadForm) SetFocused(focused bool) {
	f.focused = focused
	if f.cursor < kicadTextFields {
		if focused {
			f.inputs[f.cursor].Focus()
		} else {
			f.inputs[f.cursor].Blur()
		}
	}
}

func (f *KiCadForm) SetRunning(running bool) {
	f.running = running
}

// SetCLIPath prefills the kicad-cli field from detection or config.
// An already edited field is left alone.
func (f *KiCadForm) SetCLIPath(path string) {
	if f.inputs[kicadFieldCLIPath].Value() == "" {
		f.inputs[kicadFieldCLIPath].SetValue(path)
	}
}

// ReplaceCLIPath overwrites the kicad-cli field, used by on-demand
// re-detection.
func (f *KiCadForm) ReplaceCLIPath(path string) {
	f.inputs[kicadFieldCLIPath].SetValue(path)
}

// SetProjectFile prefills the project path, used by the --project CLI flag.
func (f *KiCadForm) SetProjectFile(path string) {
	f.inputs[kicadFieldProject].SetValue(path)
}
