package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pcbdeck/pcbdeck/internal/task"
	"github.com/pcbdeck/pcbdeck/internal/ui/border"
	"github.com/pcbdeck/pcbdeck/internal/ui/styles"
)

// Field indices within the BOM form.
const (
	bomFieldInput = iota
	bomFieldOutputDir
	bomFieldProjectName
	bomFieldMapping
	bomFieldQuiet
	bomFieldCount
)

var bomFieldLabels = [bomFieldCount]string{
	"Input CSV",
	"Output dir",
	"Project name",
	"Mapping file",
	"Quiet",
}

// BOMForm collects the converter arguments: the input CSV is required,
// everything else is optional.
type BOMForm struct {
	inputs  [bomFieldQuiet]textinput.Model
	quiet   bool
	cursor  int
	width   int
	height  int
	focused bool
	running bool
}

func NewBOMForm() BOMForm {
	f := BOMForm{}
	placeholders := [bomFieldQuiet]string{
		"path/to/BOM.csv",
		"(default: outputs next to input)",
		"(default: derived from CSV name)",
		"(optional custom mapping)",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 512
		ti.Prompt = ""
		f.inputs[i] = ti
	}
	f.inputs[bomFieldInput].Focus()
	return f
}

func (f BOMForm) Update(msg tea.Msg) (BOMForm, tea.Cmd) {
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
		return f, func() tea.Msg { return SubmitBOMRunMsg{Form: form} }
	case " ":
		if f.cursor == bomFieldQuiet {
			f.quiet = !f.quiet
			return f, nil
		}
	}

	if f.cursor < bomFieldQuiet {
		var cmd tea.Cmd
		f.inputs[f.cursor], cmd = f.inputs[f.cursor].Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f *BOMForm) moveCursor(delta int) {
	if f.cursor < bomFieldQuiet {
		f.inputs[f.cursor].Blur()
	}
	f.cursor = (f.cursor + delta + bomFieldCount) % bomFieldCount
	if f.cursor < bomFieldQuiet {
		f.inputs[f.cursor].Focus()
	}
}

// Value snapshots the current field contents.
func (f BOMForm) Value() task.BOMForm {
	return task.BOMForm{
		InputCSV:    strings.TrimSpace(f.inputs[bomFieldInput].Value()),
		OutputDir:   strings.TrimSpace(f.inputs[bomFieldOutputDir].Value()),
		ProjectName: strings.TrimSpace(f.inputs[bomFieldProjectName].Value()),
		MappingFile: strings.TrimSpace(f.inputs[bomFieldMapping].Value()),
		Quiet:       f.quiet,
	}
}

func (f BOMForm) View() string {
	var b strings.Builder

	labelStyle := styles.TextSecondaryStyle
	for i := 0; i < bomFieldQuiet; i++ {
		label := bomFieldLabels[i]
		if i == f.cursor && f.focused {
			b.WriteString(styles.SelectedOptionStyle.Render("› "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(labelStyle.Render(padLabel(label)))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	// Quiet toggle row
	if f.cursor == bomFieldQuiet && f.focused {
		b.WriteString(styles.SelectedOptionStyle.Render("› "))
	} else {
		b.WriteString("  ")
	}
	check := "[ ]"
	if f.quiet {
		check = "[x]"
	}
	b.WriteString(labelStyle.Render(padLabel(bomFieldLabels[bomFieldQuiet])))
	b.WriteString(styles.TextPrimaryStyle.Render(check))

	if f.running {
		b.WriteString("\n\n")
		b.WriteString(styles.StatusRunningStyle.Render("● converting..."))
	}

	var kb []border.Keybind
	if f.focused {
		kb = []border.Keybind{
			{Key: "enter", Label: " run"},
			{Key: "↑↓", Label: " field"},
			{Key: "space", Label: " toggle"},
		}
	}

	title := "[1] BOM Converter"
	return border.RenderPanel(title, b.String(), kb, f.width, f.height, f.focused)
}

func (f *BOMForm) SetSize(w, h int) {
	f.width = w
	f.height = h
	inner := w - 2 - 2 - 14 // borders, cursor gutter, label column
	if inner < 10 {
		inner = 10
	}
	for i := range f.inputs {
		f.inputs[i].Width = inner
	}
}

func (f *BOMForm) SetFocused(focused bool) {
	f.focused = focused
	if f.cursor < bomFieldQuiet {
		if focused {
			f.inputs[f.cursor].Focus()
		} else {
			f.inputs[f.cursor].Blur()
		}
	}
}

func (f *BOMForm) SetRunning(running bool) {
	f.running = running
}

// SetInputCSV prefills the input path, used by the --input CLI flag.
func (f *BOMForm) SetInputCSV(path string) {
	f.inputs[bomFieldInput].SetValue(path)
}

func padLabel(label string) string {
	const labelWidth = 14
	if len(label) >= labelWidth {
		return label + " "
	}
	return label + strings.Repeat(" ", labelWidth-len(label))
}
