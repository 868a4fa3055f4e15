package layout

// Layout holds the computed cell dimensions for all panels.
type Layout struct {
	TermWidth  int
	TermHeight int
	TooSmall   bool

	// Left column: the two tool forms stacked vertically.
	BOMFormWidth    int
	BOMFormHeight   int
	KiCadFormWidth  int
	KiCadFormHeight int

	// Right column: the output log.
	LogViewWidth  int
	LogViewHeight int

	// Status bar
	StatusBarWidth int
}

const (
	MinWidth  = 80
	MinHeight = 24

	LeftColWeight  = 0.45
	RightColWeight = 0.55
)

// Calculate computes panel dimensions from terminal size.
// Subtracts 1 row for the status bar before splitting.
// Returns Layout with TooSmall=true if under minimum.
func Calculate(termWidth, termHeight int) Layout {
	l := Layout{
		TermWidth:  termWidth,
		TermHeight: termHeight,
	}

	if termWidth < MinWidth || termHeight < MinHeight {
		l.TooSmall = true
		return l
	}

	usableHeight := termHeight - 1 // status bar

	leftWidth := int(float64(termWidth) * LeftColWeight)
	rightWidth := termWidth - leftWidth

	bomHeight := usableHeight / 2
	kicadHeight := usableHeight - bomHeight

	l.BOMFormWidth = leftWidth
	l.BOMFormHeight = bomHeight
	l.KiCadFormWidth = leftWidth
	l.KiCadFormHeight = kicadHeight

	l.LogViewWidth = rightWidth
	l.LogViewHeight = usableHeight

	l.StatusBarWidth = termWidth

	return l
}
