package task

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KiCadForm holds the raw field values from the KiCad panel. CLIPath may
// be blank; the export script falls back to its own detection, and a
// bad path simply surfaces as a run failure in the log.
type KiCadForm struct {
	ProjectFile string
	OutputDir   string // blank = <dir of ProjectFile>/outputs
	CLIPath     string
	SkipChecks  bool
	SkipExports bool
	ExportMode  bool
}

// Validate checks required fields and referenced paths before a run is
// built. The CLI path is deliberately not preflighted.
func (f KiCadForm) Validate() error {
	project := strings.TrimSpace(f.ProjectFile)
	if project == "" {
		return fmt.Errorf("project file is required")
	}
	if fi, err := os.Stat(project); err != nil || fi.IsDir() {
		return fmt.Errorf("project file %s does not exist", project)
	}
	return nil
}

// ResolvedOutputDir returns the output directory that a run would use.
func (f KiCadForm) ResolvedOutputDir() string {
	if dir := strings.TrimSpace(f.OutputDir); dir != "" {
		return dir
	}
	return filepath.Join(filepath.Dir(strings.TrimSpace(f.ProjectFile)), "outputs")
}

// Request builds the run request for the KiCad export script.
func (f KiCadForm) Request(python, script string) (Request, error) {
	if err := f.Validate(); err != nil {
		return Request{}, err
	}

	project := strings.TrimSpace(f.ProjectFile)
	outDir := f.ResolvedOutputDir()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Request{}, fmt.Errorf("create output dir %s: %w", outDir, err)
	}

	args := []string{script, project, "-o", outDir}
	if cli := strings.TrimSpace(f.CLIPath); cli != "" {
		args = append(args, "--kicad-cli", cli)
	}
	if f.SkipChecks {
		args = append(args, "--skip-checks")
	}
	if f.SkipExports {
		args = append(args, "--skip-exports")
	}
	if f.ExportMode {
		args = append(args, "--export-mode")
	}

	return NewRequest(KindKiCad, python, args, filepath.Dir(project)), nil
}
