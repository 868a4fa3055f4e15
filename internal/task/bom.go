package task

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BOMForm holds the raw field values from the BOM panel. Fields are kept
// as typed-in strings; Validate and Request do the interpretation.
type BOMForm struct {
	InputCSV    string
	OutputDir   string // blank = <dir of InputCSV>/outputs
	ProjectName string
	MappingFile string
	Quiet       bool
}

// Validate checks required fields and referenced paths. It reports the
// first problem so the panel can show it inline next to the form.
func (f BOMForm) Validate() error {
	input := strings.TrimSpace(f.InputCSV)
	if input == "" {
		return fmt.Errorf("input CSV is required")
	}
	if fi, err := os.Stat(input); err != nil || fi.IsDir() {
		return fmt.Errorf("input CSV %s does not exist", input)
	}
	if mapping := strings.TrimSpace(f.MappingFile); mapping != "" {
		if _, err := os.Stat(mapping); err != nil {
			return fmt.Errorf("mapping file %s does not exist", mapping)
		}
	}
	return nil
}

// ResolvedOutputDir returns the output directory that a run would use:
// the explicit field value, or <dir of input>/outputs when blank.
func (f BOMForm) ResolvedOutputDir() string {
	if dir := strings.TrimSpace(f.OutputDir); dir != "" {
		return dir
	}
	return filepath.Join(filepath.Dir(strings.TrimSpace(f.InputCSV)), "outputs")
}

// Request builds the run request for the BOM conversion script. The
// output directory is created if missing so the script never has to.
func (f BOMForm) Request(python, script string) (Request, error) {
	if err := f.Validate(); err != nil {
		return Request{}, err
	}

	input := strings.TrimSpace(f.InputCSV)
	outDir := f.ResolvedOutputDir()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Request{}, fmt.Errorf("create output dir %s: %w", outDir, err)
	}

	args := []string{script, "--input", input, "--output-dir", outDir}
	if name := strings.TrimSpace(f.ProjectName); name != "" {
		args = append(args, "--project-name", name)
	}
	if mapping := strings.TrimSpace(f.MappingFile); mapping != "" {
		args = append(args, "--mapping", mapping)
	}
	if f.Quiet {
		args = append(args, "--quiet")
	}

	return NewRequest(KindBOM, python, args, filepath.Dir(input)), nil
}
