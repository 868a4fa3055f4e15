// Package locate finds the kicad-cli executable on the host. Absence is a
// normal outcome: callers leave the CLI-path field blank and let the user
// fill it in by hand.
package locate

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ErrNotFound is returned when neither the search path nor any of the
// static install locations holds a kicad-cli binary.
var ErrNotFound = errors.New("kicad-cli not found")

// commandNames are probed on PATH, in order. Some distros ship the CLI
// under the snap-style dotted name.
var commandNames = []string{"kicad-cli", "kicad.kicad-cli"}

// Locate returns an invocable path for kicad-cli: a PATH hit first, then
// the first static candidate that exists on disk, then ErrNotFound.
func Locate() (string, error) {
	return locateFrom(exec.LookPath, Candidates())
}

func locateFrom(lookPath func(string) (string, error), candidates []string) (string, error) {
	for _, name := range commandNames {
		if path, err := lookPath(name); err == nil {
			return path, nil
		}
	}
	for _, path := range candidates {
		if fileExists(path) {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// Candidates returns the ordered static install locations for the
// current OS. Entries are not checked for existence.
func Candidates() []string {
	switch runtime.GOOS {
	case "windows":
		return windowsCandidates()
	case "darwin":
		return []string{
			"/Applications/KiCad/KiCad.app/Contents/MacOS/kicad-cli",
		}
	default:
		return []string{
			"/usr/bin/kicad-cli",
			"/usr/local/bin/kicad-cli",
			"/usr/lib/kicad/bin/kicad-cli",
		}
	}
}

// windowsCandidates covers the vendor-default and per-user install dirs,
// including user profiles on secondary drives (mirrors what the export
// script itself probes).
func windowsCandidates() []string {
	var paths []string

	programFiles := os.Getenv("ProgramFiles")
	if programFiles == "" {
		programFiles = `C:\Program Files`
	}
	paths = append(paths, filepath.Join(programFiles, "KiCad", "9.0", "bin", "kicad-cli.exe"))

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		paths = append(paths, filepath.Join(localAppData, "Programs", "KiCad", "9.0", "bin", "kicad-cli.exe"))
	}

	for _, drive := range []string{`C:\`, `D:\`} {
		paths = append(paths, perUserCandidates(filepath.Join(drive, "Users"))...)
	}

	return paths
}

// perUserCandidates enumerates user profile dirs under usersRoot and maps
// each to its per-user KiCad install path. An unreadable root yields nil.
func perUserCandidates(usersRoot string) []string {
	entries, err := os.ReadDir(usersRoot)
	if err != nil {
		return nil
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(
			usersRoot, entry.Name(),
			"AppData", "Local", "Programs", "KiCad", "9.0", "bin", "kicad-cli.exe",
		))
	}
	return paths
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
