// Package logging sets up the debug log file. The TUI owns the terminal,
// so diagnostics never go to stdout/stderr while the program is running.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Open returns a logger appending JSON lines to
// <user state dir>/pcbdeck/pcbdeck.log, plus the file handle for the
// caller to close on exit. If the state dir cannot be created the
// logger is disabled rather than failing startup.
func Open() (zerolog.Logger, *os.File, error) {
	dir, err := stateDir()
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, "pcbdeck.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, f, nil
}

func stateDir() (string, error) {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "pcbdeck"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "state", "pcbdeck"), nil
}
