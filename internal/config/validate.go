package config

import (
	"fmt"
	"strings"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate checks the config for internal consistency. All checks run,
// errors are collected, not short-circuited.
func validate(cfg *Config) error {
	var errs []string

	if strings.TrimSpace(cfg.Scripts.Python) == "" {
		errs = append(errs, "scripts.python must not be empty")
	}
	if strings.TrimSpace(cfg.Scripts.BOM) == "" {
		errs = append(errs, "scripts.bom must not be empty")
	}
	if strings.TrimSpace(cfg.Scripts.KiCadExport) == "" {
		errs = append(errs, "scripts.kicad_export must not be empty")
	}

	if cfg.UI.LogScrollSpeed <= 0 {
		errs = append(errs, "ui.log_scroll_speed must be positive")
	}
	if cfg.UI.LogBufferLines < 100 {
		errs = append(errs, "ui.log_buffer_lines must be at least 100")
	}

	if cfg.Update.Repo != "" && !strings.Contains(cfg.Update.Repo, "/") {
		errs = append(errs, fmt.Sprintf("update.repo %q must be an owner/name slug", cfg.Update.Repo))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
