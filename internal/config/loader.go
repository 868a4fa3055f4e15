package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using the given directory for file discovery.
// This is the testable entry point; Load() calls it with os.Getwd().
func LoadFrom(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path, err := discoverConfigPath(dir)
	if err != nil {
		return nil, fmt.Errorf("config discovery: %w", err)
	}

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath searches the discovery chain and returns the first
// config file that exists. Empty string means defaults-only mode.
func discoverConfigPath(dir string) (string, error) {
	local := filepath.Join(dir, "pcbdeck.yaml")
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil // can't resolve home, skip
	}
	user := filepath.Join(home, ".config", "pcbdeck", "config.yaml")
	if _, err := os.Stat(user); err == nil {
		return user, nil
	}

	return "", nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

// merge overlays override onto base. Scalar fields override when non-zero;
// pointer-to-bool fields override when non-nil.
func merge(base *Config, override *Config) {
	if override.Scripts.Python != "" {
		base.Scripts.Python = override.Scripts.Python
	}
	if override.Scripts.BOM != "" {
		base.Scripts.BOM = override.Scripts.BOM
	}
	if override.Scripts.KiCadExport != "" {
		base.Scripts.KiCadExport = override.Scripts.KiCadExport
	}

	if override.KiCad.CLI != "" {
		base.KiCad.CLI = override.KiCad.CLI
	}

	if override.UI.LogScrollSpeed != 0 {
		base.UI.LogScrollSpeed = override.UI.LogScrollSpeed
	}
	if override.UI.LogBufferLines != 0 {
		base.UI.LogBufferLines = override.UI.LogBufferLines
	}

	if override.Update.CheckOnStartup != nil {
		base.Update.CheckOnStartup = override.Update.CheckOnStartup
	}
	if override.Update.Repo != "" {
		base.Update.Repo = override.Update.Repo
	}
}

// applyEnvOverrides applies PCBDECK_* environment variables on top of the
// merged config. Env wins over file, file wins over defaults.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PCBDECK_PYTHON"); v != "" {
		cfg.Scripts.Python = v
	}
	if v := os.Getenv("PCBDECK_BOM_SCRIPT"); v != "" {
		cfg.Scripts.BOM = v
	}
	if v := os.Getenv("PCBDECK_KICAD_EXPORT_SCRIPT"); v != "" {
		cfg.Scripts.KiCadExport = v
	}
	if v := os.Getenv("PCBDECK_KICAD_CLI"); v != "" {
		cfg.KiCad.CLI = v
	}
	if v := os.Getenv("PCBDECK_UPDATE_CHECK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Update.CheckOnStartup = boolPtr(b)
		}
	}
}
