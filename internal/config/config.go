package config

type Config struct {
	Scripts ScriptsConfig `yaml:"scripts"`
	KiCad   KiCadConfig   `yaml:"kicad"`
	UI      UIConfig      `yaml:"ui"`
	Update  UpdateConfig  `yaml:"update"`
}

// ScriptsConfig points at the two collaborator scripts and the
// interpreter used to run them.
type ScriptsConfig struct {
	Python      string `yaml:"python"`
	BOM         string `yaml:"bom"`
	KiCadExport string `yaml:"kicad_export"`
}

type KiCadConfig struct {
	// CLI overrides autodetection when set. Blank means run the
	// locator at startup.
	CLI string `yaml:"cli"`
}

type UIConfig struct {
	LogScrollSpeed int `yaml:"log_scroll_speed"`
	LogBufferLines int `yaml:"log_buffer_lines"`
}

type UpdateConfig struct {
	CheckOnStartup *bool  `yaml:"check_on_startup"`
	Repo           string `yaml:"repo"`
}
