package config

// DefaultUpdateRepo is the GitHub slug releases are published under.
const DefaultUpdateRepo = "pcbdeck/pcbdeck"

func boolPtr(b bool) *bool { return &b }

func DefaultConfig() Config {
	return Config{
		Scripts: ScriptsConfig{
			Python:      "python3",
			BOM:         "bom_transform.py",
			KiCadExport: "kicad_export.py",
		},
		UI: UIConfig{
			LogScrollSpeed: 3,
			LogBufferLines: 10000,
		},
		Update: UpdateConfig{
			CheckOnStartup: boolPtr(true),
			Repo:           DefaultUpdateRepo,
		},
	}
}
