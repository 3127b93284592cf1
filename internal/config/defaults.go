package config

// DimensionPreset describes viewer and diagram dimensions for a size tier.
type DimensionPreset struct {
	ViewerWidth   int
	ViewerHeight  int
	DiagramWidth  int
	DiagramHeight int
}

// sizePresets maps each size tier to its dimension choices.
var sizePresets = map[SizePreset]DimensionPreset{
	SizeSmall:  {ViewerWidth: 400, ViewerHeight: 300, DiagramWidth: 280, DiagramHeight: 210},
	SizeMedium: {ViewerWidth: 640, ViewerHeight: 480, DiagramWidth: 400, DiagramHeight: 300},
	SizeLarge:  {ViewerWidth: 960, ViewerHeight: 720, DiagramWidth: 600, DiagramHeight: 450},
}

// DefaultExcludes are glob patterns excluded from discovery by default.
var DefaultExcludes = []string{
	"vendor/**",
	"node_modules/**",
	".git/**",
	"dist/**",
	"build/**",
	"*.bak",
	"*.tmp",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	preset := sizePresets[SizeMedium]
	return &Config{
		InputDir:  ".",
		OutputDir: "gallery",
		Include:   []string{"**"},
		Exclude:   DefaultExcludes,
		Viewer: ViewerConfig{
			Width:        preset.ViewerWidth,
			Height:       preset.ViewerHeight,
			ShowControls: false,
			Background:   "#ffffff",
		},
		Diagram: DiagramConfig{
			Theme:             ThemeLight,
			Width:             preset.DiagramWidth,
			Height:            preset.DiagramHeight,
			ExplicitHydrogens: false,
		},
		Server: ServerConfig{
			Addr:           "127.0.0.1:8475",
			AllowedOrigins: []string{"*"},
		},
	}
}

// GetPreset returns the dimension preset for the given size tier.
// Returns the medium preset if the tier is not recognized.
func GetPreset(size SizePreset) DimensionPreset {
	if preset, ok := sizePresets[size]; ok {
		return preset
	}
	return sizePresets[SizeMedium]
}
