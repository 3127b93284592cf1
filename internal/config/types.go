package config

// Theme identifies a rendering color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// SizePreset names a viewer dimension preset.
type SizePreset string

const (
	SizeSmall  SizePreset = "small"
	SizeMedium SizePreset = "medium"
	SizeLarge  SizePreset = "large"
)

// Config is the top-level molembed configuration, corresponding to .molembed.yml.
type Config struct {
	InputDir  string        `yaml:"input_dir" koanf:"input_dir"`
	OutputDir string        `yaml:"output_dir" koanf:"output_dir"`
	Include   []string      `yaml:"include" koanf:"include"`
	Exclude   []string      `yaml:"exclude" koanf:"exclude"`
	Viewer    ViewerConfig  `yaml:"viewer" koanf:"viewer"`
	Diagram   DiagramConfig `yaml:"diagram" koanf:"diagram"`
	Server    ServerConfig  `yaml:"server" koanf:"server"`
}

// ViewerConfig holds settings for embedded 3D structure viewers.
type ViewerConfig struct {
	Width        int    `yaml:"width" koanf:"width"`
	Height       int    `yaml:"height" koanf:"height"`
	ShowControls bool   `yaml:"show_controls" koanf:"show_controls"`
	Background   string `yaml:"background" koanf:"background"`
}

// DiagramConfig holds settings for 2D chemical diagram rendering.
type DiagramConfig struct {
	Theme             Theme `yaml:"theme" koanf:"theme"`
	Width             int   `yaml:"width" koanf:"width"`
	Height            int   `yaml:"height" koanf:"height"`
	ExplicitHydrogens bool  `yaml:"explicit_hydrogens" koanf:"explicit_hydrogens"`
}

// ServerConfig holds settings for the preview server.
type ServerConfig struct {
	Addr           string   `yaml:"addr" koanf:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}
