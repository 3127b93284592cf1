package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (MOLEMBED_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables. Double underscore separates nesting
	// levels: MOLEMBED_VIEWER__WIDTH -> viewer.width, MOLEMBED_OUTPUT_DIR
	// -> output_dir.
	if err := k.Load(env.Provider("MOLEMBED_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "MOLEMBED_")), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validThemes is the set of recognized diagram theme values.
var validThemes = map[Theme]bool{
	ThemeLight: true,
	ThemeDark:  true,
}

// backgroundPattern matches hex colors, rgb()/rgba() expressions, and
// plain color keywords. Anything else is rejected.
var backgroundPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|rgba?\([0-9.,\s%]+\))$`)

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Viewer.Width < 0 || c.Viewer.Height < 0 {
		return fmt.Errorf("viewer dimensions must be non-negative")
	}
	if c.Viewer.Background != "" && !backgroundPattern.MatchString(c.Viewer.Background) {
		return fmt.Errorf("invalid viewer background %q", c.Viewer.Background)
	}

	if c.Diagram.Theme != "" && !validThemes[c.Diagram.Theme] {
		return fmt.Errorf("invalid diagram theme %q: must be one of light, dark", c.Diagram.Theme)
	}
	if c.Diagram.Width < 0 || c.Diagram.Height < 0 {
		return fmt.Errorf("diagram dimensions must be non-negative")
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}

	return nil
}
