package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the name of the defaults file inside Dir().
const configFile = "config.yaml"

// Config holds user defaults for chfmt. Every field is optional; flags and
// environment variables take precedence over anything set here.
type Config struct {
	// Width overrides terminal width detection. Zero means detect.
	Width int `yaml:"width,omitempty"`
	// Trim is the default word limit for display text. Zero disables.
	Trim int `yaml:"trim,omitempty"`
	// Timestamp controls the default timestamp visibility. Unset means show.
	Timestamp *bool `yaml:"timestamp,omitempty"`
	// Color is the default color mode: "never", "always", or "auto".
	Color string `yaml:"color,omitempty"`
}

// Load reads the defaults file from the configuration directory. A missing
// file or missing directory yields an empty config and no error; a present
// but unparseable file is an error the caller may choose to warn about.
func Load() (*Config, error) {
	dir := Dir()
	if dir == "" {
		return &Config{}, nil
	}
	return LoadFile(filepath.Join(dir, configFile))
}

// LoadFile reads a defaults file from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
