package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// searchNames are the file names tried in each config directory, in order.
var searchNames = []string{"breakout.yaml", "breakout.yml", "breakout.toml"}

// Load loads and validates the Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.{yaml,yml,toml}
// -> ./configs/breakout.{yaml,yml,toml} -> embedded default.
//
// A custom path that cannot be read or parsed is an error. Files found on the
// search path that fail to parse are skipped. Whatever is loaded is validated,
// so a malformed value always surfaces as a *ConfigurationError.
func Load(customPath string) (BreakoutConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (BreakoutConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, dir := range searchDirs() {
		for _, name := range searchNames {
			if cfg, err := LoadFile(filepath.Join(dir, name)); err == nil {
				return cfg, nil
			}
		}
	}

	var cfg BreakoutConfig
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads a single config file, choosing the format by extension.
// Fields missing from the file keep their default values.
func LoadFile(path string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := Parse(data, filepath.Ext(path), &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data into cfg using the format implied by ext
// (".yaml", ".yml" or ".toml").
func Parse(data []byte, ext string, cfg *BreakoutConfig) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// searchDirs returns the directories searched when no custom path is given.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".breakout", "configs"))
	}
	return append(dirs, "configs")
}
