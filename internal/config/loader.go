package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// localConfigPath is tried relative to the working directory.
const localConfigPath = "configs/layers.yaml"

// Load loads the shell configuration.
// Search order: customPath -> ~/.layers/config.yaml -> ./configs/layers.yaml -> embedded default.
// Files are applied on top of the defaults, so they only need the keys they change.
// Only a broken custom file is an error; broken implicit files are skipped.
func Load(customPath string) (Config, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, SourceCustom, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultLayersYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return Default(), SourceBuiltin, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".layers", filename)
}
