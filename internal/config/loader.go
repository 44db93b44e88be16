package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name in the user and local directories.
const FileName = "picoarcade.yaml"

// Load loads the emulator configuration.
// Search order: customPath -> ~/.picoarcade/config.yaml -> ./configs/picoarcade.yaml -> embedded default
//
// Files are layered over the embedded defaults, so a file only needs the
// settings it changes. An explicit customPath that cannot be read or parsed
// is an error; broken files found by search are skipped.
func Load(customPath string) (Config, string, error) {
	base, err := embedded()
	if err != nil {
		return Config{}, "", err
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := layer(base, data)
		if err != nil {
			return base, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := layer(base, data); err == nil {
			return cfg, path, nil
		}
	}

	return base, "embedded", nil
}

// embedded decodes the built-in defaults.
func embedded() (Config, error) {
	cfg, err := layer(Default(), defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// layer decodes data over a copy of base and validates the result.
func layer(base Config, data []byte) (Config, error) {
	cfg := base
	cfg.Games = make(map[string]GameConfig, len(base.Games))
	for id, g := range base.Games {
		cfg.Games[id] = g
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".picoarcade", "config.yaml")
}
