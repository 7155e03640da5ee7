package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-local override checked after the user directory.
const LocalConfigPath = "configs/stacker.yaml"

// LoadStacker loads the stacker configuration.
// Search order: customPath -> ~/.stacker/configs/stacker.yaml -> ./configs/stacker.yaml -> embedded default
func LoadStacker(customPath string) (StackerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or invalid files fall through to the next candidate.
	for _, path := range []string{userConfigPath("stacker.yaml"), LocalConfigPath} {
		if path == "" {
			continue
		}
		if cfg, err := readFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultStackerConfig()
	if err := yaml.Unmarshal(defaultStackerYAML, &cfg); err != nil {
		return DefaultStackerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readFile parses a YAML file on top of the defaults, so a partial file only
// overrides the keys it names.
func readFile(path string) (StackerConfig, error) {
	cfg := DefaultStackerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg StackerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stacker", "configs", filename)
}
