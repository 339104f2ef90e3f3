package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPacman loads the maze game configuration.
// Search order: customPath -> ~/.arcade/configs/pacman.yaml -> ./configs/pacman.yaml -> embedded default
//
// Files are decoded over the built-in defaults, so a file only needs the
// keys it changes. A custom path must exist and be valid; discovered files
// that fail to parse or validate are skipped.
func LoadPacman(customPath string) (PacmanConfig, error) {
	if customPath != "" {
		cfg, err := readPacman(customPath)
		if err != nil {
			return DefaultPacmanConfig(), err
		}
		return cfg, nil
	}

	var candidates []string
	if userCfgPath := userConfigPath("pacman.yaml"); userCfgPath != "" {
		candidates = append(candidates, userCfgPath)
	}
	candidates = append(candidates, filepath.Join("configs", "pacman.yaml"))

	for _, path := range candidates {
		if cfg, err := readPacman(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultPacmanConfig()
	if err := yaml.Unmarshal(defaultPacmanYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultPacmanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParsePacman decodes YAML over the defaults and validates the result.
func ParsePacman(data []byte) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readPacman(path string) (PacmanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PacmanConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := ParsePacman(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
