package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "bigbrick.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.bigbrick/configs/bigbrick.yaml ->
// ./configs/bigbrick.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently when missing or broken.
func Load(customPath string) (BigBrickConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(configFile), filepath.Join("configs", configFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := DefaultBigBrickConfig()
	if err := yaml.Unmarshal(defaultBigBrickYAML, &cfg); err != nil {
		return DefaultBigBrickConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile parses one YAML file on top of the built-in defaults, so a file
// only needs the keys it changes.
func loadFile(path string) (BigBrickConfig, error) {
	cfg := DefaultBigBrickConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bigbrick", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BigBrickConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	cfg.Difficulty.IntervalScale = IntervalScaleForPreset(preset)
}
