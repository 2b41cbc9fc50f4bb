package config

import (
	_ "embed"
)

//go:embed defaults/bigbrick.yaml
var defaultBigBrickYAML []byte

// DefaultBigBrickConfig returns the built-in configuration.
func DefaultBigBrickConfig() BigBrickConfig {
	return BigBrickConfig{
		Presets: []BoardPreset{
			{ID: "bigbrick", Title: "Big Brick", Width: 10, Height: 20, IntervalMs: 500},
			{ID: "bigbrick_square", Title: "Big Brick: The Square", Width: 10, Height: 10, IntervalMs: 1000},
			{ID: "bigbrick_wide", Title: "Big Brick: Fat Fun", Width: 30, Height: 10, IntervalMs: 1000},
			{ID: "bigbrick_rush", Title: "Big Brick: No Time", Width: 15, Height: 25, IntervalMs: 100},
		},
		Speed: SpeedConfig{
			LevelUpEvery:  50,
			Factor:        0.8,
			MinIntervalMs: 20,
			WarningLevel:  3,
			MusicLevel:    4,
		},
		Scoring: ScoringConfig{
			DisplayMultiplier: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			IntervalScale: 1.0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBigBrickYAML
}
