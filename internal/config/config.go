// Package config provides YAML-based configuration loading and speed
// progression for Big Brick.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BigBrickConfig contains all configuration for the game.
type BigBrickConfig struct {
	Presets    []BoardPreset    `yaml:"presets"`
	Speed      SpeedConfig      `yaml:"speed"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardPreset is one selectable board: size plus starting gravity interval.
type BoardPreset struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	IntervalMs int    `yaml:"interval_ms"`      // Time between gravity steps at level 1
	Layout     string `yaml:"layout,omitempty"` // Starting board: YAML file or layout ID
}

// Interval returns the starting gravity interval.
func (p BoardPreset) Interval() time.Duration {
	return time.Duration(p.IntervalMs) * time.Millisecond
}

// SpeedConfig defines how gravity accelerates as the score grows.
type SpeedConfig struct {
	LevelUpEvery  float64 `yaml:"level_up_every"`  // Level rises while score/level exceeds this
	Factor        float64 `yaml:"factor"`          // Interval multiplier per level
	MinIntervalMs int     `yaml:"min_interval_ms"` // Interval floor
	WarningLevel  int     `yaml:"warning_level"`   // Level that triggers the warning cue
	MusicLevel    int     `yaml:"music_level"`     // Level that switches music
}

// MinInterval returns the interval floor.
func (s SpeedConfig) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMs) * time.Millisecond
}

// ScoringConfig defines how the board score is presented and stored.
type ScoringConfig struct {
	DisplayMultiplier int `yaml:"display_multiplier"`
}

// DifficultyConfig adjusts a preset for the chosen difficulty.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`        // Speed levels rise with score
	IntervalScale float64 `yaml:"interval_scale"` // Applied to every preset's interval
}

// Preset returns the board preset with the given ID.
func (c BigBrickConfig) Preset(id string) (BoardPreset, bool) {
	for _, p := range c.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return BoardPreset{}, false
}

// Validate checks that every value the game divides or multiplies by is usable.
func (c BigBrickConfig) Validate() error {
	if len(c.Presets) == 0 {
		return errors.New("config: no board presets defined")
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.ID == "" {
			return errors.New("config: preset without id")
		}
		if seen[p.ID] {
			return fmt.Errorf("config: duplicate preset %q", p.ID)
		}
		seen[p.ID] = true

		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("config: preset %q: invalid board size %dx%d", p.ID, p.Width, p.Height)
		}
		if p.IntervalMs <= 0 {
			return fmt.Errorf("config: preset %q: interval_ms must be positive, got %d", p.ID, p.IntervalMs)
		}
	}

	if c.Speed.LevelUpEvery <= 0 {
		return fmt.Errorf("config: speed.level_up_every must be positive, got %v", c.Speed.LevelUpEvery)
	}
	if c.Speed.Factor <= 0 || c.Speed.Factor > 1 {
		return fmt.Errorf("config: speed.factor must be in (0, 1], got %v", c.Speed.Factor)
	}
	if c.Speed.MinIntervalMs < 0 {
		return fmt.Errorf("config: speed.min_interval_ms must not be negative, got %d", c.Speed.MinIntervalMs)
	}
	if c.Scoring.DisplayMultiplier <= 0 {
		return fmt.Errorf("config: scoring.display_multiplier must be positive, got %d", c.Scoring.DisplayMultiplier)
	}
	if c.Difficulty.IntervalScale <= 0 {
		return fmt.Errorf("config: difficulty.interval_scale must be positive, got %v", c.Difficulty.IntervalScale)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a flag value into a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IntervalScaleForPreset returns the interval multiplier for a difficulty preset.
func IntervalScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.6
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables speed levels.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
