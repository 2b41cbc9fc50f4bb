package config

import (
	"math"
	"time"
)

// DifficultyManager computes speed levels and gravity intervals.
type DifficultyManager struct {
	speed SpeedConfig
	diff  DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(speed SpeedConfig, diff DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{speed: speed, diff: diff}
}

// IsEnabled returns whether speed levels rise with the score.
func (d *DifficultyManager) IsEnabled() bool {
	return d.diff.Enabled && d.speed.LevelUpEvery > 0
}

// ShouldLevelUp reports whether a board at the given level has earned the
// next one. Called once per gravity step, so levels rise one at a time.
func (d *DifficultyManager) ShouldLevelUp(score float64, level int) bool {
	if !d.IsEnabled() || level < 1 {
		return false
	}
	return score/float64(level) > d.speed.LevelUpEvery
}

// Interval returns the gravity interval at a level, starting from the
// preset's base interval.
func (d *DifficultyManager) Interval(base time.Duration, level int) time.Duration {
	scale := d.diff.IntervalScale
	if scale <= 0 {
		scale = 1
	}
	steps := max(level-1, 0)
	interval := time.Duration(float64(base) * scale * math.Pow(d.speed.Factor, float64(steps)))
	return max(interval, d.speed.MinInterval(), time.Millisecond)
}

// Cues returns the events a level change should raise: warning and music
// changes fire only on the exact configured level.
func (d *DifficultyManager) Cues(level int) (warning, music bool) {
	return level == d.speed.WarningLevel, level == d.speed.MusicLevel
}
