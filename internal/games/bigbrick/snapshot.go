package bigbrick

import (
	"strings"
	"time"

	engine "github.com/vovakirdan/bigbrick/internal/games/bigbrick/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Preset       string
	SpeedLevel   int
	Interval     time.Duration
	StepTicks    int
	Score        int     // Display score
	BoardScore   float64 // Unscaled engine score
	Bricks       int
	Controllable int      // Steerable groups
	Board        []string // One string per row: '#' settled, '@' steerable, 'o' loose, '.' empty
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:         g.tick,
		Preset:       g.preset.ID,
		SpeedLevel:   g.speedLevel,
		Interval:     g.interval,
		StepTicks:    g.stepTicks,
		Score:        g.displayScore(),
		BoardScore:   g.level.Score(),
		Bricks:       g.level.Count(),
		Controllable: len(g.level.Controllable()),
		Board:        boardRows(g.level),
		State:        state,
	}
}

func boardRows(l *engine.Level) []string {
	rows := make([]string, l.Height())
	var sb strings.Builder
	for y := range l.Height() {
		sb.Reset()
		for x := range l.Width() {
			sb.WriteByte(brickGlyph(l.Get(x, y)))
		}
		rows[y] = sb.String()
	}
	return rows
}

func brickGlyph(b *engine.Brick) byte {
	switch {
	case b == nil:
		return '.'
	case b.State == engine.Static:
		return '#'
	case b.Controllable:
		return '@'
	default:
		return 'o'
	}
}
