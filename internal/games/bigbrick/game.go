// Package bigbrick wires the Big Brick board into the arcade platform:
// timing, input, speed levels, scoring and rendering.
package bigbrick

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/bigbrick/internal/config"
	"github.com/vovakirdan/bigbrick/internal/core"
	engine "github.com/vovakirdan/bigbrick/internal/games/bigbrick/core"
	"github.com/vovakirdan/bigbrick/internal/games/bigbrick/layouts"
	"github.com/vovakirdan/bigbrick/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// layoutRef overrides every preset's starting layout when set via CLI.
var layoutRef string

// layoutDirs are scanned when a layout is named by ID.
var layoutDirs = layouts.SearchDirs()

// SetLayout sets the starting layout used by every preset: a YAML file path
// or the ID of a layout in the layout directories.
func SetLayout(ref string) {
	layoutRef = ref
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game runs one board preset.
type Game struct {
	preset config.BoardPreset

	cfg        config.BigBrickConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	level      *engine.Level
	player     string

	tick       uint64
	tickRate   int
	speedLevel int
	interval   time.Duration // Time between gravity steps
	stepTicks  int           // interval expressed in simulation ticks
	untilStep  int           // Ticks left before the next gravity step

	screenW  int
	screenH  int
	tooSmall bool
	gameOver bool
	paused   bool

	events    []core.Event
	layoutErr error // Why the starting layout was skipped, if it was
}

// New creates a game for the given board preset.
func New(preset config.BoardPreset) *Game {
	return &Game{preset: preset}
}

func init() {
	for _, p := range config.DefaultBigBrickConfig().Presets {
		registry.Register(p.ID, func() registry.Game {
			return New(p)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.preset.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.preset.Title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultBigBrickConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	// A config file may retune the preset this game was registered with.
	if p, ok := cfg.Preset(g.preset.ID); ok {
		g.preset = p
	}

	g.difficulty = config.NewDifficultyManager(cfg.Speed, cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.level = engine.NewLevel(g.preset.Width, g.preset.Height, g.rng)
	g.layoutErr = g.applyLayout()

	g.player = runtime.Player
	if g.player == "" {
		g.player = "player"
	}
	g.tickRate = runtime.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.events = nil

	g.speedLevel = 1
	g.applySpeed()
	g.untilStep = g.stepTicks

	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.checkScreenSize()

	g.spawn()
}

// applyLayout places the starting debris for this preset, if any. A layout
// that can't be applied is skipped and the board starts empty.
func (g *Game) applyLayout() error {
	ref := g.preset.Layout
	if layoutRef != "" {
		ref = layoutRef
	}
	if ref == "" {
		return nil
	}

	layout, err := layouts.Resolve(ref, layoutDirs...)
	if err == nil {
		err = layout.Apply(g.level, "layout")
	}
	if err != nil {
		g.level = engine.NewLevel(g.preset.Width, g.preset.Height, g.rng)
		return err
	}
	return nil
}

// LayoutError reports why the starting layout was skipped on the last Reset.
func (g *Game) LayoutError() error {
	return g.layoutErr
}

// applySpeed recomputes the gravity interval for the current speed level.
func (g *Game) applySpeed() {
	g.interval = g.difficulty.Interval(g.preset.Interval(), g.speedLevel)
	g.stepTicks = ticksFor(g.interval, g.tickRate)
	g.untilStep = min(g.untilStep, g.stepTicks)
}

// ticksFor converts a duration to whole simulation ticks, at least one.
func ticksFor(d time.Duration, tickRate int) int {
	n := int(math.Round(d.Seconds() * float64(tickRate)))
	return max(n, 1)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return g.result()
	}

	g.handleInput(in)

	g.untilStep--
	if g.untilStep <= 0 {
		g.logicStep()
		g.untilStep = g.stepTicks
	}

	return g.result()
}

// handleInput applies player commands to the steerable pieces.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.level.MoveControllable(-1)
	case in.Has(core.ActionRight):
		g.level.MoveControllable(1)
	}

	if in.Has(core.ActionRotate) {
		g.level.Rotate()
	}

	switch {
	case in.Has(core.ActionDrop):
		if _, bonuses := g.level.HardDrop(); bonuses > 0 {
			g.events = append(g.events, core.Event{Kind: core.EventLanded, Value: bonuses})
		}
		g.untilStep = 0
	case in.Has(core.ActionSoftDrop):
		g.untilStep = 0
	}
}

// logicStep runs one gravity step: fall, clear rows, speed up, spawn.
func (g *Game) logicStep() {
	res := g.level.Tick()
	if res.Bonuses > 0 {
		g.events = append(g.events, core.Event{Kind: core.EventLanded, Value: res.Bonuses})
	}

	if n := g.level.ClearRows(); n > 0 {
		g.events = append(g.events, core.Event{Kind: core.EventRowsCleared, Value: n})
	}

	if g.difficulty.ShouldLevelUp(g.level.Score(), g.speedLevel) {
		g.levelUp()
	}

	if len(g.level.Controllable()) == 0 {
		g.spawn()
	}
}

// levelUp raises the speed level by one and emits its cues.
func (g *Game) levelUp() {
	g.speedLevel++
	g.applySpeed()
	g.events = append(g.events, core.Event{Kind: core.EventLevelUp, Value: g.speedLevel})

	warning, music := g.difficulty.Cues(g.speedLevel)
	if warning {
		g.events = append(g.events, core.Event{Kind: core.EventWarning, Value: g.speedLevel})
	}
	if music {
		g.events = append(g.events, core.Event{Kind: core.EventMusicChange, Value: g.speedLevel})
	}
}

// spawn drops a new random piece; no room ends the game.
func (g *Game) spawn() {
	if g.level.SpawnRandom(g.player) {
		return
	}
	g.gameOver = true
	g.events = append(g.events, core.Event{Kind: core.EventGameOver, Value: g.displayScore()})
}

// displayScore is the board score scaled for presentation and storage.
func (g *Game) displayScore() int {
	return int(math.Round(g.level.Score() * float64(g.cfg.Scoring.DisplayMultiplier)))
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.displayScore(),
		Level:    g.speedLevel,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
