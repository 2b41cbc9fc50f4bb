// Package registry maps game IDs to factories. Each Big Brick board preset
// registers itself from an init function, so the CLI and the TUI can list
// and start presets without importing them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bigbrick/internal/core"
)

// Game is what the platform drives: pure logic, no Bubble Tea.
// The platform owns input mapping, timing and drawing to the terminal.
type Game interface {
	// ID is the unique key used on the command line and in the score table
	// (e.g. "bigbrick", "bigbrick_rush").
	ID() string

	// Title is the display name (e.g. "Big Brick: No Time").
	Title() string

	// Reset starts a fresh game. Called once before the first Step and again
	// on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score, level and the game over / paused flags.
	State() core.GameState
}

// Resizable is implemented by games that can follow a terminal resize
// without restarting. Games that don't implement it are reset instead.
type Resizable interface {
	Resize(width, height int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. The title is read from a throwaway
// instance. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
