package main

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/vovakirdan/bigbrick/internal/config"
	"github.com/vovakirdan/bigbrick/internal/core"
	"github.com/vovakirdan/bigbrick/internal/storage"
)

// runtimeConfig builds the game runtime config from flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if name := strings.TrimSpace(flagName); name != "" {
		cfg.Player = name
	}
	return cfg
}

// openStore opens the score database. A failure is logged and reported
// as a nil store so the game stays playable.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// loadPresets returns the board presets from the active config.
func loadPresets() []config.BoardPreset {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultBigBrickConfig()
	}
	return cfg.Presets
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
