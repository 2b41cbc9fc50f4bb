package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bigbrick/internal/platform/tui"
	"github.com/vovakirdan/bigbrick/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick board presets from a menu",
	Long: `Start Big Brick in interactive menu mode.

You are asked for a nickname first unless --name is given.
Use arrow keys or j/k to navigate, Enter to start a preset.
Leaving a game with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play preset
  Tab          - Scoreboard
  N            - Change nickname
  Q            - Quit

Examples:
  bigbrick menu
  bigbrick menu --name alice
  bigbrick menu --fps 30 --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	presets := loadPresets()

	if flagName == "" {
		name, ok, err := tui.RunNickname(cfg.Player, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if !ok {
			return
		}
		cfg.Player = name
	}

	for {
		menuResult, err := tui.RunMenu(store, cfg, presets)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size changes from the menu
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsRename {
			name, ok, nameErr := tui.RunNickname(cfg.Player, cfg.ScreenW, cfg.ScreenH)
			if nameErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", nameErr)
			}
			if ok {
				logger.Info("nickname changed", "from", cfg.Player, "to", name)
				cfg.Player = name
			}
			continue
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("play", "preset", menuResult.GameID, "player", cfg.Player)
		backToMenu, err := tui.Run(game, store, logger, cfg)
		logLayoutError(game)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}
}
