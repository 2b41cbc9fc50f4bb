package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bigbrick/internal/platform/tui"
	"github.com/vovakirdan/bigbrick/internal/registry"
)

const defaultPreset = "bigbrick"

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a board preset",
	Long: `Start playing the given board preset (default: bigbrick).

Controls:
  Left/Right, A/D   - Move piece
  Up, W             - Rotate
  Down, S           - Fall faster
  Space             - Drop
  P                 - Pause
  R                 - Restart (after game over)
  Esc               - Leave
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a text screenshot

Difficulty options:
  easy   - Slower start, speeds up as you score
  normal - Preset speed, speeds up as you score
  hard   - Faster start, speeds up as you score
  fixed  - Preset speed, never speeds up

Examples:
  bigbrick play
  bigbrick play bigbrick_wide --difficulty easy
  bigbrick play bigbrick_rush --seed 42
  bigbrick play --config ./my-bigbrick.yaml --name alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultPreset
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bigbrick list' to see available presets.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage if it can't be opened
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	logger.Info("play", "preset", gameID, "player", cfg.Player, "difficulty", flagDifficulty)

	_, runErr := tui.Run(game, store, logger, cfg)
	logLayoutError(game)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// logLayoutError records a starting layout that the game had to skip,
// e.g. because it was drawn for a different board size.
func logLayoutError(game registry.Game) {
	lg, ok := game.(interface{ LayoutError() error })
	if !ok {
		return
	}
	if err := lg.LayoutError(); err != nil {
		logger.Warn("starting layout skipped", "preset", game.ID(), "error", err)
	}
}
