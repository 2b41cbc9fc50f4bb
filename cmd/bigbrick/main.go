// bigbrick is a falling-block puzzle for the terminal where pieces weld
// into the bricks they land on.
//
// Usage:
//
//	bigbrick list              - List board presets and layouts
//	bigbrick play [preset]     - Play a preset (default: bigbrick)
//	bigbrick menu              - Pick presets interactively
//	bigbrick scores [preset]   - Show, export, import or prune high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.bigbrick/scores.db)
//	--config <path>       - Custom bigbrick.yaml
//	--difficulty <name>   - easy, normal, hard, fixed
//	--name <nickname>     - Player name for saved scores
//	--log-file <path>     - Write logs to a rotated file
//	--log-level <level>   - debug, info, warn, error
//	--layout <path|id>    - Starting board for every preset
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bigbrick/internal/config"
	"github.com/vovakirdan/bigbrick/internal/games/bigbrick"
	"github.com/vovakirdan/bigbrick/internal/games/bigbrick/layouts"
	"github.com/vovakirdan/bigbrick/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagName       string
	flagLogFile    string
	flagLogLevel   string
	flagLayout     string
)

var (
	logger    *log.Logger
	logCloser io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bigbrick",
	Short: "Big Brick - a welding falling-block puzzle in your terminal",
	Long: `Big Brick is a falling-block puzzle: steer pieces as they fall,
and watch them weld to whatever they touch. Fill a row to clear it,
and everything above comes loose again.

Available commands:
  list     - Show the board presets and starting layouts
  play     - Play a preset directly
  menu     - Interactive preset picker
  scores   - View and manage high scores

Examples:
  bigbrick play
  bigbrick play bigbrick_rush --difficulty hard
  bigbrick menu --name alice
  bigbrick scores bigbrick --export scores.txt`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.bigbrick/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom bigbrick.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagName, "name", "", "Player name (prompted in menu when empty)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLayout, "layout", "", "Starting board layout: YAML file or layout ID (applies to every preset)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup validates global flags and prepares the logger and game settings
// shared by every subcommand.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
	}

	opts := logging.DefaultOptions()
	opts.File = expandHome(flagLogFile)
	opts.Level = flagLogLevel
	l, closer, err := logging.New(opts)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer

	if flagLayout != "" {
		layout, err := layouts.Resolve(expandHome(flagLayout), layouts.SearchDirs()...)
		if err != nil {
			return err
		}
		logger.Debug("layout loaded", "id", layout.ID, "pieces", len(layout.Pieces))
	}

	bigbrick.SetConfigPath(flagConfig)
	bigbrick.SetDifficultyPreset(flagDifficulty)
	bigbrick.SetLayout(expandHome(flagLayout))
	return nil
}
