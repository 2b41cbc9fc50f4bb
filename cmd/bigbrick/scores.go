package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bigbrick/internal/registry"
	"github.com/vovakirdan/bigbrick/internal/storage"
)

var (
	flagExport string
	flagImport string
	flagRemove string
	flagTop    int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show and manage high scores for a preset",
	Long: `Display the top high scores for a board preset (default: bigbrick).

Scores can be moved in and out as a plain scoreboard file with one
"name;value" line per entry.

Examples:
  bigbrick scores
  bigbrick scores bigbrick_rush --top 20
  bigbrick scores bigbrick --export scores.txt
  bigbrick scores bigbrick --import scores.txt
  bigbrick scores bigbrick --remove alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagExport, "export", "", "Write all scores to a scoreboard file")
	scoresCmd.Flags().StringVar(&flagImport, "import", "", "Add scores from a scoreboard file")
	scoresCmd.Flags().StringVar(&flagRemove, "remove", "", "Delete every score of this player")
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
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
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := manageScores(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	if err := printScores(store, gameID, title); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

// manageScores applies --import, --remove and --export, in that order.
func manageScores(store *storage.Store, gameID string) error {
	if flagImport != "" {
		entries, err := storage.LoadScoreboard(expandHome(flagImport))
		if err != nil {
			return err
		}
		if err := store.Import(gameID, entries); err != nil {
			return err
		}
		logger.Info("scores imported", "preset", gameID, "file", flagImport, "count", len(entries))
		fmt.Printf("Imported %d score(s) from %s\n\n", len(entries), flagImport)
	}

	if flagRemove != "" {
		n, err := store.RemovePlayer(gameID, flagRemove)
		if err != nil {
			return err
		}
		logger.Info("player removed", "preset", gameID, "player", flagRemove, "count", n)
		fmt.Printf("Removed %d score(s) of %s\n\n", n, flagRemove)
	}

	if flagExport != "" {
		scores, err := store.AllScores(gameID)
		if err != nil {
			return err
		}
		entries := storage.EntriesFromScores(scores)
		if err := storage.SaveScoreboard(expandHome(flagExport), entries); err != nil {
			return err
		}
		logger.Info("scores exported", "preset", gameID, "file", flagExport, "count", len(entries))
		fmt.Printf("Exported %d score(s) to %s\n\n", len(entries), flagExport)
	}

	return nil
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagTop)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bigbrick play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Games: %d  |  Players: %d\n", stats.HighScore, stats.GamesCount, stats.Players)
	}
	return nil
}
