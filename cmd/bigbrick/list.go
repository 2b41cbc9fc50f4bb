package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bigbrick/internal/games/bigbrick/layouts"
	"github.com/vovakirdan/bigbrick/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the board presets",
	Long:  `Shows every board preset with its size and starting fall interval,
then the starting layouts found in ~/.bigbrick/layouts and ./configs/layouts.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	presets := loadPresets()

	fmt.Println("Board presets:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-10s  %-7s  %s\n", maxIDLen, "ID", "Title", "Size", "Interval")
	fmt.Printf("  %-*s  %-10s  %-7s  %s\n", maxIDLen, "--", "-----", "----", "--------")

	unplayable := false
	for _, p := range presets {
		id := p.ID
		if !registry.Exists(id) {
			id += "*"
			unplayable = true
		}
		size := fmt.Sprintf("%dx%d", p.Width, p.Height)
		fmt.Printf("  %-*s  %-10s  %-7s  %dms\n", maxIDLen, id, p.Title, size, p.IntervalMs)
	}

	fmt.Println()
	if unplayable {
		fmt.Println("* only the built-in preset IDs can be played; custom entries retune them")
	}
	fmt.Println("Run 'bigbrick play <id>' to play a preset.")

	printLayouts()
}

func printLayouts() {
	found, err := layouts.Available(layouts.SearchDirs()...)
	if err != nil {
		logger.Warn("could not scan layouts", "error", err)
		return
	}
	if len(found) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Starting layouts:")
	fmt.Println()
	for _, l := range found {
		fmt.Printf("  %-12s  %-16s  %dx%d  %s\n", l.ID, l.Name, l.Width, l.Height, l.FilePath)
	}
	fmt.Println()
	fmt.Println("Run 'bigbrick play --layout <id>' to start on one.")
}
