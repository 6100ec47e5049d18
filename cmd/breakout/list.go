package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available layouts",
	Long: `Shows every brick layout with the grid it builds from the active
config (see --config).`,
	Run: runList,
}

func runList(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		exitOnError("loading config", err)
	}
	printLayouts(cmd.OutOrStdout(), cfg)
}

// printLayouts writes one line per registered layout with its brick grid.
func printLayouts(w io.Writer, base config.BreakoutConfig) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(w, "No layouts available.")
		return
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Fprintf(w, "  %-*s  %-7s  %s\n", idWidth, "ID", "Bricks", "Title")
	for _, g := range games {
		grid := "-"
		if layout, ok := breakout.LayoutByID(g.ID); ok {
			cfg := base
			layout.Apply(&cfg)
			grid = fmt.Sprintf("%dx%d", cfg.Bricks.Rows, cfg.Bricks.Columns)
		}
		fmt.Fprintf(w, "  %-*s  %-7s  %s\n", idWidth, g.ID, grid, g.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'breakout play <id>' to play a layout.")
}
