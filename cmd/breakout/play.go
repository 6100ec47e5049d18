package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play a layout",
	Long: `Start playing the given layout (classic when omitted).

Controls:
  Enter/Click     - Start the round
  Left/A, Right/D - Move the paddle
  R               - Restart (after the round ends)
  Esc/Q/Ctrl+C    - Quit

Examples:
  breakout play
  breakout play wall
  breakout play single --fps 30
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	layoutID := "classic"
	if len(args) > 0 {
		layoutID = args[0]
	}

	// Check if layout exists
	if !registry.Exists(layoutID) {
		fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", layoutID)
		fmt.Fprintln(os.Stderr, "Run 'breakout list' to see available layouts.")
		os.Exit(1)
	}

	game, err := registry.Create(layoutID)
	if err != nil {
		exitOnError("creating game", err)
	}

	// The round log only lasts for this process
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open round log", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitOnError("running game", runErr)
	}
}
