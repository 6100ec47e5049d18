package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a layout picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a layout.
After a round ends, press Esc to return to the menu. The menu shows the
best score per layout for this session; Tab opens the session scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select layout
  Tab          - Session scores
  Q            - Quit

Examples:
  breakout menu
  breakout menu --fps 30`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open round log", "error", err)
		store = nil
	}

	cfg := runtimeConfig()
	notice := ""

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, notice)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		notice = ""

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			notice = err.Error()
			continue
		}

		// A bad config is shown in the menu instead of ending the program
		if err := tui.Run(game, store, cfg); err != nil {
			logger.Debug("round aborted", "layout", menuResult.GameID, "error", err)
			notice = err.Error()
		}
	}

	if store != nil {
		store.Close()
	}
}
