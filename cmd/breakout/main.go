// breakout is a terminal brick-breaking game built on a step-driven engine.
//
// Usage:
//
//	breakout list              - List available layouts
//	breakout play [layout]     - Play a layout (default: classic)
//	breakout menu              - Start menu to pick layouts interactively
//	breakout sim [layout]      - Run rounds headless and print the results
//	breakout serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--config <path>   - Use a specific YAML or TOML game config
//	--verbose         - Log debug output
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"

	// Import the game to register its layouts
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a terminal brick-breaking game. Keep the ball in play
with your paddle and clear every brick to win.

Available commands:
  list     - Show all available layouts
  play     - Play a layout directly
  menu     - Interactive layout picker with session scores
  sim      - Run rounds headless with an auto-tracking paddle
  serve    - Start SSH server for remote play

Examples:
  breakout list
  breakout play
  breakout play wall --config ./breakout.toml
  breakout menu
  breakout sim single --rounds 3
  breakout serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig builds the runtime config from the defaults, the terminal
// size when stdout is a terminal, and the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.ConfigPath = flagConfig
	return cfg
}

// exitOnError prints err to stderr and exits with status 1.
// Configuration errors get their own message so the field is easy to spot.
func exitOnError(what string, err error) {
	var cfgErr *config.ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(os.Stderr, "Error: bad configuration: %s: %s\n", cfgErr.Field, cfgErr.Reason)
	} else {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	}
	os.Exit(1)
}
