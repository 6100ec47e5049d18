package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagRounds    int
	flagMaxTicks  int
	flagAutopilot bool
	flagFrame     bool
)

var simCmd = &cobra.Command{
	Use:   "sim [layout]",
	Short: "Run rounds headless",
	Long: `Run rounds without a terminal UI and print the results.

The round starts immediately and the paddle follows the ball when
--autopilot is set. Every lifecycle event is logged at debug level
(use --verbose). Rounds are deterministic, so repeated rounds with the
same config must produce the same final state hash.

Examples:
  breakout sim
  breakout sim wall --rounds 5
  breakout sim single --autopilot=false -v
  breakout sim wall --frame
  breakout sim --config ./breakout.toml --max-ticks 20000`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRounds, "rounds", 1, "Number of rounds to run")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 100000, "Give up on a round after this many ticks")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Move the paddle under the ball")
	simCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the final frame of every round")
}

// simOptions controls a headless run.
type simOptions struct {
	rounds    int
	maxTicks  int
	autopilot bool
	title     string    // HUD title for printed frames
	frame     io.Writer // Receives each round's final frame when set
}

// simResult is the outcome of one headless round.
type simResult struct {
	outcome string
	snap    breakout.Snapshot
}

func runSim(_ *cobra.Command, args []string) {
	layoutID := "classic"
	if len(args) > 0 {
		layoutID = args[0]
	}

	layout, ok := breakout.LayoutByID(layoutID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", layoutID)
		fmt.Fprintln(os.Stderr, "Run 'breakout list' to see available layouts.")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		exitOnError("loading config", err)
	}
	layout.Apply(&cfg)

	store, err := storage.Open()
	if err != nil {
		exitOnError("opening round log", err)
	}

	opts := simOptions{
		rounds:    flagRounds,
		maxTicks:  flagMaxTicks,
		autopilot: flagAutopilot,
		title:     "Breakout: " + layout.Title,
	}
	if flagFrame {
		opts.frame = os.Stdout
	}

	diverged, err := runRounds(store, layoutID, cfg, opts)
	if err == nil {
		err = printRounds(os.Stdout, store, layoutID, layout.Title)
	}
	store.Close()

	if err != nil {
		exitOnError("running rounds", err)
	}
	if len(diverged) > 0 {
		fmt.Fprintf(os.Stderr, "Error: rounds %v diverged from round 1\n", diverged)
		os.Exit(1)
	}
}

// runRounds plays rounds one after another and logs every finished one.
// It returns the 1-based rounds whose final state differs from round 1.
func runRounds(store *storage.Store, layoutID string, cfg config.BreakoutConfig, opts simOptions) ([]int, error) {
	hashes := make([]uint64, 0, opts.rounds)
	for i := range opts.rounds {
		res, err := simulate(cfg, opts.maxTicks, opts.autopilot)
		if err != nil {
			return nil, err
		}
		if opts.frame != nil {
			printFrame(opts.frame, opts.title, res.snap)
		}

		hashes = append(hashes, res.snap.Hash())
		logger.Info("round finished",
			"round", i+1,
			"layout", layoutID,
			"outcome", res.outcome,
			"score", res.snap.Score,
			"lives", res.snap.Lives,
			"ticks", res.snap.Tick,
		)

		if res.outcome == "unfinished" {
			continue
		}
		if _, err := store.SaveRound(storage.RoundEntry{
			Layout:  layoutID,
			Outcome: res.outcome,
			Score:   res.snap.Score,
			Lives:   res.snap.Lives,
			Ticks:   res.snap.Tick,
		}); err != nil {
			logger.Warn("could not log round", "error", err)
		}
	}

	diverged := divergentRounds(hashes)
	for _, r := range diverged {
		logger.Error("round diverged from round 1", "round", r, "hash", hashes[r-1], "want", hashes[0])
	}
	return diverged, nil
}

// divergentRounds returns the 1-based positions of hashes that differ from the first.
func divergentRounds(hashes []uint64) []int {
	var diverged []int
	for i := 1; i < len(hashes); i++ {
		if hashes[i] != hashes[0] {
			diverged = append(diverged, i+1)
		}
	}
	return diverged
}

// simulate plays one round to the end or until maxTicks have run.
func simulate(cfg config.BreakoutConfig, maxTicks int, autopilot bool) (simResult, error) {
	m, err := breakout.NewMachine(cfg)
	if err != nil {
		return simResult{}, err
	}

	port := m.Input()
	port.Activate()

	for m.Ticks() < maxTicks {
		if autopilot {
			in := breakout.Autopilot(m.Snapshot())
			port.SetLeft(in.Left)
			port.SetRight(in.Right)
		}

		if m.Tick() == breakout.Stop {
			break
		}
		for _, e := range m.Events() {
			logger.Debug(e.Kind.String(), "tick", e.Tick, "score", m.Snapshot().Score)
		}
	}

	res := simResult{outcome: "unfinished", snap: m.Snapshot()}
	if m.Phase().Terminal() {
		res.outcome = m.Phase().String()
	}
	return res, nil
}

// printFrame draws snap on a default-sized screen and prints it as plain text.
func printFrame(w io.Writer, title string, snap breakout.Snapshot) {
	rt := core.DefaultConfig()
	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	breakout.RenderSnapshot(screen, title, snap)
	fmt.Fprintln(w, screen.String())
	fmt.Fprintln(w)
}

// printRounds prints the logged rounds for a layout, best first.
func printRounds(w io.Writer, store *storage.Store, layoutID, title string) error {
	rounds, err := store.TopRounds(layoutID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Results - %s\n", title)
	fmt.Fprintln(w)

	if len(rounds) == 0 {
		fmt.Fprintln(w, "No round finished.")
		fmt.Fprintln(w, "Try a larger --max-ticks.")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-6s  %-7s  %-5s  %s\n", "Rank", "Score", "Result", "Lives", "Ticks")
	fmt.Fprintf(w, "  %-4s  %-6s  %-7s  %-5s  %s\n", "----", "-----", "------", "-----", "-----")

	for i, r := range rounds {
		fmt.Fprintf(w, "  %-4d  %-6d  %-7s  %-5d  %d\n", i+1, r.Score, r.Outcome, r.Lives, r.Ticks)
	}

	fmt.Fprintln(w)
	if stats, err := store.Stats(layoutID); err == nil {
		fmt.Fprintf(w, "Rounds: %d  Wins: %d  Best: %d\n", stats.Rounds, stats.Wins, stats.BestScore)
	}
	return nil
}
