package breakout

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// singleBrickConfig places one brick on the ball's opening path.
func singleBrickConfig() config.BreakoutConfig {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Rows = 1
	cfg.Bricks.Columns = 1
	cfg.Bricks.OffsetLeft = 360
	cfg.Bricks.OffsetTop = 130
	cfg.Gameplay.Lives = 1
	return cfg
}

// smallFieldConfig has a zero-width paddle and an unreachable brick, so the
// ball always ends up on the floor.
func smallFieldConfig(lives int) config.BreakoutConfig {
	return config.BreakoutConfig{
		Playfield: config.PlayfieldConfig{Width: 100, Height: 100},
		Ball:      config.BallConfig{Radius: 10, Speed: 3},
		Paddle:    config.PaddleConfig{Width: 0, Height: 10, Speed: 0},
		Bricks:    config.BricksConfig{Rows: 1, Columns: 1, Width: 1, Height: 1},
		Gameplay:  config.GameplayConfig{Lives: lives},
	}
}

func newTestMachine(t *testing.T, cfg config.BreakoutConfig) *Machine {
	t.Helper()
	m, err := NewMachine(cfg)
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	return m
}

// start sends the activation pulse and runs the splash tick.
func start(t *testing.T, m *Machine) {
	t.Helper()
	m.Input().Activate()
	if sig := m.Tick(); sig != Continue {
		t.Fatalf("Expected continue on activation, got %v", sig)
	}
	if m.Phase() != PhasePlaying {
		t.Fatalf("Expected playing after activation, got %v", m.Phase())
	}
}

// runToEnd ticks until the round ends, feeding autopilot input when drive is
// set. It returns every event seen and the signal of the final tick.
func runToEnd(t *testing.T, m *Machine, limit int, drive bool) ([]Event, Signal) {
	t.Helper()
	var events []Event
	sig := Continue
	for i := 0; i < limit && !m.Phase().Terminal(); i++ {
		if drive {
			in := Autopilot(m.Snapshot())
			m.Input().SetLeft(in.Left)
			m.Input().SetRight(in.Right)
		}
		sig = m.Tick()
		events = append(events, m.Events()...)
	}
	if !m.Phase().Terminal() {
		t.Fatalf("Round still %v after %d ticks", m.Phase(), limit)
	}
	return events, sig
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestSplashWaitsForActivation(t *testing.T) {
	m := newTestMachine(t, config.DefaultBreakoutConfig())
	m.Input().SetRight(true)

	for range 10 {
		if sig := m.Tick(); sig != Continue {
			t.Fatalf("Expected continue, got %v", sig)
		}
	}

	if m.Phase() != PhaseSplash {
		t.Errorf("Expected splash, got %v", m.Phase())
	}
	snap := m.Snapshot()
	if len(snap.Bricks) != 0 {
		t.Errorf("No round before activation, got %d bricks", len(snap.Bricks))
	}
	if snap.Lives != 3 {
		t.Errorf("Expected configured lives on splash, got %d", snap.Lives)
	}
	if snap.Message != "" {
		t.Errorf("Expected no message, got %q", snap.Message)
	}
}

func TestActivationStartsRound(t *testing.T) {
	m := newTestMachine(t, config.DefaultBreakoutConfig())
	start(t, m)

	events := m.Events()
	if len(events) != 1 || events[0].Kind != EventRoundStarted {
		t.Errorf("Expected a single round_started event, got %v", events)
	}

	// The activating tick does not simulate.
	snap := m.Snapshot()
	if snap.Ball.X != 240 || snap.Ball.Y != 290 {
		t.Errorf("Expected ball at spawn, got (%v, %v)", snap.Ball.X, snap.Ball.Y)
	}
	if len(snap.Bricks) != 15 {
		t.Errorf("Expected 15 bricks, got %d", len(snap.Bricks))
	}

	m.Tick()
	snap = m.Snapshot()
	if snap.Ball.X != 243 || snap.Ball.Y != 287 {
		t.Errorf("Expected ball at (243, 287), got (%v, %v)", snap.Ball.X, snap.Ball.Y)
	}
}

func TestActivationIgnoredWhilePlaying(t *testing.T) {
	m := newTestMachine(t, config.DefaultBreakoutConfig())
	start(t, m)

	m.Input().Activate()
	m.Tick()

	if m.Phase() != PhasePlaying {
		t.Errorf("Expected playing, got %v", m.Phase())
	}
	if m.input.activate {
		t.Error("Pulse should be discarded during play")
	}
}

func TestPaddleFollowsInput(t *testing.T) {
	m := newTestMachine(t, config.DefaultBreakoutConfig())
	start(t, m)

	m.Input().SetRight(true)
	m.Tick()
	m.Tick()
	if x := m.Snapshot().Paddle.X; x != 216.5 {
		t.Errorf("Expected paddle at 216.5, got %v", x)
	}

	m.Input().SetRight(false)
	m.Input().SetLeft(true)
	m.Tick()
	if x := m.Snapshot().Paddle.X; x != 209.5 {
		t.Errorf("Expected paddle at 209.5, got %v", x)
	}
}

func TestSingleBrickWin(t *testing.T) {
	m := newTestMachine(t, singleBrickConfig())
	start(t, m)

	events, sig := runToEnd(t, m, 1000, false)

	if m.Phase() != PhaseWon {
		t.Fatalf("Expected won, got %v", m.Phase())
	}
	// The tick that ends the round still reports continue.
	if sig != Continue {
		t.Errorf("Expected continue on the winning tick, got %v", sig)
	}
	// One splash tick plus 47 playing ticks.
	if m.Ticks() != 48 {
		t.Errorf("Expected win on tick 48, got %d", m.Ticks())
	}

	snap := m.Snapshot()
	if snap.Score != 1 || snap.Lives != 1 {
		t.Errorf("Expected score 1 and 1 life, got %d and %d", snap.Score, snap.Lives)
	}
	if snap.Message != MessageWon {
		t.Errorf("Expected %q, got %q", MessageWon, snap.Message)
	}
	if snap.Ball.X != 381 || snap.Ball.Y != 149 {
		t.Errorf("Expected ball at (381, 149), got (%v, %v)", snap.Ball.X, snap.Ball.Y)
	}

	if countEvents(events, EventBrickDestroyed) != 1 || countEvents(events, EventWon) != 1 {
		t.Errorf("Unexpected events: %v", events)
	}

	if sig := m.Tick(); sig != Stop {
		t.Errorf("Expected stop after the round ended, got %v", sig)
	}
}

func TestZeroGridWinsImmediately(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Rows = 0

	m := newTestMachine(t, cfg)
	start(t, m)

	if sig := m.Tick(); sig != Continue {
		t.Errorf("Expected continue, got %v", sig)
	}
	if m.Phase() != PhaseWon {
		t.Errorf("Expected won on the first playing tick, got %v", m.Phase())
	}
	if m.Snapshot().Score != 0 {
		t.Errorf("Expected score 0, got %d", m.Snapshot().Score)
	}
}

func TestTickAfterStopIsNoop(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Columns = 0

	m := newTestMachine(t, cfg)
	start(t, m)
	m.Tick()

	snap := m.Snapshot()
	hash := snap.Hash()
	ticks := m.Ticks()

	m.Input().SetLeft(true)
	m.Input().Activate()
	for range 5 {
		if sig := m.Tick(); sig != Stop {
			t.Fatalf("Expected stop, got %v", sig)
		}
		if len(m.Events()) != 0 {
			t.Errorf("Expected no events after stop, got %v", m.Events())
		}
	}

	after := m.Snapshot()
	if after.Hash() != hash || m.Ticks() != ticks {
		t.Error("State changed after stop")
	}
	if m.Phase() != PhaseWon {
		t.Errorf("Terminal phase changed to %v", m.Phase())
	}
}

func TestRoundLost(t *testing.T) {
	m := newTestMachine(t, smallFieldConfig(1))
	start(t, m)

	events, _ := runToEnd(t, m, 1000, false)

	if m.Phase() != PhaseLost {
		t.Fatalf("Expected lost, got %v", m.Phase())
	}
	if m.Ticks() != 47 {
		t.Errorf("Expected loss on tick 47, got %d", m.Ticks())
	}

	snap := m.Snapshot()
	if snap.Lives != 0 {
		t.Errorf("Expected 0 lives, got %d", snap.Lives)
	}
	if snap.Message != MessageLost {
		t.Errorf("Expected %q, got %q", MessageLost, snap.Message)
	}
	if countEvents(events, EventLost) != 1 {
		t.Errorf("Expected one lost event, got %v", events)
	}
}

func TestLivesCountDown(t *testing.T) {
	m := newTestMachine(t, smallFieldConfig(3))
	start(t, m)

	events, _ := runToEnd(t, m, 1000, false)

	if m.Phase() != PhaseLost {
		t.Fatalf("Expected lost, got %v", m.Phase())
	}
	if n := countEvents(events, EventLifeLost); n != 3 {
		t.Errorf("Expected 3 lives lost, got %d", n)
	}
	if m.Ticks() != 139 {
		t.Errorf("Expected loss on tick 139, got %d", m.Ticks())
	}

	last := events[len(events)-1]
	if last.Kind != EventLost || last.Tick != 139 {
		t.Errorf("Expected lost event on tick 139, got %+v", last)
	}
}

func TestZeroLivesRound(t *testing.T) {
	m := newTestMachine(t, smallFieldConfig(0))
	start(t, m)

	events, _ := runToEnd(t, m, 1000, false)

	if m.Phase() != PhaseLost {
		t.Fatalf("Expected lost, got %v", m.Phase())
	}
	if countEvents(events, EventLifeLost) != 0 {
		t.Error("No life to lose with zero starting lives")
	}
	if m.Snapshot().Lives != 0 {
		t.Errorf("Expected 0 lives, got %d", m.Snapshot().Lives)
	}
}

func TestIdleClassicRoundLost(t *testing.T) {
	m := newTestMachine(t, config.DefaultBreakoutConfig())
	start(t, m)

	runToEnd(t, m, 10000, false)

	if m.Phase() != PhaseLost {
		t.Fatalf("Expected lost, got %v", m.Phase())
	}
	if m.Snapshot().Score != 14 {
		t.Errorf("Expected score 14, got %d", m.Snapshot().Score)
	}
	if m.Ticks() != 707 {
		t.Errorf("Expected loss on tick 707, got %d", m.Ticks())
	}
}

func TestAutopilotClearsClassic(t *testing.T) {
	m := newTestMachine(t, config.DefaultBreakoutConfig())
	start(t, m)

	runToEnd(t, m, 10000, true)

	if m.Phase() != PhaseWon {
		t.Fatalf("Expected won, got %v", m.Phase())
	}
	snap := m.Snapshot()
	if snap.Score != 15 || snap.Lives != 3 {
		t.Errorf("Expected score 15 with 3 lives, got %d and %d", snap.Score, snap.Lives)
	}
}

func TestNewMachineRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.BreakoutConfig)
		field  string
	}{
		{"negative radius", func(c *config.BreakoutConfig) { c.Ball.Radius = -1 }, "ball.radius"},
		{"nan speed", func(c *config.BreakoutConfig) { c.Ball.Speed = math.NaN() }, "ball.speed"},
		{"infinite speed", func(c *config.BreakoutConfig) { c.Ball.Speed = math.Inf(1) }, "ball.speed"},
		{"oversized grid", func(c *config.BreakoutConfig) { c.Bricks.Rows, c.Bricks.Columns = math.MaxInt32, math.MaxInt32 }, "bricks.rows"},
		{"negative rows", func(c *config.BreakoutConfig) { c.Bricks.Rows = -2 }, "bricks.rows"},
		{"negative lives", func(c *config.BreakoutConfig) { c.Gameplay.Lives = -1 }, "gameplay.lives"},
		{"paddle too wide", func(c *config.BreakoutConfig) { c.Paddle.Width = 500 }, "paddle.width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultBreakoutConfig()
			tt.mutate(&cfg)

			m, err := NewMachine(cfg)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if m != nil {
				t.Error("Expected no machine on error")
			}

			var cfgErr *config.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Expected *config.ConfigurationError, got %T", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, cfgErr.Field)
			}
			if !strings.HasPrefix(err.Error(), "breakout: ") {
				t.Errorf("Expected package prefix, got %q", err.Error())
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	script := func(tick int) Input {
		return Input{Right: tick%50 < 20, Left: tick%50 >= 30}
	}

	run := func() []uint64 {
		m := newTestMachine(t, config.DefaultBreakoutConfig())
		m.Input().Activate()

		hashes := make([]uint64, 0, 3000)
		for tick := range 3000 {
			in := script(tick)
			m.Input().SetLeft(in.Left)
			m.Input().SetRight(in.Right)
			if m.Tick() == Stop {
				break
			}
			snap := m.Snapshot()
			hashes = append(hashes, snap.Hash())
		}
		return hashes
	}

	first, second := run(), run()
	if len(first) != len(second) {
		t.Fatalf("Run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Hashes differ at tick %d", i+1)
		}
	}
}

func TestRoundInvariants(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	total := cfg.Bricks.Rows * cfg.Bricks.Columns

	m := newTestMachine(t, cfg)
	start(t, m)

	prev := m.Snapshot()
	for tick := 0; tick < 20000 && !m.Phase().Terminal(); tick++ {
		m.Input().SetRight(tick%90 < 40)
		m.Input().SetLeft(tick%70 < 35)
		m.Tick()

		snap := m.Snapshot()
		ball := m.round.Ball

		if snap.Score != total-len(snap.Bricks) {
			t.Fatalf("Tick %d: score %d does not match %d destroyed bricks", snap.Tick, snap.Score, total-len(snap.Bricks))
		}
		if snap.Score < prev.Score {
			t.Fatalf("Tick %d: score decreased", snap.Tick)
		}
		if len(snap.Bricks) > len(prev.Bricks) {
			t.Fatalf("Tick %d: a brick came back", snap.Tick)
		}
		if snap.Lives > prev.Lives || snap.Lives < 0 {
			t.Fatalf("Tick %d: lives went from %d to %d", snap.Tick, prev.Lives, snap.Lives)
		}
		if math.Abs(ball.DX) != cfg.Ball.Speed || math.Abs(ball.DY) != cfg.Ball.Speed {
			t.Fatalf("Tick %d: speed changed to (%v, %v)", snap.Tick, ball.DX, ball.DY)
		}
		if ball.Radius != cfg.Ball.Radius {
			t.Fatalf("Tick %d: radius changed", snap.Tick)
		}
		if snap.Paddle.X < 0 || snap.Paddle.X+snap.Paddle.Width > cfg.Playfield.Width {
			t.Fatalf("Tick %d: paddle out of bounds at %v", snap.Tick, snap.Paddle.X)
		}

		prev = snap
	}

	if !m.Phase().Terminal() {
		t.Errorf("Round did not end, still %v", m.Phase())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m := newTestMachine(t, config.DefaultBreakoutConfig())
	start(t, m)

	snap := m.Snapshot()
	snap.Bricks[0].X = -100
	snap.Bricks = snap.Bricks[:0]

	again := m.Snapshot()
	if len(again.Bricks) != 15 || again.Bricks[0].X != 30 {
		t.Error("Mutating a snapshot changed engine state")
	}
}
