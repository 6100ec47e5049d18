package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BallView is the render-facing part of the ball.
type BallView struct {
	X, Y, Radius float64
}

// PaddleView is the render-facing part of the paddle.
type PaddleView struct {
	X, Y, Width, Height float64
}

// Snapshot is a read-only copy of the engine state for one frame.
// Renderers consume it; nothing in it aliases engine memory.
type Snapshot struct {
	Tick            int
	Phase           Phase
	PlayfieldWidth  float64
	PlayfieldHeight float64
	Ball            BallView
	Paddle          PaddleView
	Bricks          []core.Rect // Live bricks in grid order
	Score           int
	Lives           int
	Message         string // Terminal message, empty while running
}

// Snapshot returns the current render state. Before the round starts the
// entities are zero and Lives shows the configured starting lives.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            m.ticks,
		Phase:           m.phase,
		PlayfieldWidth:  m.cfg.Playfield.Width,
		PlayfieldHeight: m.cfg.Playfield.Height,
		Lives:           m.cfg.Gameplay.Lives,
		Message:         m.Message(),
	}

	r := m.round
	if r == nil {
		return snap
	}

	snap.Ball = BallView{X: r.Ball.X, Y: r.Ball.Y, Radius: r.Ball.Radius}
	snap.Paddle = PaddleView{X: r.Paddle.X, Y: r.Paddle.Y, Width: r.Paddle.Width, Height: r.Paddle.Height}
	snap.Bricks = r.Bricks.LiveRects()
	snap.Score = r.Score.Score
	snap.Lives = r.Score.Lives
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation

	for _, v := range []float64{snap.Ball.X, snap.Ball.Y, snap.Paddle.X} {
		h = h*31 + math.Float64bits(v)
	}
	for _, b := range snap.Bricks {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
	}
	return h
}
