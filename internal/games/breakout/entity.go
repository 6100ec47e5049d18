// Package breakout implements a brick-breaking arcade round: a ball bouncing
// among walls, a player paddle and a grid of destructible bricks.
//
// The engine is step driven. A Machine owns every entity for one round and
// advances exactly one simulation step per Tick. Rendering and input wiring
// live outside the engine and only meet it through Snapshot and InputPort.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball is the ball state. Position is the center.
type Ball struct {
	X, Y   float64
	Radius float64
	DX, DY float64 // Velocity per tick
}

// Next returns the position the ball will occupy after one more step.
func (b *Ball) Next() (float64, float64) {
	return b.X + b.DX, b.Y + b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Paddle is the player's paddle. X is the left edge; Y is fixed at the floor.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the paddle's bounding rectangle.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Brick is a single destructible brick. Its rectangle never changes and it
// can only be destroyed once.
type Brick struct {
	core.Rect
	alive bool
}

// Alive reports whether the brick is still in play.
func (b Brick) Alive() bool {
	return b.alive
}

// destroy marks the brick dead. It reports false if it was already dead.
func (b *Brick) destroy() bool {
	if !b.alive {
		return false
	}
	b.alive = false
	return true
}

// BrickGrid is the fixed, ordered collection of bricks for one round.
type BrickGrid struct {
	bricks []Brick
}

// NewBrickGrid lays out rows x columns live bricks, column-major.
func NewBrickGrid(cfg config.BricksConfig) BrickGrid {
	bricks := make([]Brick, 0, cfg.Rows*cfg.Columns)
	for c := range cfg.Columns {
		for r := range cfg.Rows {
			x := float64(c)*(cfg.Width+cfg.Padding) + cfg.OffsetLeft
			y := float64(r)*(cfg.Height+cfg.Padding) + cfg.OffsetTop
			bricks = append(bricks, Brick{
				Rect:  core.NewRect(x, y, cfg.Width, cfg.Height),
				alive: true,
			})
		}
	}
	return BrickGrid{bricks: bricks}
}

// CountAlive returns the number of bricks still in play.
func (g *BrickGrid) CountAlive() int {
	n := 0
	for i := range g.bricks {
		if g.bricks[i].alive {
			n++
		}
	}
	return n
}

// LiveRects returns the rectangles of the bricks still in play, in grid order.
func (g *BrickGrid) LiveRects() []core.Rect {
	rects := make([]core.Rect, 0, len(g.bricks))
	for i := range g.bricks {
		if g.bricks[i].alive {
			rects = append(rects, g.bricks[i].Rect)
		}
	}
	return rects
}

// Scoreboard tracks score and lives.
type Scoreboard struct {
	Score int // Never decreases
	Lives int // Never increases, never below zero
}

// Phase is the top-level mode of the game.
type Phase int

const (
	PhaseSplash Phase = iota // Waiting for the player to start
	PhasePlaying
	PhaseWon  // Terminal
	PhaseLost // Terminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the round.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Round aggregates every entity of one round.
type Round struct {
	Ball   Ball
	Paddle Paddle
	Bricks BrickGrid
	Score  Scoreboard

	spawn Ball // Initial ball, restored after a floor-miss
}

// InitializeRound builds fresh entities from cfg. The caller validates cfg.
func InitializeRound(cfg config.BreakoutConfig) *Round {
	w, h := cfg.Playfield.Width, cfg.Playfield.Height

	spawn := Ball{
		X:      w / 2,
		Y:      h - cfg.Paddle.Height - 2*cfg.Ball.Radius,
		Radius: cfg.Ball.Radius,
		DX:     cfg.Ball.Speed,
		DY:     -cfg.Ball.Speed,
	}

	return &Round{
		Ball: spawn,
		Paddle: Paddle{
			X:      (w - cfg.Paddle.Width) / 2,
			Y:      h - cfg.Paddle.Height,
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
		Bricks: NewBrickGrid(cfg.Bricks),
		Score:  Scoreboard{Lives: cfg.Gameplay.Lives},
		spawn:  spawn,
	}
}

// respawnBall puts the ball back at its initial position and velocity.
func (r *Round) respawnBall() {
	r.Ball = r.spawn
}
