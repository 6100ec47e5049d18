package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

const (
	testFieldW = 480.0
	testFieldH = 320.0
)

var testPaddle = Paddle{X: 202.5, Y: 310, Width: 75, Height: 10}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		wantDX float64
	}{
		{"left wall", Ball{X: 12, Y: 100, Radius: 10, DX: -3, DY: -3}, 3},
		{"right wall", Ball{X: 468, Y: 100, Radius: 10, DX: 3, DY: -3}, -3},
		{"not yet", Ball{X: 13, Y: 100, Radius: 10, DX: -3, DY: -3}, -3},
		{"moving away", Ball{X: 12, Y: 100, Radius: 10, DX: 3, DY: -3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := tt.ball
			c := ResolveBoundaries(&ball, testPaddle, testFieldW, testFieldH)
			if ball.DX != tt.wantDX {
				t.Errorf("Expected dx=%v, got %v", tt.wantDX, ball.DX)
			}
			if c.Wall != (tt.wantDX != tt.ball.DX) {
				t.Errorf("Wall contact mismatch: %+v", c)
			}
			if ball.DY != tt.ball.DY {
				t.Errorf("dy must not change on a wall hit, got %v", ball.DY)
			}
		})
	}
}

func TestCornerFlipsBothAxes(t *testing.T) {
	ball := Ball{X: 12, Y: 12, Radius: 10, DX: -3, DY: -3}
	c := ResolveBoundaries(&ball, testPaddle, testFieldW, testFieldH)

	if !c.Wall || !c.Ceiling {
		t.Errorf("Expected wall and ceiling contacts, got %+v", c)
	}
	if ball.DX != 3 || ball.DY != 3 {
		t.Errorf("Expected velocity (3, 3), got (%v, %v)", ball.DX, ball.DY)
	}
}

func TestPaddleBounce(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		bounce bool
	}{
		{"center", 240, true},
		{"left edge", 202.5, true},
		{"right edge", 277.5, true},
		{"just left", 202.4, false},
		{"just right", 277.6, false},
		{"far away", 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := Ball{X: tt.x, Y: 309, Radius: 10, DX: 3, DY: 3}
			c := ResolveBoundaries(&ball, testPaddle, testFieldW, testFieldH)

			if c.PaddleBounce != tt.bounce || c.FloorMiss == tt.bounce {
				t.Errorf("Expected bounce=%v, got %+v", tt.bounce, c)
			}
			wantDY := 3.0
			if tt.bounce {
				wantDY = -3
			}
			if ball.DY != wantDY {
				t.Errorf("Expected dy=%v, got %v", wantDY, ball.DY)
			}
		})
	}
}

func TestCeilingSkipsFloor(t *testing.T) {
	// A field shorter than the ball: ceiling and floor both qualify, only the
	// ceiling fires.
	ball := Ball{X: 50, Y: 8, Radius: 10, DX: 3, DY: -3}
	c := ResolveBoundaries(&ball, testPaddle, testFieldW, 10)

	if !c.Ceiling {
		t.Error("Expected ceiling contact")
	}
	if c.FloorMiss || c.PaddleBounce {
		t.Errorf("Floor must not be checked after a ceiling hit, got %+v", c)
	}
}

func TestBrickCollision(t *testing.T) {
	r := &Round{
		Ball: Ball{X: 50, Y: 50, Radius: 10, DX: 3, DY: -3},
		Bricks: BrickGrid{bricks: []Brick{
			{Rect: core.NewRect(40, 40, 20, 20), alive: true},
			{Rect: core.NewRect(100, 100, 10, 10), alive: true},
		}},
	}

	if hits := ResolveBricks(r); hits != 1 {
		t.Fatalf("Expected 1 hit, got %d", hits)
	}
	if r.Ball.DY != 3 {
		t.Errorf("Expected dy flipped to 3, got %v", r.Ball.DY)
	}
	if r.Ball.DX != 3 {
		t.Errorf("dx must not change on a brick hit, got %v", r.Ball.DX)
	}
	if r.Bricks.bricks[0].Alive() || !r.Bricks.bricks[1].Alive() {
		t.Error("Expected only the first brick destroyed")
	}
	if r.Score.Score != 1 {
		t.Errorf("Expected score 1, got %d", r.Score.Score)
	}

	// A dead brick is never hit again.
	if hits := ResolveBricks(r); hits != 0 {
		t.Errorf("Expected no hits on a dead brick, got %d", hits)
	}
	if r.Score.Score != 1 {
		t.Errorf("Score changed without a hit: %d", r.Score.Score)
	}
}

func TestBrickContainmentIsStrict(t *testing.T) {
	for _, pos := range [][2]float64{{40, 50}, {60, 50}, {50, 40}, {50, 60}} {
		r := &Round{
			Ball:   Ball{X: pos[0], Y: pos[1], Radius: 10, DX: 3, DY: -3},
			Bricks: BrickGrid{bricks: []Brick{{Rect: core.NewRect(40, 40, 20, 20), alive: true}}},
		}
		if hits := ResolveBricks(r); hits != 0 {
			t.Errorf("Ball on the edge at %v should not hit, got %d hits", pos, hits)
		}
	}
}

func TestOverlappingBricksAllReact(t *testing.T) {
	r := &Round{
		Ball: Ball{X: 50, Y: 50, Radius: 10, DX: 3, DY: -3},
		Bricks: BrickGrid{bricks: []Brick{
			{Rect: core.NewRect(40, 40, 20, 20), alive: true},
			{Rect: core.NewRect(45, 45, 20, 20), alive: true},
			{Rect: core.NewRect(100, 100, 10, 10), alive: true},
		}},
	}

	if hits := ResolveBricks(r); hits != 2 {
		t.Fatalf("Expected 2 hits, got %d", hits)
	}
	// Two flips cancel out.
	if r.Ball.DY != -3 {
		t.Errorf("Expected dy=-3 after two flips, got %v", r.Ball.DY)
	}
	if r.Score.Score != 2 {
		t.Errorf("Expected score 2, got %d", r.Score.Score)
	}
	if r.Bricks.CountAlive() != 1 {
		t.Errorf("Expected 1 brick left, got %d", r.Bricks.CountAlive())
	}
}

func TestResolveReportsBricks(t *testing.T) {
	r := InitializeRound(config.DefaultBreakoutConfig())
	r.Ball.X, r.Ball.Y = 50, 40 // Inside brick 0

	c := Resolve(r, testFieldW, testFieldH)
	if c.BricksHit != 1 {
		t.Errorf("Expected 1 brick hit, got %d", c.BricksHit)
	}
	if r.Bricks.bricks[0].Alive() {
		t.Error("Expected brick 0 destroyed")
	}
}
