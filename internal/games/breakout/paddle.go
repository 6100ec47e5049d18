package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Input is the held-direction state polled once per tick.
type Input struct {
	Left  bool
	Right bool
}

// MovePaddle shifts the paddle by speed in the requested direction and keeps
// it inside [0, fieldWidth-width]. Right wins when both directions are held.
func MovePaddle(p *Paddle, in Input, fieldWidth, speed float64) {
	switch {
	case in.Right && p.X+p.Width < fieldWidth:
		p.X += speed
	case in.Left && p.X > 0:
		p.X -= speed
	}
	p.X = core.ClampF(p.X, 0, fieldWidth-p.Width)
}
