package breakout

// Contacts records what the collision pass found during one tick.
type Contacts struct {
	Wall         bool // Left or right wall, dx flipped
	Ceiling      bool // dy flipped
	PaddleBounce bool // Floor reached over the paddle, dy flipped
	FloorMiss    bool // Floor reached beside the paddle, velocity untouched
	BricksHit    int  // Bricks destroyed this tick
}

// Resolve runs the full collision pass for one tick: bricks against the
// ball's current center, then the boundaries against its next position.
func Resolve(r *Round, fieldWidth, fieldHeight float64) Contacts {
	hits := ResolveBricks(r)
	c := ResolveBoundaries(&r.Ball, r.Paddle, fieldWidth, fieldHeight)
	c.BricksHit = hits
	return c
}

// ResolveBricks tests every live brick in grid order against the ball's
// center. Each brick that contains it flips dy, dies and scores one point.
// There is no early exit: overlapping bricks each react.
func ResolveBricks(r *Round) int {
	hits := 0
	for i := range r.Bricks.bricks {
		b := &r.Bricks.bricks[i]
		if !b.alive || !b.Contains(r.Ball.X, r.Ball.Y) {
			continue
		}
		r.Ball.BounceY()
		b.destroy()
		r.Score.Score++
		hits++
	}
	return hits
}

// ResolveBoundaries reflects the ball off the walls, ceiling and paddle using
// its predicted next position. Walls and ceiling are independent axes and may
// both fire. The floor is only checked when the ceiling did not fire.
func ResolveBoundaries(ball *Ball, paddle Paddle, fieldWidth, fieldHeight float64) Contacts {
	var c Contacts
	nx, ny := ball.Next()

	if nx > fieldWidth-ball.Radius || nx < ball.Radius {
		ball.BounceX()
		c.Wall = true
	}

	switch {
	case ny < ball.Radius:
		ball.BounceY()
		c.Ceiling = true
	case ny > fieldHeight-ball.Radius:
		if paddle.Rect().SpansX(ball.X) {
			ball.BounceY()
			c.PaddleBounce = true
		} else {
			c.FloorMiss = true
		}
	}

	return c
}
