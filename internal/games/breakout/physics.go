package breakout

// Advance moves the ball by its velocity.
func Advance(ball *Ball) {
	ball.X += ball.DX
	ball.Y += ball.DY
}
