package breakout

// autopilotDeadZone keeps the tracking paddle from jittering around the ball.
const autopilotDeadZone = 3

// Autopilot returns the input that moves the paddle under the ball.
// It is used by headless runs and demos.
func Autopilot(snap Snapshot) Input {
	center := snap.Paddle.X + snap.Paddle.Width/2
	return Input{
		Left:  snap.Ball.X < center-autopilotDeadZone,
		Right: snap.Ball.X > center+autopilotDeadZone,
	}
}
