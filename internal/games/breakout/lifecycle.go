package breakout

// Terminal messages shown once the round ends.
const (
	MessageLost = "GAME OVER"
	MessageWon  = "YOU WIN, CONGRATULATIONS!"
)

// ApplyLifecycle applies the outcome of a collision pass and returns the
// phase the round is in afterwards.
//
// Clearing the grid wins even if the floor was missed on the same tick.
// A floor-miss costs one life; at zero lives the round is lost, otherwise the
// ball respawns and the paddle and bricks stay as they are.
func ApplyLifecycle(r *Round, c Contacts) Phase {
	if r.Bricks.CountAlive() == 0 {
		return PhaseWon
	}

	if !c.FloorMiss {
		return PhasePlaying
	}

	if r.Score.Lives > 0 {
		r.Score.Lives--
	}
	if r.Score.Lives == 0 {
		return PhaseLost
	}

	r.respawnBall()
	return PhasePlaying
}
