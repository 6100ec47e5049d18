package breakout

// InputPort buffers player input between ticks. Held directions are polled
// once per tick; Activate is a one-shot pulse that only the splash phase
// consumes.
type InputPort struct {
	left     bool
	right    bool
	activate bool
}

// SetLeft records whether a move-left request is held.
func (p *InputPort) SetLeft(held bool) {
	p.left = held
}

// SetRight records whether a move-right request is held.
func (p *InputPort) SetRight(held bool) {
	p.right = held
}

// Activate queues a start pulse (pointer click or accept key).
func (p *InputPort) Activate() {
	p.activate = true
}

// poll returns the held directions.
func (p *InputPort) poll() Input {
	return Input{Left: p.left, Right: p.right}
}

// takeActivation consumes a pending start pulse.
func (p *InputPort) takeActivation() bool {
	pending := p.activate
	p.activate = false
	return pending
}
