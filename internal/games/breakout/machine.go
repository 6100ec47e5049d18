package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// Signal tells the external scheduler whether to keep invoking Tick.
type Signal int

const (
	Continue Signal = iota
	Stop
)

// String returns the signal name.
func (s Signal) String() string {
	if s == Stop {
		return "stop"
	}
	return "continue"
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventRoundStarted EventKind = iota
	EventBrickDestroyed
	EventPaddleBounce
	EventLifeLost
	EventWon
	EventLost
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventRoundStarted:
		return "round_started"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventPaddleBounce:
		return "paddle_bounce"
	case EventLifeLost:
		return "life_lost"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event is one lifecycle occurrence, stamped with the tick it happened on.
type Event struct {
	Kind EventKind
	Tick int
}

// Machine is the game phase state machine and frame driver for one round.
// It owns every entity exclusively; a new round needs a new Machine.
// It is not safe for concurrent use.
type Machine struct {
	cfg    config.BreakoutConfig
	phase  Phase
	round  *Round
	input  InputPort
	ticks  int
	events []Event
}

// NewMachine validates cfg and returns a machine in the splash phase.
// Malformed configuration yields a *config.ConfigurationError.
func NewMachine(cfg config.BreakoutConfig) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	return &Machine{
		cfg:   cfg,
		phase: PhaseSplash,
	}, nil
}

// Input returns the machine's input port.
func (m *Machine) Input() *InputPort {
	return &m.input
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Ticks returns the number of ticks that ran an update.
func (m *Machine) Ticks() int {
	return m.ticks
}

// Events returns what happened during the most recent tick. The slice is
// reused by the next Tick.
func (m *Machine) Events() []Event {
	return m.events
}

// Tick advances exactly one simulation step. Once the round has ended it
// returns Stop and changes nothing, however many times it is called.
func (m *Machine) Tick() Signal {
	if m.phase.Terminal() {
		m.events = m.events[:0]
		return Stop
	}

	m.ticks++
	m.events = m.events[:0]

	switch m.phase {
	case PhaseSplash:
		m.splash()
	case PhasePlaying:
		m.play()
	}
	return Continue
}

// splash waits for an activation pulse, then builds the round.
func (m *Machine) splash() {
	if !m.input.takeActivation() {
		return
	}
	m.round = InitializeRound(m.cfg)
	m.phase = PhasePlaying
	m.emit(EventRoundStarted)
}

// play runs paddle, physics, collisions and lifecycle in that order.
func (m *Machine) play() {
	// Pulses only matter on the splash screen.
	m.input.takeActivation()

	r := m.round
	MovePaddle(&r.Paddle, m.input.poll(), m.cfg.Playfield.Width, m.cfg.Paddle.Speed)
	Advance(&r.Ball)

	lives := r.Score.Lives
	contacts := Resolve(r, m.cfg.Playfield.Width, m.cfg.Playfield.Height)
	m.phase = ApplyLifecycle(r, contacts)

	for range contacts.BricksHit {
		m.emit(EventBrickDestroyed)
	}
	if contacts.PaddleBounce {
		m.emit(EventPaddleBounce)
	}
	if r.Score.Lives < lives {
		m.emit(EventLifeLost)
	}
	switch m.phase {
	case PhaseWon:
		m.emit(EventWon)
	case PhaseLost:
		m.emit(EventLost)
	}
}

func (m *Machine) emit(kind EventKind) {
	m.events = append(m.events, Event{Kind: kind, Tick: m.ticks})
}

// Message returns the terminal message, or "" while the round is running.
func (m *Machine) Message() string {
	switch m.phase {
	case PhaseWon:
		return MessageWon
	case PhaseLost:
		return MessageLost
	default:
		return ""
	}
}
