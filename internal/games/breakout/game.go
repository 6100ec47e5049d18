package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '█'
)

// SplashPrompt is shown until the player starts the round.
const SplashPrompt = "Press ENTER or click to begin"

// Minimum terminal size the renderer accepts.
const (
	minScreenW = 30
	minScreenH = 10
)

// Game adapts a Machine to the platform's registry.Game interface: it maps
// input frames onto the input port and draws snapshots into a screen buffer.
type Game struct {
	layout  Layout
	runtime core.RuntimeConfig
	machine *Machine
}

// New creates a game that plays the given layout.
func New(layout Layout) *Game {
	return &Game{layout: layout}
}

// ID returns the layout ID, which doubles as the game ID.
func (g *Game) ID() string {
	return g.layout.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout: " + g.layout.Title
}

// Reset loads configuration and builds a brand-new machine.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.Load(runtime.ConfigPath)
	if err != nil {
		return err
	}
	g.layout.Apply(&cfg)

	m, err := NewMachine(cfg)
	if err != nil {
		return err
	}
	g.runtime = runtime
	g.machine = m
	return nil
}

// Step feeds one input frame into the input port and ticks the machine once.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	port := g.machine.Input()
	port.SetLeft(in.Has(core.ActionLeft))
	port.SetRight(in.Has(core.ActionRight))
	if in.Has(core.ActionConfirm) {
		port.Activate()
	}

	sig := g.machine.Tick()
	return core.StepResult{State: g.State(), Stop: sig == Stop}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.machine.Snapshot()
	state := core.GameState{
		Score:    snap.Score,
		Lives:    snap.Lives,
		Ticks:    snap.Tick,
		GameOver: snap.Phase.Terminal(),
	}
	if snap.Phase.Terminal() {
		state.Outcome = snap.Phase.String()
	}
	return state
}

// Render draws the current snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Title(), g.machine.Snapshot())
}

// RenderSnapshot draws snap with title in the HUD. Headless runs use it to
// show a frame without a Game.
func RenderSnapshot(dst *core.Screen, title string, snap Snapshot) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := newViewport(snap, dst.Width(), dst.Height())

	renderHUD(dst, title, snap)
	v.drawBorder(dst)

	if snap.Phase == PhaseSplash {
		dst.DrawTextCentered(dst.Height()/2, SplashPrompt)
		return
	}

	v.drawBricks(dst, snap)
	v.drawPaddle(dst, snap)
	v.drawBall(dst, snap)

	if snap.Message != "" {
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		drawCenteredBox(dst, snap.Message, subtitle)
	}
}

// renderHUD draws score on the left, title in the middle and lives on the right.
func renderHUD(dst *core.Screen, title string, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorCyan)
	dst.DrawTextCentered(0, title)
	lives := fmt.Sprintf("Lives: %d", snap.Lives)
	dst.DrawTextColored(dst.Width()-len(lives)-1, 0, lives, core.ColorCyan)
}

// viewport maps playfield units onto the cells inside the border.
type viewport struct {
	left, top     int // First interior cell
	width, height int // Interior size in cells
	sx, sy        float64
}

func newViewport(snap Snapshot, screenW, screenH int) viewport {
	// Row 0 is the HUD; the border takes one cell on each side.
	v := viewport{left: 1, top: 2, width: screenW - 2, height: screenH - 3}
	if snap.PlayfieldWidth > 0 {
		v.sx = float64(v.width) / snap.PlayfieldWidth
	}
	if snap.PlayfieldHeight > 0 {
		v.sy = float64(v.height) / snap.PlayfieldHeight
	}
	return v
}

func (v viewport) cellX(x float64) int {
	return v.left + core.Clamp(int(x*v.sx), 0, v.width-1)
}

func (v viewport) cellY(y float64) int {
	return v.top + core.Clamp(int(y*v.sy), 0, v.height-1)
}

// span maps [from, to) onto at least one cell.
func (v viewport) span(from, to float64, cell func(float64) int) (int, int) {
	a := cell(from)
	b := cell(to)
	if b <= a {
		b = a + 1
	}
	return a, b
}

func (v viewport) drawBorder(dst *core.Screen) {
	dst.DrawBox(v.left-1, v.top-1, v.width+2, v.height+2)
}

func (v viewport) drawBricks(dst *core.Screen, snap Snapshot) {
	for _, b := range snap.Bricks {
		x0, x1 := v.span(b.X, b.Right(), v.cellX)
		y0, y1 := v.span(b.Y, b.Bottom(), v.cellY)
		// Keep a one-cell gap so neighbors stay distinguishable.
		if x1-x0 > 1 {
			x1--
		}
		row := (y0 - v.top) % len(core.BrickPalette)
		dst.FillRect(x0, y0, x1-x0, y1-y0, BrickChar, core.BrickPalette[row])
	}
}

func (v viewport) drawPaddle(dst *core.Screen, snap Snapshot) {
	p := snap.Paddle
	x0, x1 := v.span(p.X, p.X+p.Width, v.cellX)
	y := v.cellY(p.Y)
	dst.FillRect(x0, y, x1-x0, 1, PaddleChar, core.ColorWhite)
}

func (v viewport) drawBall(dst *core.Screen, snap Snapshot) {
	dst.SetColored(v.cellX(snap.Ball.X), v.cellY(snap.Ball.Y), BallChar, core.ColorYellow)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register every built-in layout with the registry.
func init() {
	for _, l := range Layouts() {
		registry.Register(l.ID, func() registry.Game {
			return New(l)
		})
	}
}
