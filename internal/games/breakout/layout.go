package breakout

import "github.com/vovakirdan/tui-breakout/internal/config"

// Layout is a named brick arrangement applied over the loaded configuration.
type Layout struct {
	ID    string
	Title string
	// Apply rewrites the brick grid section of cfg.
	Apply func(cfg *config.BreakoutConfig)
}

// centerColumns sets the left offset so the grid is horizontally centered.
func centerColumns(cfg *config.BreakoutConfig) {
	b := &cfg.Bricks
	if b.Columns == 0 {
		return
	}
	gridW := float64(b.Columns)*b.Width + float64(b.Columns-1)*b.Padding
	b.OffsetLeft = max(0, (cfg.Playfield.Width-gridW)/2)
}

// Layouts returns the built-in layouts. "classic" keeps the configured grid.
func Layouts() []Layout {
	return []Layout{
		{
			ID:    "classic",
			Title: "Classic",
			Apply: func(*config.BreakoutConfig) {},
		},
		{
			ID:    "wall",
			Title: "Wall",
			Apply: func(cfg *config.BreakoutConfig) {
				cfg.Bricks.Rows = 6
			},
		},
		{
			ID:    "column",
			Title: "Column",
			Apply: func(cfg *config.BreakoutConfig) {
				cfg.Bricks.Rows = 5
				cfg.Bricks.Columns = 1
				centerColumns(cfg)
			},
		},
		{
			ID:    "single",
			Title: "Single Brick",
			Apply: func(cfg *config.BreakoutConfig) {
				cfg.Bricks.Rows = 1
				cfg.Bricks.Columns = 1
				centerColumns(cfg)
			},
		},
	}
}

// LayoutByID returns the built-in layout with the given ID.
func LayoutByID(id string) (Layout, bool) {
	for _, l := range Layouts() {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}
