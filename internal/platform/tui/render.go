package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// palette maps core colors to ANSI codes. ColorDefault and unknown colors
// render unstyled.
var palette = map[core.Color]string{
	core.ColorRed:     "1",
	core.ColorGreen:   "2",
	core.ColorYellow:  "3",
	core.ColorBlue:    "4",
	core.ColorMagenta: "5",
	core.ColorCyan:    "6",
	core.ColorWhite:   "7",
	core.ColorOrange:  "208",
	core.ColorGray:    "245",
}

var cellStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into runs of one color so every run costs a single
// pair of escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	flush := func(c core.Color) {
		if style, ok := cellStyles[c]; ok {
			sb.WriteString(style.Render(run.String()))
		} else {
			sb.WriteString(run.String())
		}
		run.Reset()
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				flush(color)
				color = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush(color)
	}
	return sb.String()
}
