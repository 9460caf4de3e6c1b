package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// colorStyles is the lipgloss foreground for each palette entry. Red and
// yellow are bold so the selected speed and the title stand out.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen turns a Screen into terminal output. Each row is split into runs
// of one color and every run is styled once.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	var run []rune
	color := s.GetCell(0, y).Color

	flush := func() {
		style, ok := colorStyles[color]
		if !ok {
			style = colorStyles[core.ColorDefault]
		}
		sb.WriteString(style.Render(string(run)))
		run = run[:0]
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color && len(run) > 0 {
			flush()
		}
		color = cell.Color
		run = append(run, cell.Rune)
	}
	if len(run) > 0 {
		flush()
	}
	return sb.String()
}
