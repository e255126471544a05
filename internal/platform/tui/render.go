package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/termsnake/termsnake/internal/config"
	"github.com/termsnake/termsnake/internal/core"
	"github.com/termsnake/termsnake/internal/game"
)

// Theme maps rune classes drawn by the game to lipgloss styles.
type Theme struct {
	head    lipgloss.Style
	body    lipgloss.Style
	food    lipgloss.Style
	border  lipgloss.Style
	regular lipgloss.Style
}

// NewTheme builds a theme from configured ANSI color codes.
func NewTheme(cfg config.ThemeConfig) Theme {
	return Theme{
		head:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.SnakeHead)),
		body:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.SnakeBody)),
		food:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Food)),
		border:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Border)),
		regular: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.HUD)),
	}
}

// Rune classes used to group cells that share a style.
type runeClass int

const (
	classRegular runeClass = iota
	classHead
	classBody
	classFood
	classBorder
)

func classFor(r rune) runeClass {
	switch r {
	case game.RuneHead:
		return classHead
	case game.RuneBody:
		return classBody
	case game.RuneFood:
		return classFood
	case '┌', '┐', '└', '┘', '─', '│':
		return classBorder
	default:
		return classRegular
	}
}

// styleFor returns the style for a rune class.
func (t Theme) styleFor(c runeClass) lipgloss.Style {
	switch c {
	case classHead:
		return t.head
	case classBody:
		return t.body
	case classFood:
		return t.food
	case classBorder:
		return t.border
	default:
		return t.regular
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same style are grouped to keep the ANSI escape
// overhead down.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			class := classFor(s.Get(x, y))

			var run strings.Builder
			for x < s.Width() {
				r := s.Get(x, y)
				if classFor(r) != class {
					break
				}
				run.WriteRune(r)
				x++
			}

			sb.WriteString(theme.styleFor(class).Render(run.String()))
		}
	}
	return sb.String()
}
