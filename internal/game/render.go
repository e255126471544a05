package game

import (
	"fmt"

	"github.com/termsnake/termsnake/internal/core"
)

// Runes the game draws with. The platform colorizes output by rune class,
// so these double as the contract between game and renderer.
const (
	RuneHead = 'O'
	RuneBody = 'o'
	RuneFood = '*'
)

// hudHeight is the single score line above the board. The full footprint,
// HUD plus bordered board, is 23 rows so the game fits an 80x24 terminal
// with one row left for the platform's help footer.
const hudHeight = 1

// Render draws the game into the screen buffer. The board is the GridSize
// square centered below the HUD; each phase overlays its own message box.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	// Board plus border must fit under the HUD.
	requiredW := GridSize + 2
	requiredH := GridSize + 2 + hudHeight
	if dst.Width() < requiredW || dst.Height() < requiredH {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offX := (dst.Width() - GridSize) / 2
	offY := hudHeight + 1

	dst.DrawBox(offX-1, offY-1, GridSize+2, GridSize+2)

	for i, seg := range g.snake {
		r := RuneBody
		if i == 0 {
			r = RuneHead
		}
		dst.Set(offX+seg.X, offY+seg.Y, r)
	}

	dst.Set(offX+g.food.X, offY+g.food.Y, RuneFood)

	switch g.phase {
	case PhaseMenu:
		g.renderOverlay(dst, "S N A K E", "Press Enter to start")
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press Space to resume")
	case PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - press R to restart", g.score))
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Length: %d", g.score, len(g.snake))
	dst.DrawText(0, 0, hud)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		dst.DrawHLine(boxX+1, y, boxW-2, ' ')
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
