package game

import "github.com/termsnake/termsnake/internal/core"

// Snapshot is the read-only view of the game state consumed by the
// rendering layer and by tests. The snake slice is a copy; holders cannot
// mutate the game through it.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	Snake     []core.Point
	Food      core.Point
	Direction core.Direction
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	body := make([]core.Point, len(g.snake))
	copy(body, g.snake)

	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Score:     g.score,
		Snake:     body,
		Food:      g.food,
		Direction: g.direction,
	}
}

// Head returns the snake's head position.
func (s Snapshot) Head() core.Point {
	return s.Snake[0]
}
