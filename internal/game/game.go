// Package game implements the Snake game state machine: a deterministic,
// single-owner state struct advanced by a fixed-cadence step function and
// steered by discrete input actions. Rendering and timing live in the
// platform layer; this package never blocks and never spawns goroutines.
package game

import (
	"math/rand"
	"time"

	"github.com/termsnake/termsnake/internal/core"
)

// Grid and scoring constants. The board size is deliberately not a
// configuration knob: the game is tuned for a 20x20 grid.
const (
	GridSize   = 20
	FoodReward = 10
)

// TickInterval is the fixed cadence at which the playing-phase step runs.
const TickInterval = 150 * time.Millisecond

// Initial entity values. Restart returns every entity to these.
var (
	initialHead = core.Point{X: 10, Y: 10}
	initialFood = core.Point{X: 15, Y: 15}
	initialDir  = core.DirRight
)

// Phase is the discrete game lifecycle state.
type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
)

// Game holds the complete Snake game state. All mutation happens through
// HandleAction and Advance on a single logical thread of control; the type
// is not safe for concurrent use and does not need to be.
type Game struct {
	rng   *rand.Rand
	tick  uint64
	score int
	phase Phase

	snake     []core.Point   // head at index 0, no duplicate positions
	direction core.Direction // direction committed on the last step
	nextDir   core.Direction // buffered candidate for the next step
	food      core.Point
}

// New creates a new game. Call Reset before use.
func New() *Game {
	return &Game{}
}

// Reset initializes the game from the runtime config and enters the menu
// phase. Called once at startup; restart after game over goes through
// HandleAction instead and keeps the RNG stream.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.phase = PhaseMenu
	g.initEntities()
}

// initEntities returns every entity to its initial constant.
func (g *Game) initEntities() {
	g.snake = []core.Point{initialHead}
	g.direction = initialDir
	g.nextDir = initialDir
	g.food = initialFood
	g.score = 0
}

// HandleAction applies a single input action. Movement actions buffer a
// direction change for the next step; control actions drive the phase
// lifecycle. Reports whether the phase changed, so the platform knows when
// to start or stop the tick loop.
func (g *Game) HandleAction(a core.Action) bool {
	if dir, ok := a.Direction(); ok {
		if g.phase == PhasePlaying {
			g.steer(dir)
		}
		return false
	}

	switch a {
	case core.ActionStart:
		if g.phase == PhaseMenu {
			g.phase = PhasePlaying
			return true
		}
	case core.ActionPause:
		switch g.phase {
		case PhasePlaying:
			g.phase = PhasePaused
			return true
		case PhasePaused:
			g.phase = PhasePlaying
			return true
		case PhaseMenu:
			// Space starts from the menu, same as Enter.
			g.phase = PhasePlaying
			return true
		}
	case core.ActionRestart:
		if g.phase == PhaseGameOver {
			g.restart()
			return true
		}
	}
	return false
}

// steer buffers a direction change. Candidates sharing an axis with the
// currently travelled direction are rejected, which prevents reversing into
// the neck. Only the last accepted candidate survives until the next step.
func (g *Game) steer(d core.Direction) {
	if core.SameAxis(d, g.direction) {
		return
	}
	g.nextDir = d
}

// restart re-enters play from a terminal state with all entities back at
// their initial values.
func (g *Game) restart() {
	g.tick = 0
	g.initEntities()
	g.phase = PhasePlaying
}

// Advance runs one state transition step. The scheduler only invokes it
// while playing, but the guard keeps the invariant local. A terminal
// transition leaves the snake body untouched.
func (g *Game) Advance() {
	if g.phase != PhasePlaying {
		return
	}
	g.tick++

	g.direction = g.nextDir
	head := g.snake[0].Add(g.direction)

	// Wall collision
	if head.X < 0 || head.X >= GridSize || head.Y < 0 || head.Y >= GridSize {
		g.phase = PhaseGameOver
		return
	}

	// Self collision: any existing segment counts, tail included.
	if g.occupied(head) {
		g.phase = PhaseGameOver
		return
	}

	g.snake = append([]core.Point{head}, g.snake...)

	if head == g.food {
		g.score += FoodReward
		if !g.spawnFood() {
			// The snake covers the whole grid; nothing left to eat.
			g.phase = PhaseGameOver
		}
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// spawnFood places food on a uniformly chosen free cell and reports whether
// one existed. Drawing from the free-cell list is bounded at grid size,
// unlike rejection sampling, and never lands on the snake.
func (g *Game) spawnFood() bool {
	free := make([]core.Point, 0, GridSize*GridSize-len(g.snake))
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			p := core.Point{X: x, Y: y}
			if !g.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	g.food = free[g.rng.Intn(len(free))]
	return true
}

// occupied checks whether the snake covers the given point.
func (g *Game) occupied(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}
