// Package core provides the fundamental types shared by the game logic and
// the terminal platform. It contains no external dependencies (especially no
// Bubble Tea) to keep the game logic pure and testable.
package core

// Point represents a 2D grid coordinate.
type Point struct {
	X, Y int
}

// Add returns the point translated by one step in the given direction.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Direction is a unit vector describing snake movement.
type Direction struct {
	DX, DY int
}

// The four legal movement directions.
var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// SameAxis reports whether two directions share a movement axis. A
// horizontal direction shares an axis with both left and right, a vertical
// one with both up and down. The snake rejects turns onto its current axis,
// which covers the exact reversal as well as a same-direction re-press.
func SameAxis(a, b Direction) bool {
	return (a.DX != 0 && b.DX != 0) || (a.DY != 0 && b.DY != 0)
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
