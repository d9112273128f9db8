package snake

import (
	"math"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// offBoard marks food that could not be placed.
var offBoard = Point{X: -1, Y: -1}

// Grid is the board derived from the viewport.
type Grid struct {
	Cols   int
	Rows   int
	CellPx float64 // Cell edge in viewport pixels
}

// GridFor sizes the board for a viewport. The cell edge is
// floor(width / divisor); boards smaller than the configured minimum come
// back empty.
func GridFor(v core.Viewport, cfg config.SnakeGrid) Grid {
	if v.Empty() || cfg.Divisor <= 0 {
		return Grid{}
	}
	cell := math.Floor(v.Width / float64(cfg.Divisor))
	if cell <= 0 {
		return Grid{}
	}
	g := Grid{
		Cols:   int(v.Width / cell),
		Rows:   int(v.Height / cell),
		CellPx: cell,
	}
	if g.Cols < max(cfg.MinCols, 1) || g.Rows < max(cfg.MinRows, 1) {
		return Grid{}
	}
	return g
}

// Empty reports whether there is no playable board.
func (g Grid) Empty() bool {
	return g.Cols <= 0 || g.Rows <= 0
}

// Inside reports whether p lies on the board.
func (g Grid) Inside(p Point) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}

// Cell returns the pixel box of a grid cell.
func (g Grid) Cell(p Point) core.RectF {
	return core.RectF{
		X: float64(p.X) * g.CellPx,
		Y: float64(p.Y) * g.CellPx,
		W: g.CellPx,
		H: g.CellPx,
	}
}

// State is everything one snake session owns.
type State struct {
	core.GameState

	Segments      []Point // Head at index 0
	Food          Point
	Direction     core.Direction // Heading used by the last step
	Pending       core.Direction // Heading the next step commits
	Interval      time.Duration
	PendingGrowth bool
	NewBest       bool // A scoring event this session raised the high score
	Grid          Grid
}

// Head returns the first segment.
func (s State) Head() Point {
	if len(s.Segments) == 0 {
		return offBoard
	}
	return s.Segments[0]
}

// Occupies reports whether any segment sits on p.
func (s State) Occupies(p Point) bool {
	for _, seg := range s.Segments {
		if seg == p {
			return true
		}
	}
	return false
}

// clone returns a copy that shares no slice memory with s.
func (s State) clone() State {
	s.Segments = append([]Point(nil), s.Segments...)
	return s
}

// parseDirection maps a config name to a heading, defaulting to right.
func parseDirection(name string) core.Direction {
	switch name {
	case "up":
		return core.DirUp
	case "down":
		return core.DirDown
	case "left":
		return core.DirLeft
	default:
		return core.DirRight
	}
}
