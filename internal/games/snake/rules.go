package snake

import (
	"math/rand"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// foodAttempts bounds rejection sampling before falling back to a scan.
const foodAttempts = 100

// NewBoard returns a fresh, idle session on grid. The high score carries over.
func NewBoard(grid Grid, cfg config.SnakeConfig, highScore int, rng *rand.Rand) State {
	st := State{
		GameState: core.GameState{HighScore: highScore},
		Grid:      grid,
		Interval:  cfg.Speed.Interval(0),
		Food:      offBoard,
	}
	if grid.Empty() {
		return st
	}

	dir := parseDirection(cfg.Start.Direction)
	start := Point{
		X: core.Clamp(cfg.Start.X, 0, grid.Cols-1),
		Y: core.Clamp(cfg.Start.Y, 0, grid.Rows-1),
	}
	if grid.Cols >= 3 {
		start.X = core.Clamp(start.X, 1, grid.Cols-2)
	}
	if grid.Rows >= 3 {
		start.Y = core.Clamp(start.Y, 1, grid.Rows-2)
	}

	st.Segments = []Point{start}
	st.Direction = dir
	st.Pending = dir
	st.Food = PlaceFood(st.Segments, grid, rng)
	return st
}

// Steer stages a new heading. Reversals relative to the current heading
// are rejected here so a step can never turn the head into the neck.
func Steer(st State, d core.Direction) State {
	if d == core.DirNone || d == st.Direction.Opposite() {
		return st
	}
	st.Pending = d
	return st
}

// Outcome reports what a step did.
type Outcome struct {
	Ate  bool
	Died bool
}

// Step advances the snake one cell. It never modifies st; the returned
// state owns its own segment slice.
func Step(st State, speed config.SnakeSpeed, rng *rand.Rand) (State, Outcome) {
	if !st.Running || st.Over || len(st.Segments) == 0 || st.Grid.Empty() {
		return st, Outcome{}
	}

	next := st.clone()
	next.Direction = next.Pending

	dx, dy := next.Direction.Delta()
	head := Point{X: next.Head().X + dx, Y: next.Head().Y + dy}

	if Collides(st, head) {
		next.Over = true
		next.Running = false
		return next, Outcome{Died: true}
	}

	next.Segments = append([]Point{head}, next.Segments...)

	var out Outcome
	if head == next.Food {
		out.Ate = true
		next.PendingGrowth = true
		next.Score++
		if next.Score > next.HighScore {
			next.HighScore = next.Score
			next.NewBest = true
		}
		next.Food = PlaceFood(next.Segments, next.Grid, rng)
		next.Interval = speed.Interval(next.Score)
	}

	if next.PendingGrowth {
		next.PendingGrowth = false
	} else {
		next.Segments = next.Segments[:len(next.Segments)-1]
	}

	return next, out
}

// Collides reports whether moving the head to p ends the session: leaving
// the board or touching any existing segment, tail included.
func Collides(st State, p Point) bool {
	return !st.Grid.Inside(p) || st.Occupies(p)
}

// PlaceFood picks a uniformly random free cell, preferring the interior
// [1, cols-2] x [1, rows-2]. Rejection sampling is bounded; after that every
// free cell is enumerated. A full board yields an off-board point.
func PlaceFood(segments []Point, grid Grid, rng *rand.Rand) Point {
	if grid.Empty() {
		return offBoard
	}

	occupied := make(map[Point]bool, len(segments))
	for _, s := range segments {
		occupied[s] = true
	}

	lo := Point{X: 1, Y: 1}
	hi := Point{X: grid.Cols - 2, Y: grid.Rows - 2}
	if hi.X < lo.X || hi.Y < lo.Y {
		lo, hi = Point{}, Point{X: grid.Cols - 1, Y: grid.Rows - 1}
	}

	for range foodAttempts {
		p := Point{
			X: lo.X + rng.Intn(hi.X-lo.X+1),
			Y: lo.Y + rng.Intn(hi.Y-lo.Y+1),
		}
		if !occupied[p] {
			return p
		}
	}

	if p, ok := scanFree(occupied, lo, hi, rng); ok {
		return p
	}
	if p, ok := scanFree(occupied, Point{}, Point{X: grid.Cols - 1, Y: grid.Rows - 1}, rng); ok {
		return p
	}
	return offBoard
}

func scanFree(occupied map[Point]bool, lo, hi Point, rng *rand.Rand) (Point, bool) {
	var free []Point
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if p := (Point{X: x, Y: y}); !occupied[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return offBoard, false
	}
	return free[rng.Intn(len(free))], true
}
