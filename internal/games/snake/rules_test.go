package snake

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

var testSpeed = config.DefaultSnakeConfig().Speed

func testState(segments ...Point) State {
	return State{
		GameState: core.GameState{Running: true},
		Segments:  segments,
		Food:      Point{X: 15, Y: 15},
		Direction: core.DirRight,
		Pending:   core.DirRight,
		Interval:  150 * time.Millisecond,
		Grid:      Grid{Cols: 20, Rows: 20, CellPx: 16},
	}
}

func TestStepEatsFood(t *testing.T) {
	st := testState(Point{X: 5, Y: 5})
	st.Food = Point{X: 6, Y: 5}

	next, out := Step(st, testSpeed, rand.New(rand.NewSource(1)))

	if !out.Ate {
		t.Fatal("Expected food to be eaten")
	}
	if next.Head() != (Point{X: 6, Y: 5}) {
		t.Errorf("Head = %v, expected {6 5}", next.Head())
	}
	if next.Score != 1 {
		t.Errorf("Score = %d, expected 1", next.Score)
	}
	if len(next.Segments) != 2 {
		t.Errorf("Length = %d, expected 2", len(next.Segments))
	}
	if next.Food == (Point{X: 5, Y: 5}) || next.Food == (Point{X: 6, Y: 5}) {
		t.Errorf("Food relocated onto the snake: %v", next.Food)
	}
	if next.HighScore != 1 || !next.NewBest {
		t.Errorf("High score should follow score, got %d (new best %v)", next.HighScore, next.NewBest)
	}
	if next.Interval != 148*time.Millisecond {
		t.Errorf("Interval = %v, expected 148ms", next.Interval)
	}
}

func TestStepSlides(t *testing.T) {
	st := testState(Point{X: 5, Y: 5}, Point{X: 4, Y: 5}, Point{X: 3, Y: 5})

	next, out := Step(st, testSpeed, rand.New(rand.NewSource(1)))

	if out.Ate || out.Died {
		t.Fatalf("Unexpected outcome %+v", out)
	}
	expected := []Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	if !reflect.DeepEqual(next.Segments, expected) {
		t.Errorf("Segments = %v, expected %v", next.Segments, expected)
	}
}

func TestSteerRejectsReverse(t *testing.T) {
	st := testState(Point{X: 6, Y: 5}, Point{X: 5, Y: 5})

	st = Steer(st, core.DirLeft)
	if st.Pending != core.DirRight {
		t.Errorf("Reverse should be rejected, pending = %v", st.Pending)
	}

	next, _ := Step(st, testSpeed, rand.New(rand.NewSource(1)))
	if next.Direction != core.DirRight {
		t.Errorf("Direction changed to %v", next.Direction)
	}
	if next.Over {
		t.Error("Snake should not die from a rejected reversal")
	}
}

func TestSteerStagesUntilStep(t *testing.T) {
	st := testState(Point{X: 6, Y: 5}, Point{X: 5, Y: 5})

	st = Steer(st, core.DirUp)
	if st.Direction != core.DirRight || st.Pending != core.DirUp {
		t.Fatalf("Steer should only stage: dir %v pending %v", st.Direction, st.Pending)
	}

	// Down is the reverse of the staged heading but not of the current one.
	st = Steer(st, core.DirDown)
	if st.Pending != core.DirDown {
		t.Errorf("Pending = %v, expected DOWN", st.Pending)
	}

	next, _ := Step(st, testSpeed, rand.New(rand.NewSource(1)))
	if next.Direction != core.DirDown || next.Head() != (Point{X: 6, Y: 6}) {
		t.Errorf("Step should commit the staged heading, got %v at %v", next.Direction, next.Head())
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head Point
		dir  core.Direction
	}{
		{"right wall", Point{X: 19, Y: 5}, core.DirRight},
		{"left wall", Point{X: 0, Y: 5}, core.DirLeft},
		{"top wall", Point{X: 5, Y: 0}, core.DirUp},
		{"bottom wall", Point{X: 5, Y: 19}, core.DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := testState(tc.head)
			st.Direction, st.Pending = tc.dir, tc.dir

			next, out := Step(st, testSpeed, rand.New(rand.NewSource(1)))
			if !out.Died || !next.Over || next.Running {
				t.Errorf("Expected game over, got over=%v running=%v", next.Over, next.Running)
			}
			if !reflect.DeepEqual(next.Segments, st.Segments) {
				t.Error("A fatal step should not move the snake")
			}
		})
	}
}

func TestSelfCollisionIncludesTail(t *testing.T) {
	// Head at (5,5) moving down into (5,6), which is the tail.
	st := testState(
		Point{X: 5, Y: 5},
		Point{X: 6, Y: 5},
		Point{X: 6, Y: 6},
		Point{X: 5, Y: 6},
	)
	st.Direction, st.Pending = core.DirDown, core.DirDown

	next, out := Step(st, testSpeed, rand.New(rand.NewSource(1)))
	if !out.Died || !next.Over {
		t.Error("Moving into the tail cell should be fatal")
	}
}

func TestStepIsPure(t *testing.T) {
	st := testState(Point{X: 5, Y: 5}, Point{X: 4, Y: 5})
	st.Food = Point{X: 6, Y: 5}
	before := st.clone()

	a, _ := Step(st, testSpeed, rand.New(rand.NewSource(7)))
	b, _ := Step(st, testSpeed, rand.New(rand.NewSource(7)))

	if !reflect.DeepEqual(a, b) {
		t.Errorf("Step should be a function of its inputs:\n%+v\n%+v", a, b)
	}
	if !reflect.DeepEqual(st, before) {
		t.Error("Step must not modify its input state")
	}
	if Collides(st, Point{X: 4, Y: 5}) != Collides(st, Point{X: 4, Y: 5}) {
		t.Error("Collides should be deterministic")
	}
}

func TestStepIgnoredWhenNotRunning(t *testing.T) {
	st := testState(Point{X: 5, Y: 5})
	st.Running = false

	next, out := Step(st, testSpeed, rand.New(rand.NewSource(1)))
	if out != (Outcome{}) || next.Head() != st.Head() {
		t.Error("Idle state should not advance")
	}
}

// TestLengthInvariant plays random games and checks that every step either
// slides (same length) or grows by exactly one when food is eaten, and that
// a live snake never overlaps itself.
func TestLengthInvariant(t *testing.T) {
	dirs := []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		cfg := config.DefaultSnakeConfig()
		grid := Grid{Cols: 12, Rows: 10, CellPx: 16}
		st := NewBoard(grid, cfg, 0, rng)
		st.Running = true

		for i := 0; i < 400 && !st.Over; i++ {
			if rng.Intn(3) == 0 {
				st = Steer(st, dirs[rng.Intn(len(dirs))])
			}
			// Steer toward food half the time so growth actually happens.
			if rng.Intn(2) == 0 {
				st = Steer(st, towards(st.Head(), st.Food))
			}

			before := len(st.Segments)
			next, out := Step(st, cfg.Speed, rng)

			switch {
			case out.Died:
				if len(next.Segments) != before {
					t.Fatalf("seed %d: fatal step changed length", seed)
				}
			case out.Ate:
				if len(next.Segments) != before+1 {
					t.Fatalf("seed %d step %d: growth gave %d -> %d", seed, i, before, len(next.Segments))
				}
			default:
				if len(next.Segments) != before {
					t.Fatalf("seed %d step %d: slide gave %d -> %d", seed, i, before, len(next.Segments))
				}
			}

			if !next.Over && hasDuplicates(next.Segments) {
				t.Fatalf("seed %d step %d: duplicate segments %v", seed, i, next.Segments)
			}
			if next.Score < st.Score || next.HighScore < next.Score {
				t.Fatalf("seed %d: score invariant broken (%d -> %d, high %d)", seed, st.Score, next.Score, next.HighScore)
			}
			if next.Food != offBoard && next.Occupies(next.Food) {
				t.Fatalf("seed %d: food %v placed on snake", seed, next.Food)
			}
			st = next
		}
	}
}

func towards(from, to Point) core.Direction {
	switch {
	case to.X > from.X:
		return core.DirRight
	case to.X < from.X:
		return core.DirLeft
	case to.Y > from.Y:
		return core.DirDown
	default:
		return core.DirUp
	}
}

func hasDuplicates(points []Point) bool {
	seen := make(map[Point]bool, len(points))
	for _, p := range points {
		if seen[p] {
			return true
		}
		seen[p] = true
	}
	return false
}

func TestPlaceFood(t *testing.T) {
	grid := Grid{Cols: 4, Rows: 4, CellPx: 16}
	rng := rand.New(rand.NewSource(3))

	// Interior is (1..2, 1..2); leave only (2,2) free.
	segments := []Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}
	for i := 0; i < 20; i++ {
		if p := PlaceFood(segments, grid, rng); p != (Point{X: 2, Y: 2}) {
			t.Fatalf("Expected the only free interior cell, got %v", p)
		}
	}

	// Interior full: fall back to the border.
	segments = append(segments, Point{X: 2, Y: 2})
	p := PlaceFood(segments, grid, rng)
	if !grid.Inside(p) || (p.X != 0 && p.X != 3 && p.Y != 0 && p.Y != 3) {
		t.Errorf("Expected a border cell, got %v", p)
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	grid := Grid{Cols: 2, Rows: 2, CellPx: 16}
	segments := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	if p := PlaceFood(segments, grid, rand.New(rand.NewSource(1))); p != offBoard {
		t.Errorf("Full board should park food off-board, got %v", p)
	}
	if p := PlaceFood(nil, Grid{}, rand.New(rand.NewSource(1))); p != offBoard {
		t.Errorf("Empty grid should park food off-board, got %v", p)
	}
}

func TestPlaceFoodInterior(t *testing.T) {
	grid := Grid{Cols: 40, Rows: 23, CellPx: 16}
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		p := PlaceFood(nil, grid, rng)
		if p.X < 1 || p.X > 38 || p.Y < 1 || p.Y > 21 {
			t.Fatalf("Food %v outside the interior", p)
		}
	}
}

func TestGridFor(t *testing.T) {
	cfg := config.DefaultSnakeConfig().Grid

	tests := []struct {
		name       string
		cols, rows int
		expected   Grid
	}{
		{"standard terminal", 80, 23, Grid{Cols: 40, Rows: 23, CellPx: 16}},
		{"wide terminal", 120, 30, Grid{Cols: 40, Rows: 20, CellPx: 24}},
		{"zero size", 0, 0, Grid{}},
		{"too narrow", 4, 20, Grid{}},
		{"too short", 80, 4, Grid{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := GridFor(core.ScreenViewport(tc.cols, tc.rows), cfg)
			if got != tc.expected {
				t.Errorf("GridFor(%d, %d) = %+v, expected %+v", tc.cols, tc.rows, got, tc.expected)
			}
		})
	}
}

func TestNewBoard(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	rng := rand.New(rand.NewSource(1))

	st := NewBoard(Grid{Cols: 40, Rows: 23, CellPx: 16}, cfg, 17, rng)
	if st.Head() != (Point{X: 10, Y: 10}) || len(st.Segments) != 1 {
		t.Errorf("Expected single segment at {10 10}, got %v", st.Segments)
	}
	if st.Direction != core.DirRight || st.Pending != core.DirRight {
		t.Errorf("Expected RIGHT, got %v/%v", st.Direction, st.Pending)
	}
	if st.Running || st.Over || st.Score != 0 || st.HighScore != 17 {
		t.Errorf("Unexpected session state %+v", st.GameState)
	}
	if st.Interval != 150*time.Millisecond {
		t.Errorf("Interval = %v, expected 150ms", st.Interval)
	}

	small := NewBoard(Grid{Cols: 6, Rows: 6, CellPx: 16}, cfg, 0, rng)
	if small.Head() != (Point{X: 4, Y: 4}) {
		t.Errorf("Start should clamp into a small board, got %v", small.Head())
	}
}

func TestInterval(t *testing.T) {
	speed := config.DefaultSnakeConfig().Speed

	tests := []struct {
		score    int
		expected time.Duration
	}{
		{0, 150 * time.Millisecond},
		{10, 130 * time.Millisecond},
		{50, 50 * time.Millisecond},
		{100, 50 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := speed.Interval(tc.score); got != tc.expected {
			t.Errorf("Interval(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}
