package flappy

import (
	"time"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Actor is the bird. Coordinates are viewport pixels, Y grows downward.
type Actor struct {
	X, Y     float64 // Top-left corner
	W, H     float64
	Velocity float64 // Pixels per nominal frame, positive is down
}

// Box returns the actor's hitbox.
func (a Actor) Box() core.RectF {
	return core.RectF{X: a.X, Y: a.Y, W: a.W, H: a.H}
}

// Obstacle is a pipe pair with a gap between GapTop and GapBottom.
type Obstacle struct {
	X         float64
	GapTop    float64
	GapBottom float64
	Width     float64
	Passed    bool
}

// Right returns the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// TopBox returns the upper pipe's box.
func (o Obstacle) TopBox() core.RectF {
	return core.RectF{X: o.X, Y: 0, W: o.Width, H: o.GapTop}
}

// BottomBox returns the lower pipe's box down to height.
func (o Obstacle) BottomBox(height float64) core.RectF {
	return core.RectF{X: o.X, Y: o.GapBottom, W: o.Width, H: height - o.GapBottom}
}

// State is everything one obstacle-runner session owns.
type State struct {
	core.GameState

	Actor       Actor
	Obstacles   []Obstacle
	ScrollSpeed float64 // Pixels per nominal frame
	SpeedLevel  int
	Passed      int // Obstacles cleared this session
	SpawnTimer  time.Duration
	Viewport    core.Viewport
}

// GroundY returns the top of the ground band.
func (s State) GroundY(groundFrac float64) float64 {
	return s.Viewport.Height - s.Viewport.Height*groundFrac
}

func (s State) clone() State {
	s.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	return s
}
