package reflex

import (
	"time"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// State is one reflex-timer session. Coordinates are canvas pixels.
type State struct {
	core.GameState

	Position     float64 // Sprite center
	Direction    float64 // -1 or +1
	Speed        float64 // Pixels per step
	SpeedLevel   int
	TargetCenter float64
	TargetWidth  float64
	Attempts     int
	Hits         int // Stops that scored above the hit threshold

	Moving       bool
	Feedback     string
	FeedbackLeft time.Duration

	Canvas core.Viewport
}

// Accuracy returns the hit percentage over all stops.
func (s State) Accuracy() float64 {
	return float64(s.Hits) / float64(max(1, s.Attempts)) * 100
}

// Sprite returns the sprite's box for a sprite of the given size.
func (s State) Sprite(size float64) core.RectF {
	return core.RectF{
		X: s.Position - size/2,
		Y: s.Canvas.Height/2 - size/2,
		W: size,
		H: size,
	}
}

// Target returns the target zone, full canvas height.
func (s State) Target() core.RectF {
	return core.RectF{
		X: s.TargetCenter - s.TargetWidth/2,
		W: s.TargetWidth,
		H: s.Canvas.Height,
	}
}
