package reflex

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// escalation lists automatic speed levels from the highest down. A stop
// reaches a level when the session score clears Score outright, or clears
// WithAccuracy while accuracy is above Accuracy. A zero Accuracy disables
// the second clause.
var escalation = []struct {
	Level        int
	Score        int
	WithAccuracy int
	Accuracy     float64
}{
	{Level: 5, Score: 300, WithAccuracy: 200, Accuracy: 50},
	{Level: 4, Score: 200, WithAccuracy: 100, Accuracy: 60},
	{Level: 3, Score: 100, WithAccuracy: 50, Accuracy: 70},
	{Level: 2, Score: 50},
}

// feedbackTiers maps a points floor (exclusive) to the feedback word.
var feedbackTiers = []struct {
	Above int
	Word  string
}{
	{90, "Perfect"},
	{70, "Great"},
	{50, "Good"},
	{30, "Not bad"},
}

// NewSession returns an idle session at the configured start position and
// speed level. The target starts at the canvas center.
func NewSession(cfg config.ReflexConfig, highScore int) State {
	canvas := core.Viewport{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}
	level := core.Clamp(cfg.Speed.StartLevel, 1, max(1, len(cfg.Speed.Levels)))
	return State{
		GameState:    core.GameState{HighScore: highScore},
		Position:     cfg.Sprite.StartX + cfg.Sprite.Size/2,
		Direction:    1,
		Speed:        SpeedFor(cfg, level),
		SpeedLevel:   level,
		TargetCenter: canvas.Width / 2,
		TargetWidth:  cfg.Target.Width,
		Canvas:       canvas,
	}
}

// SpeedFor returns the per-step speed of a level.
func SpeedFor(cfg config.ReflexConfig, level int) float64 {
	if len(cfg.Speed.Levels) == 0 {
		return 0
	}
	return cfg.Speed.Levels[core.Clamp(level, 1, len(cfg.Speed.Levels))-1]
}

// Start begins a fresh session with the sprite moving.
func Start(cfg config.ReflexConfig, highScore int) State {
	st := NewSession(cfg, highScore)
	st.Running = true
	st.Moving = true
	return st
}

// Resume sets the sprite moving again and clears the last feedback.
func Resume(st State) State {
	if !st.Running {
		return st
	}
	st.Moving = true
	st.Feedback = ""
	st.FeedbackLeft = 0
	return st
}

// Advance runs one step. The sprite moves by Speed and bounces off the
// canvas edges; the feedback timer counts down by dt.
func Advance(st State, cfg config.ReflexConfig, dt time.Duration) State {
	if !st.Running {
		return st
	}
	st.Elapsed = dt

	if st.FeedbackLeft > 0 {
		st.FeedbackLeft -= dt
		if st.FeedbackLeft <= 0 {
			st.FeedbackLeft = 0
			st.Feedback = ""
		}
	}

	if !st.Moving {
		return st
	}

	lo := cfg.Sprite.Size / 2
	hi := st.Canvas.Width - cfg.Sprite.Size/2
	st.Position += st.Speed * st.Direction
	if st.Position <= lo {
		st.Position = lo
		st.Direction = 1
	} else if st.Position >= hi {
		st.Position = hi
		st.Direction = -1
	}
	return st
}

// Points scores a stop at distance from the target center. A perfect stop
// is worth 100, anything half a canvas or further away is worth 0.
func Points(distance, maxDistance float64) int {
	if maxDistance <= 0 {
		return 0
	}
	return max(0, int(math.Round((1-distance/maxDistance)*100)))
}

// FeedbackFor returns the feedback line for a stop worth points.
func FeedbackFor(points int) string {
	for _, tier := range feedbackTiers {
		if points > tier.Above {
			return fmt.Sprintf("%s! +%d", tier.Word, points)
		}
	}
	return fmt.Sprintf("Try again! +%d", points)
}

// EscalatedLevel returns the level a score and accuracy earn. Zero means no
// threshold was reached.
func EscalatedLevel(score int, accuracy float64) int {
	for _, e := range escalation {
		if score > e.Score || (e.Accuracy > 0 && score > e.WithAccuracy && accuracy > e.Accuracy) {
			return e.Level
		}
	}
	return 0
}

// StopResult reports what a stop did.
type StopResult struct {
	Points    int
	Hit       bool
	SpeedUp   bool
	Relocated bool
}

// Stop freezes the sprite and scores the attempt. Escalation only ever
// raises the level. Past the relocation score the target may jump to a new
// random spot.
func Stop(st State, cfg config.ReflexConfig, rng *rand.Rand) (State, StopResult) {
	if !st.Running || !st.Moving {
		return st, StopResult{}
	}
	st.Moving = false
	st.Attempts++

	var res StopResult
	res.Points = Points(math.Abs(st.Position-st.TargetCenter), st.Canvas.Width/2)
	if res.Points > cfg.Target.HitPoints {
		res.Hit = true
		st.Hits++
	}

	st.Score += res.Points
	if st.Score > st.HighScore {
		st.HighScore = st.Score
	}
	st.Feedback = FeedbackFor(res.Points)

	if cfg.Speed.Escalate {
		level := min(EscalatedLevel(st.Score, st.Accuracy()), len(cfg.Speed.Levels))
		if level > st.SpeedLevel {
			st.SpeedLevel = level
			st.Speed = SpeedFor(cfg, level)
			st.Feedback += " Speed up!"
			res.SpeedUp = true
		}
	}

	if st.Score > cfg.Target.RelocateAfter && rng.Float64() < cfg.Target.RelocateChance {
		span := st.Canvas.Width - 2*cfg.Target.Margin
		st.TargetCenter = math.Floor(rng.Float64()*span) + cfg.Target.Margin
		res.Relocated = true
	}

	st.FeedbackLeft = cfg.Feedback.ClearAfter()
	return st, res
}

// SetLevel changes the speed level by hand, clamped to the configured
// levels. Manual changes may lower the level.
func SetLevel(st State, cfg config.ReflexConfig, level int) State {
	if len(cfg.Speed.Levels) == 0 {
		return st
	}
	st.SpeedLevel = core.Clamp(level, 1, len(cfg.Speed.Levels))
	st.Speed = SpeedFor(cfg, st.SpeedLevel)
	return st
}
