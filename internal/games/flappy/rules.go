package flappy

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// NewSession places the actor for viewport v and clears the course.
func NewSession(v core.Viewport, cfg config.FlappyConfig, highScore int) State {
	w, h := v.Width, v.Height
	return State{
		GameState: core.GameState{HighScore: highScore},
		Actor: Actor{
			X: w * cfg.Actor.X,
			Y: h / 2,
			W: math.Max(cfg.Actor.MinWidth, w*cfg.Actor.Width),
			H: math.Max(cfg.Actor.MinHeight, w*cfg.Actor.Height),
		},
		ScrollSpeed: w * cfg.Speed.Base,
		SpeedLevel:  1,
		Viewport:    v,
	}
}

// Start begins a fresh session with a small upward kick so the actor does
// not drop straight into the ground.
func Start(st State, cfg config.FlappyConfig) State {
	next := NewSession(st.Viewport, cfg, st.HighScore)
	next.Running = true
	next.Actor.Velocity = -st.Viewport.Height * cfg.Physics.StartImpulse
	return next
}

// Jump replaces the actor's velocity with an upward impulse. The impulse
// grows with the current fall speed, up to BoostFactor extra at
// BoostDivisor pixels per frame.
func Jump(st State, cfg config.FlappyConfig) State {
	if !st.Running {
		return st
	}
	base := -st.Viewport.Height * cfg.Physics.JumpImpulse
	boost := 0.0
	if cfg.Physics.BoostDivisor > 0 {
		boost = core.ClampF(st.Actor.Velocity/cfg.Physics.BoostDivisor, 0, 1)
	}
	st.Actor.Velocity = base + base*boost*cfg.Physics.BoostFactor
	return st
}

// SpawnObstacle appends a pipe at the right edge with a random gap.
func SpawnObstacle(st State, cfg config.FlappyConfig, rng *rand.Rand) State {
	w, h := st.Viewport.Width, st.Viewport.Height
	gap := h * cfg.Obstacles.Gap
	minHeight := h * cfg.Obstacles.MinHeight
	maxHeight := h - gap - minHeight
	top := math.Floor(rng.Float64()*(maxHeight-minHeight) + minHeight)

	st = st.clone()
	st.Obstacles = append(st.Obstacles, Obstacle{
		X:         w,
		GapTop:    top,
		GapBottom: top + gap,
		Width:     w * cfg.Obstacles.Width,
	})
	return st
}

// Collides reports whether the actor overlaps either pipe of o.
func Collides(a Actor, o Obstacle) bool {
	return a.X+a.W > o.X && a.X < o.Right() &&
		(a.Y < o.GapTop || a.Y+a.H > o.GapBottom)
}

// Outcome reports what an advance did.
type Outcome struct {
	Scored int
	Died   bool
}

// Advance runs one continuous update of dt. Movement is expressed per
// nominal frame and scaled by dt, gravity is per millisecond. A zero dt is
// not a step and leaves the state unchanged.
func Advance(st State, cfg config.FlappyConfig, dt time.Duration, rng *rand.Rand) (State, Outcome) {
	if !st.Running || st.Over || st.Viewport.Empty() || dt <= 0 {
		return st, Outcome{}
	}

	next := st.clone()
	next.Elapsed = dt
	w, h := next.Viewport.Width, next.Viewport.Height
	ms := float64(dt) / float64(time.Millisecond)
	scale := float64(dt) / float64(core.NominalFrame)

	next.SpawnTimer += dt
	if next.SpawnTimer > cfg.Obstacles.SpawnEvery() {
		next = SpawnObstacle(next, cfg, rng)
		next.SpawnTimer = 0
	}

	a := &next.Actor
	a.Velocity += h * cfg.Physics.Gravity * ms
	a.Y += a.Velocity * scale

	if a.Y < 0 {
		a.Y = 0
		a.Velocity = 0
	} else if a.Y+a.H > next.GroundY(cfg.Ground.Height) {
		return gameOver(next), Outcome{Died: true}
	}

	var out Outcome
	kept := next.Obstacles[:0]
	for _, o := range next.Obstacles {
		o.X -= next.ScrollSpeed * scale

		if o.Right() < 0 {
			continue
		}

		if !out.Died && !o.Passed && a.X > o.Right() {
			o.Passed = true
			out.Scored++
			next.Score++
			next.Passed++
			if next.Score > next.HighScore {
				next.HighScore = next.Score
			}
			if cfg.Speed.Every > 0 && next.Passed%cfg.Speed.Every == 0 {
				next.ScrollSpeed += w * cfg.Speed.Step
				next.SpeedLevel++
			}
		}

		kept = append(kept, o)

		// Obstacles past the fatal one still move so the last frame is consistent.
		if !out.Died && Collides(*a, o) {
			out.Died = true
		}
	}
	next.Obstacles = kept

	if out.Died {
		return gameOver(next), out
	}
	return next, out
}

func gameOver(st State) State {
	st.Running = false
	st.Over = true
	return st
}
