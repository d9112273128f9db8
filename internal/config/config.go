// Package config provides YAML-based game configuration loading,
// difficulty presets and process settings for the arcade.
package config

import "time"

// ReflexConfig contains all configuration for the reflex timer.
// Sizes are in the game's own canvas pixels, not the terminal's.
type ReflexConfig struct {
	Canvas   ReflexCanvas   `yaml:"canvas"`
	Sprite   ReflexSprite   `yaml:"sprite"`
	Target   ReflexTarget   `yaml:"target"`
	Speed    ReflexSpeed    `yaml:"speed"`
	Feedback ReflexFeedback `yaml:"feedback"`
}

// ReflexCanvas is the fixed playfield size.
type ReflexCanvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ReflexSprite defines the moving square.
type ReflexSprite struct {
	Size   float64 `yaml:"size"`
	StartX float64 `yaml:"start_x"` // Left edge at session start
}

// ReflexTarget defines the target zone and its relocation rule.
type ReflexTarget struct {
	Width          float64 `yaml:"width"`
	HitPoints      int     `yaml:"hit_points"`      // Points above this count as a hit
	RelocateAfter  int     `yaml:"relocate_after"`  // Score above which the target may move
	RelocateChance float64 `yaml:"relocate_chance"` // Per-stop probability
	Margin         float64 `yaml:"margin"`          // Distance kept from both canvas edges
}

// ReflexSpeed defines speed levels and escalation.
type ReflexSpeed struct {
	StartLevel int       `yaml:"start_level"`
	Levels     []float64 `yaml:"levels"` // Pixels per step for levels 1..len
	StepMS     int       `yaml:"step_ms"`
	Escalate   bool      `yaml:"escalate"` // Raise level automatically from score and accuracy
}

// Step returns the simulation step length.
func (s ReflexSpeed) Step() time.Duration {
	return time.Duration(s.StepMS) * time.Millisecond
}

// ReflexFeedback defines how long feedback text stays visible.
type ReflexFeedback struct {
	ClearAfterMS int `yaml:"clear_after_ms"`
}

// ClearAfter returns the feedback lifetime.
func (f ReflexFeedback) ClearAfter() time.Duration {
	return time.Duration(f.ClearAfterMS) * time.Millisecond
}

// FlappyConfig contains all configuration for the obstacle runner.
// Most values are fractions of the viewport so the game scales with it.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics"`
	Actor     FlappyActor     `yaml:"actor"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Ground    FlappyGround    `yaml:"ground"`
	Speed     FlappySpeed     `yaml:"speed"`
}

// FlappyPhysics defines physics parameters.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Height fraction per ms, per ms
	JumpImpulse  float64 `yaml:"jump_impulse"`  // Height fraction, applied upward
	StartImpulse float64 `yaml:"start_impulse"` // Height fraction, applied upward on start
	BoostDivisor float64 `yaml:"boost_divisor"` // Fall velocity that yields a full boost
	BoostFactor  float64 `yaml:"boost_factor"`  // Extra jump strength at full boost
	MaxDeltaMS   int     `yaml:"max_delta_ms"`
}

// MaxDelta returns the per-frame delta cap.
func (p FlappyPhysics) MaxDelta() time.Duration {
	return time.Duration(p.MaxDeltaMS) * time.Millisecond
}

// FlappyActor defines the bird.
type FlappyActor struct {
	X         float64 `yaml:"x"`          // Width fraction
	Width     float64 `yaml:"width"`      // Width fraction
	MinWidth  float64 `yaml:"min_width"`  // Pixels
	Height    float64 `yaml:"height"`     // Width fraction
	MinHeight float64 `yaml:"min_height"` // Pixels
}

// FlappyObstacles defines pipe generation.
type FlappyObstacles struct {
	SpawnEveryMS int     `yaml:"spawn_every_ms"`
	Width        float64 `yaml:"width"`      // Width fraction
	Gap          float64 `yaml:"gap"`        // Height fraction
	MinHeight    float64 `yaml:"min_height"` // Height fraction
}

// SpawnEvery returns the obstacle spawn period.
func (o FlappyObstacles) SpawnEvery() time.Duration {
	return time.Duration(o.SpawnEveryMS) * time.Millisecond
}

// FlappyGround defines the ground band.
type FlappyGround struct {
	Height float64 `yaml:"height"` // Height fraction
}

// FlappySpeed defines scrolling and its progression.
type FlappySpeed struct {
	Base  float64 `yaml:"base"`  // Width fraction per nominal frame
	Step  float64 `yaml:"step"`  // Width fraction added per speed level
	Every int     `yaml:"every"` // Passed obstacles per speed level
}

// SnakeConfig contains all configuration for the grid snake.
type SnakeConfig struct {
	Grid  SnakeGrid  `yaml:"grid"`
	Start SnakeStart `yaml:"start"`
	Speed SnakeSpeed `yaml:"speed"`
}

// SnakeGrid defines how the board is derived from the viewport.
type SnakeGrid struct {
	Divisor int `yaml:"divisor"` // Cell size is floor(width / divisor)
	MinCols int `yaml:"min_cols"`
	MinRows int `yaml:"min_rows"`
}

// SnakeStart defines the initial snake.
type SnakeStart struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Direction string `yaml:"direction"` // up, down, left or right
}

// SnakeSpeed defines the step interval and how it shrinks with score.
type SnakeSpeed struct {
	IntervalMS    int `yaml:"interval_ms"`
	MinIntervalMS int `yaml:"min_interval_ms"`
	StepMS        int `yaml:"step_ms"` // Interval reduction per point
}

// Interval returns the step interval for a score.
func (s SnakeSpeed) Interval(score int) time.Duration {
	ms := max(s.MinIntervalMS, s.IntervalMS-s.StepMS*score)
	return time.Duration(ms) * time.Millisecond
}
