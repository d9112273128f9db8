package core

import "time"

// RuntimeConfig contains configuration passed to games when they are mounted.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Frames per second requested from the host scheduler
	Seed      int64 // RNG seed for deterministic gameplay
	HighScore int   // Persisted best score loaded at mount
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameInterval returns the host frame period for the configured tick rate.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return NominalFrame
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the part of every game's state the host cares about.
type GameState struct {
	Running   bool          // Loop is live and simulation advances
	Over      bool          // Terminal state reached; restart required
	Score     int           // Current session score, never decreases
	HighScore int           // Best score seen, always >= Score
	Elapsed   time.Duration // Delta applied by the most recent update
}

// Idle reports whether the game is waiting for its first start.
func (s GameState) Idle() bool {
	return !s.Running && !s.Over
}
