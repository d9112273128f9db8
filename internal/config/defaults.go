package config

import (
	_ "embed"
)

//go:embed defaults/reflex.yaml
var defaultReflexYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultReflexConfig returns the default reflex timer configuration.
func DefaultReflexConfig() ReflexConfig {
	return ReflexConfig{
		Canvas: ReflexCanvas{Width: 600, Height: 300},
		Sprite: ReflexSprite{Size: 30, StartX: 50},
		Target: ReflexTarget{
			Width:          80,
			HitPoints:      70,
			RelocateAfter:  150,
			RelocateChance: 0.3,
			Margin:         50,
		},
		Speed: ReflexSpeed{
			StartLevel: 2,
			Levels:     []float64{30, 45, 60, 80, 100},
			StepMS:     16,
			Escalate:   true,
		},
		Feedback: ReflexFeedback{ClearAfterMS: 1500},
	}
}

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.000015,
			JumpImpulse:  0.014,
			StartImpulse: 0.01,
			BoostDivisor: 10,
			BoostFactor:  0.5,
			MaxDeltaMS:   30,
		},
		Actor: FlappyActor{
			X:         0.2,
			Width:     0.05,
			MinWidth:  30,
			Height:    0.04,
			MinHeight: 24,
		},
		Obstacles: FlappyObstacles{
			SpawnEveryMS: 1500,
			Width:        0.1,
			Gap:          0.35,
			MinHeight:    0.1,
		},
		Ground: FlappyGround{Height: 0.1},
		Speed: FlappySpeed{
			Base:  0.005,
			Step:  0.001,
			Every: 5,
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:  SnakeGrid{Divisor: 40, MinCols: 5, MinRows: 5},
		Start: SnakeStart{X: 10, Y: 10, Direction: "right"},
		Speed: SnakeSpeed{IntervalMS: 150, MinIntervalMS: 50, StepMS: 2},
	}
}
