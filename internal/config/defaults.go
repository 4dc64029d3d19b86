package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in tuning, matching the embedded YAML.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		TickRate: 30,
		World: World{
			Width:  500,
			Height: 800,
		},
		Bird: Bird{
			StartX:           230,
			StartY:           350,
			JumpVelocity:     -5,
			Gravity:          1.5,
			MaxDisplacement:  10,
			RiseBoost:        2,
			MaxTilt:          25,
			MinTilt:          -90,
			RotationVelocity: 20,
			TiltHoldMargin:   50,
			StallTilt:        -80,
			AnimationTime:    5,
		},
		Pipes: Pipes{
			Gap:          200,
			Velocity:     4,
			MinGapCenter: 50,
			MaxGapCenter: 450,
			SpawnX:       700, // world width + 200
		},
		Ground: Ground{
			Y:        730,
			Velocity: 5,
		},
		Controls: Controls{
			ResetButton: Button{X: 10, Y: 10, W: 100, H: 50, Label: "Reset"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
