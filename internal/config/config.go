// Package config provides YAML-based tuning for the game: world size, bird
// physics, pipes, ground and on-screen controls. Every value is a fixed
// constant for the lifetime of a session.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	TickRate int      `yaml:"tick_rate"` // Simulation ticks per second
	World    World    `yaml:"world"`
	Bird     Bird     `yaml:"bird"`
	Pipes    Pipes    `yaml:"pipes"`
	Ground   Ground   `yaml:"ground"`
	Controls Controls `yaml:"controls"`
}

// World is the size of the visible play field in world pixels.
type World struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Bird defines the start pose and kinematics of the bird.
type Bird struct {
	StartX           float64 `yaml:"start_x"`
	StartY           float64 `yaml:"start_y"`
	JumpVelocity     float64 `yaml:"jump_velocity"`     // Velocity set by a flap (negative = up)
	Gravity          float64 `yaml:"gravity"`           // Acceleration per tick squared
	MaxDisplacement  float64 `yaml:"max_displacement"`  // Terminal fall per tick
	RiseBoost        float64 `yaml:"rise_boost"`        // Extra lift while displacement is negative
	MaxTilt          float64 `yaml:"max_tilt"`          // Nose-up limit in degrees
	MinTilt          float64 `yaml:"min_tilt"`          // Nose-down limit in degrees
	RotationVelocity float64 `yaml:"rotation_velocity"` // Degrees per tick while diving
	TiltHoldMargin   float64 `yaml:"tilt_hold_margin"`  // Keep nose up until this far below the flap height
	StallTilt        float64 `yaml:"stall_tilt"`        // At or below this tilt the wings freeze
	AnimationTime    int     `yaml:"animation_time"`    // Ticks per wing frame
}

// Pipes defines obstacle geometry and motion.
type Pipes struct {
	Gap          int     `yaml:"gap"`            // Vertical opening size
	Velocity     float64 `yaml:"velocity"`       // Leftward scroll per tick
	MinGapCenter int     `yaml:"min_gap_center"` // Inclusive
	MaxGapCenter int     `yaml:"max_gap_center"` // Exclusive
	SpawnX       float64 `yaml:"spawn_x"`        // Where new pipes appear
}

// Ground defines the scrolling base strip.
type Ground struct {
	Y        float64 `yaml:"y"`        // Top of the ground, also the death line
	Velocity float64 `yaml:"velocity"` // Leftward scroll per tick
}

// Controls defines on-screen hit regions.
type Controls struct {
	ResetButton Button `yaml:"reset_button"`
}

// Button is a clickable world-space rectangle.
type Button struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	W     int    `yaml:"w"`
	H     int    `yaml:"h"`
	Label string `yaml:"label"`
}

// Validate reports every value that would make the game unplayable.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.Bird.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("bird.gravity must be positive, got %v", c.Bird.Gravity))
	}
	if c.Bird.MaxDisplacement <= 0 {
		errs = append(errs, fmt.Errorf("bird.max_displacement must be positive, got %v", c.Bird.MaxDisplacement))
	}
	if c.Bird.MinTilt > c.Bird.MaxTilt {
		errs = append(errs, fmt.Errorf("bird.min_tilt %v is above bird.max_tilt %v", c.Bird.MinTilt, c.Bird.MaxTilt))
	}
	if c.Bird.AnimationTime <= 0 {
		errs = append(errs, fmt.Errorf("bird.animation_time must be positive, got %d", c.Bird.AnimationTime))
	}
	if c.Pipes.Gap <= 0 {
		errs = append(errs, fmt.Errorf("pipes.gap must be positive, got %d", c.Pipes.Gap))
	}
	if c.Pipes.MaxGapCenter <= c.Pipes.MinGapCenter {
		errs = append(errs, fmt.Errorf("pipes gap center range [%d, %d) is empty",
			c.Pipes.MinGapCenter, c.Pipes.MaxGapCenter))
	}
	if c.Pipes.Velocity <= 0 {
		errs = append(errs, fmt.Errorf("pipes.velocity must be positive, got %v", c.Pipes.Velocity))
	}
	if c.Ground.Y <= c.Bird.StartY {
		errs = append(errs, fmt.Errorf("ground.y %v must be below bird.start_y %v", c.Ground.Y, c.Bird.StartY))
	}

	return errors.Join(errs...)
}
