// Package flappy implements the game core: bird kinematics, the pipe stream,
// pixel-accurate collisions and the session state machine. Time is an integer
// tick counter; nothing here reads the wall clock.
package flappy

import (
	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Bird is the player sprite. X never changes; Y moves under fixed-step gravity.
type Bird struct {
	X, Y      float64
	Tilt      float64 // degrees, positive = nose up
	Vel       float64 // velocity set by the last flap
	TickCount int     // ticks since the last flap
	Height    float64 // Y at the last flap
	ImgCount  int     // wing animation counter
	frame     core.SpriteID
	cfg       config.Bird
}

// NewBird creates a bird at rest at (x, y).
func NewBird(x, y float64, cfg config.Bird) *Bird {
	return &Bird{
		X:      x,
		Y:      y,
		Height: y,
		frame:  core.SpriteBird0,
		cfg:    cfg,
	}
}

// Jump flaps: sets the upward velocity and restarts the parabola from here.
func (b *Bird) Jump() {
	b.Vel = b.cfg.JumpVelocity
	b.TickCount = 0
	b.Height = b.Y
}

// Displacement returns the vertical move for tick t of the current parabola.
func (b *Bird) Displacement(t int) float64 {
	ft := float64(t)
	d := b.Vel*ft + 0.5*b.cfg.Gravity*ft*ft

	if d >= b.cfg.MaxDisplacement {
		d = b.cfg.MaxDisplacement
	}
	if d < 0 {
		d -= b.cfg.RiseBoost
	}
	return d
}

// Advance moves the bird by one tick and updates tilt and wing frame.
// It returns the displacement applied.
func (b *Bird) Advance() float64 {
	b.TickCount++
	d := b.Displacement(b.TickCount)
	b.Y += d

	if d < 0 || b.Y < b.Height+b.cfg.TiltHoldMargin {
		if b.Tilt < b.cfg.MaxTilt {
			b.Tilt = b.cfg.MaxTilt
		}
	} else if b.Tilt > b.cfg.MinTilt {
		b.Tilt = core.ClampF(b.Tilt-b.cfg.RotationVelocity, b.cfg.MinTilt, b.cfg.MaxTilt)
	}

	b.animate()
	return d
}

// animate steps the wing cycle 0,1,2,1,0 with AnimationTime ticks per frame.
// A diving bird holds its wings level.
func (b *Bird) animate() {
	at := b.cfg.AnimationTime
	b.ImgCount++

	switch {
	case b.ImgCount <= at:
		b.frame = core.SpriteBird0
	case b.ImgCount <= at*2:
		b.frame = core.SpriteBird1
	case b.ImgCount <= at*3:
		b.frame = core.SpriteBird2
	case b.ImgCount <= at*4:
		b.frame = core.SpriteBird1
	default:
		b.frame = core.SpriteBird0
		b.ImgCount = 0
	}

	if b.Tilt <= b.cfg.StallTilt {
		b.frame = core.SpriteBird1
		b.ImgCount = at * 2
	}
}

// Frame returns the sprite for the current wing position.
func (b *Bird) Frame() core.SpriteID {
	return b.frame
}
