package flappy

import (
	"github.com/vovakirdan/flappy-tui/internal/config"
)

// Ground is the scrolling base strip: two equal tiles that leapfrog each
// other. It is drawn but never collided with; the death line is its Y.
type Ground struct {
	Y      float64
	X1, X2 float64
	width  float64
	vel    float64
}

// NewGround places two tiles of the given width side by side at y.
func NewGround(y float64, width int, cfg config.Ground) *Ground {
	return &Ground{
		Y:     y,
		X1:    0,
		X2:    float64(width),
		width: float64(width),
		vel:   cfg.Velocity,
	}
}

// Advance scrolls both tiles and wraps whichever one left the screen.
func (g *Ground) Advance() {
	g.X1 -= g.vel
	g.X2 -= g.vel

	if g.X1+g.width < 0 {
		g.X1 = g.X2 + g.width
	}
	if g.X2+g.width < 0 {
		g.X2 = g.X1 + g.width
	}
}
