package flappy

import (
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// SpriteSheet exposes sprite sizes and silhouettes by id.
// The game never sees pixels, only these masks.
type SpriteSheet interface {
	Size(id core.SpriteID) (w, h int)
	Silhouette(id core.SpriteID) *core.Mask
}

// Oracle answers collision questions against a sprite sheet.
type Oracle struct {
	sheet SpriteSheet
}

// NewOracle creates an oracle over the given sheet.
func NewOracle(sheet SpriteSheet) *Oracle {
	return &Oracle{sheet: sheet}
}

// Collides reports whether the bird's current silhouette touches either
// piece of the pipe. Bounding boxes are only a fast reject; transparent
// padding never counts as a hit.
func (o *Oracle) Collides(b *Bird, p *Pipe) bool {
	birdMask := o.sheet.Silhouette(b.Frame())
	bx, by := core.Round(b.X), core.Round(b.Y)
	px := core.Round(p.X)

	pieces := []struct {
		id core.SpriteID
		y  int
	}{
		{core.SpritePipeTop, p.Top},
		{core.SpritePipeBottom, p.Bottom},
	}

	for _, piece := range pieces {
		mask := o.sheet.Silhouette(piece.id)
		if !birdMask.Bounds(bx, by).Intersects(mask.Bounds(px, piece.y)) {
			continue
		}
		if birdMask.Overlaps(mask, px-bx, piece.y-by) {
			return true
		}
	}
	return false
}

// GroundContact reports whether the bird's sprite reaches the ground line.
func (o *Oracle) GroundContact(b *Bird, groundY float64) bool {
	_, h := o.sheet.Size(b.Frame())
	return b.Y+float64(h) >= groundY
}
