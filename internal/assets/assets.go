// Package assets owns the sprite images and their collision silhouettes.
// An Assets value is built once at startup and shared read-only by every
// renderer; the game core only sees it through sizes and masks.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Assets holds one image and one mask per sprite id.
type Assets struct {
	images [core.SpriteCount]*image.NRGBA
	masks  [core.SpriteCount]*core.Mask
}

// files maps sprite ids to the image names of a sprite directory.
// Both pipe pieces come from pipe.png; the top one is flipped.
var files = map[core.SpriteID]string{
	core.SpriteBird0:      "bird1.png",
	core.SpriteBird1:      "bird2.png",
	core.SpriteBird2:      "bird3.png",
	core.SpritePipeBottom: "pipe.png",
	core.SpriteBase:       "base.png",
	core.SpriteBackground: "bg.png",
}

// Load reads sprites from dir and scales them 2x. An empty dir selects the
// built-in procedural sprites. A missing or broken file is an error.
func Load(dir string) (*Assets, error) {
	if dir == "" {
		return Procedural(), nil
	}

	var imgs [core.SpriteCount]*image.NRGBA
	for id, name := range files {
		img, err := decodePNG(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		imgs[id] = scale2x(img)
	}
	imgs[core.SpritePipeTop] = flipVertical(imgs[core.SpritePipeBottom])

	return build(imgs), nil
}

// Procedural returns sprites drawn in code, sized like the classic 2x art.
func Procedural() *Assets {
	var imgs [core.SpriteCount]*image.NRGBA
	for i, wing := range []int{-7, 0, 7} {
		imgs[core.SpriteBird0+core.SpriteID(i)] = drawBird(wing)
	}
	imgs[core.SpritePipeBottom] = drawPipe()
	imgs[core.SpritePipeTop] = flipVertical(imgs[core.SpritePipeBottom])
	imgs[core.SpriteBase] = drawBase()
	imgs[core.SpriteBackground] = drawBackground()
	return build(imgs)
}

// build computes a silhouette for every image.
func build(imgs [core.SpriteCount]*image.NRGBA) *Assets {
	a := &Assets{images: imgs}
	for i, img := range imgs {
		a.masks[i] = core.MaskFromImage(img)
	}
	return a
}

// Image returns the pixels for a sprite.
func (a *Assets) Image(id core.SpriteID) *image.NRGBA {
	if int(id) < 0 || int(id) >= core.SpriteCount {
		return nil
	}
	return a.images[id]
}

// Size returns a sprite's dimensions.
func (a *Assets) Size(id core.SpriteID) (int, int) {
	img := a.Image(id)
	if img == nil {
		return 0, 0
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

// Silhouette returns the collision mask for a sprite.
func (a *Assets) Silhouette(id core.SpriteID) *core.Mask {
	if int(id) < 0 || int(id) >= core.SpriteCount {
		return nil
	}
	return a.masks[id]
}

// decodePNG opens and decodes a PNG file.
func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, nil
}

// scale2x doubles an image with nearest-neighbour sampling.
func scale2x(src image.Image) *image.NRGBA {
	b := src.Bounds()
	flat := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(flat, flat.Bounds(), src, b.Min, draw.Src)

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*2, b.Dy()*2))
	for y := 0; y < dst.Bounds().Dy(); y++ {
		for x := 0; x < dst.Bounds().Dx(); x++ {
			dst.SetNRGBA(x, y, flat.NRGBAAt(x/2, y/2))
		}
	}
	return dst
}

// flipVertical mirrors an image top to bottom.
func flipVertical(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetNRGBA(x, b.Max.Y-1-(y-b.Min.Y), src.NRGBAAt(x, y))
		}
	}
	return dst
}
