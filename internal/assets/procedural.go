package assets

import (
	"image"
	"image/color"
)

// Sprite sizes of the classic art after 2x scaling.
const (
	BirdW, BirdH             = 68, 48
	PipeW, PipeH             = 104, 640
	BaseW, BaseH             = 672, 224
	BackgroundW, BackgroundH = 576, 1024
)

var (
	birdBody   = color.NRGBA{250, 214, 60, 255}
	birdWing   = color.NRGBA{255, 240, 170, 255}
	birdEye    = color.NRGBA{255, 255, 255, 255}
	birdPupil  = color.NRGBA{20, 20, 20, 255}
	birdBeak   = color.NRGBA{240, 110, 40, 255}
	pipeBody   = color.NRGBA{115, 190, 46, 255}
	pipeShade  = color.NRGBA{84, 140, 32, 255}
	pipeLight  = color.NRGBA{160, 225, 90, 255}
	grass      = color.NRGBA{110, 200, 60, 255}
	grassDark  = color.NRGBA{80, 160, 40, 255}
	dirt       = color.NRGBA{222, 216, 149, 255}
	skyTop     = color.NRGBA{78, 192, 202, 255}
	skyBottom  = color.NRGBA{200, 240, 235, 255}
	cloudColor = color.NRGBA{235, 250, 245, 255}
)

// drawBird paints a round bird facing right. wing shifts the wing up
// (negative) or down (positive) for the flap frames. The corners stay
// transparent, which is what makes mask collisions matter.
func drawBird(wing int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, BirdW, BirdH))

	fillEllipse(img, 32, 24, 26, 18, birdBody)
	fillEllipse(img, 20, 24+wing, 12, 6, birdWing)
	fillEllipse(img, 44, 16, 7, 7, birdEye)
	fillEllipse(img, 46, 16, 3, 3, birdPupil)
	fillRect(img, image.Rect(52, 24, 66, 31), birdBeak)

	return img
}

// drawPipe paints the bottom pipe piece: a lip at the top, body below.
func drawPipe() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, PipeW, PipeH))

	fillRect(img, image.Rect(4, 0, PipeW-4, PipeH), pipeBody)
	fillRect(img, image.Rect(4, 0, 14, PipeH), pipeLight)
	fillRect(img, image.Rect(PipeW-18, 0, PipeW-4, PipeH), pipeShade)

	fillRect(img, image.Rect(0, 0, PipeW, 40), pipeBody)
	fillRect(img, image.Rect(0, 0, 10, 40), pipeLight)
	fillRect(img, image.Rect(PipeW-14, 0, PipeW, 40), pipeShade)
	fillRect(img, image.Rect(0, 36, PipeW, 40), pipeShade)

	return img
}

// drawBase paints grass with slanted stripes over dirt. The stripes make
// the scroll visible.
func drawBase() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, BaseW, BaseH))

	fillRect(img, image.Rect(0, 0, BaseW, BaseH), dirt)
	for y := 0; y < 24; y++ {
		for x := 0; x < BaseW; x++ {
			c := grass
			if (x+y)%48 < 24 {
				c = grassDark
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// drawBackground paints a vertical sky gradient with a band of clouds.
func drawBackground() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, BackgroundW, BackgroundH))

	for y := 0; y < BackgroundH; y++ {
		c := lerp(skyTop, skyBottom, float64(y)/float64(BackgroundH-1))
		for x := 0; x < BackgroundW; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	for i, x := range []int{40, 150, 260, 380, 500} {
		fillEllipse(img, x, 640+(i%2)*20, 70, 36, cloudColor)
	}
	return img
}

// fillRect fills r clipped to the image.
func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// fillEllipse fills the axis-aligned ellipse centered at (cx, cy).
func fillEllipse(img *image.NRGBA, cx, cy, rx, ry int, c color.NRGBA) {
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)
			if dx*dx+dy*dy <= 1 && image.Pt(x, y).In(img.Bounds()) {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// lerp blends a toward b by t in [0, 1].
func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
