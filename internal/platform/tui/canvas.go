package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/flappy-tui/internal/assets"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Canvas colors outside the sprites
var (
	letterbox   = core.ColorBlack
	buttonFill  = core.RGB{R: 60, G: 60, B: 60}
	buttonFrame = core.ColorWhite
	textColor   = core.ColorWhite
)

// halfBlock shows the top pixel as foreground and the bottom pixel as
// background, giving two square-ish pixels per terminal cell.
const halfBlock = '▀'

// textItem is a DrawText call waiting for the cell pass.
type textItem struct {
	text  string
	col   int
	row   int
	align core.Align
}

// Canvas rasterizes sprites into a virtual pixel grid of cols x rows*2 and
// composes it into terminal cells. The world is scaled to fit and centered;
// the remainder is letterboxed.
type Canvas struct {
	sheet  *assets.Assets
	worldW int
	worldH int

	screen *core.Screen
	pix    []core.RGB
	pw, ph int

	scale      float64 // world pixels per virtual pixel
	offX, offY float64 // virtual pixel position of the world origin

	texts  []textItem
	button *core.Rect
}

// NewCanvas creates a canvas for a world of worldW x worldH pixels shown in
// cols x rows terminal cells.
func NewCanvas(sheet *assets.Assets, worldW, worldH, cols, rows int) *Canvas {
	c := &Canvas{
		sheet:  sheet,
		worldW: worldW,
		worldH: worldH,
		screen: core.NewScreen(cols, rows),
	}
	c.Resize(cols, rows)
	return c
}

// Resize changes the terminal area and recomputes the world transform.
func (c *Canvas) Resize(cols, rows int) {
	cols = core.Max(cols, 1)
	rows = core.Max(rows, 1)

	c.screen.Resize(cols, rows)
	c.pw, c.ph = cols, rows*2
	c.pix = make([]core.RGB, c.pw*c.ph)

	c.scale = math.Max(float64(c.worldW)/float64(c.pw), float64(c.worldH)/float64(c.ph))
	c.offX = (float64(c.pw) - float64(c.worldW)/c.scale) / 2
	c.offY = (float64(c.ph) - float64(c.worldH)/c.scale) / 2
}

// Size returns the terminal area in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.screen.Width(), c.screen.Height()
}

// Begin starts a new frame.
func (c *Canvas) Begin() {
	for i := range c.pix {
		c.pix[i] = letterbox
	}
	c.texts = c.texts[:0]
	c.button = nil
}

// toWorld returns the world point at the center of virtual pixel (vx, vy).
func (c *Canvas) toWorld(vx, vy int) (float64, float64) {
	return (float64(vx) + 0.5 - c.offX) * c.scale, (float64(vy) + 0.5 - c.offY) * c.scale
}

// toPixel returns the virtual pixel containing world point (wx, wy).
func (c *Canvas) toPixel(wx, wy float64) (int, int) {
	return int(math.Floor(wx/c.scale + c.offX)), int(math.Floor(wy/c.scale + c.offY))
}

// DrawSprite samples the sprite at every virtual pixel it may cover.
// Rotation is counterclockwise in degrees around the sprite center; pixels
// with alpha below 128 are transparent.
func (c *Canvas) DrawSprite(id core.SpriteID, pos core.Vec, rotation float64) {
	img := c.sheet.Image(id)
	if img == nil {
		return
	}
	w, h := c.sheet.Size(id)
	cx := pos.X + float64(w)/2
	cy := pos.Y + float64(h)/2

	// A rotated sprite stays inside the circle through its corners
	reach := float64(w) / 2
	hy := float64(h) / 2
	if rotation != 0 {
		reach = math.Hypot(float64(w), float64(h)) / 2
		hy = reach
	}

	x0, y0 := c.toPixel(math.Max(cx-reach, 0), math.Max(cy-hy, 0))
	x1, y1 := c.toPixel(math.Min(cx+reach, float64(c.worldW)), math.Min(cy+hy, float64(c.worldH)))
	x0, y0 = core.Max(x0, 0), core.Max(y0, 0)
	x1, y1 = core.Min(x1, c.pw-1), core.Min(y1, c.ph-1)

	sin, cos := math.Sincos(rotation * math.Pi / 180)

	for vy := y0; vy <= y1; vy++ {
		for vx := x0; vx <= x1; vx++ {
			wx, wy := c.toWorld(vx, vy)
			if wx < 0 || wy < 0 || wx >= float64(c.worldW) || wy >= float64(c.worldH) {
				continue
			}

			dx, dy := wx-cx, wy-cy
			lx := dx*cos - dy*sin + float64(w)/2
			ly := dx*sin + dy*cos + float64(h)/2
			if lx < 0 || ly < 0 || lx >= float64(w) || ly >= float64(h) {
				continue
			}

			p := img.NRGBAAt(int(lx), int(ly))
			if p.A < 128 {
				continue
			}
			c.pix[vy*c.pw+vx] = core.RGBFrom(p)
		}
	}
}

// DrawText queues a label at a world position. Text is placed in whole
// cells on top of the composed pixels.
func (c *Canvas) DrawText(text string, pos core.Vec, align core.Align) {
	vx, vy := c.toPixel(pos.X, pos.Y)
	c.texts = append(c.texts, textItem{text: text, col: vx, row: vy / 2, align: align})
}

// SetButton marks a world rectangle to be painted as a button this frame.
func (c *Canvas) SetButton(r core.Rect) {
	c.button = &r
}

// Frame composes the pixels, the button and the queued text into cells.
func (c *Canvas) Frame() *core.Screen {
	if c.button != nil {
		c.paintButton(*c.button)
	}

	for row := 0; row < c.screen.Height(); row++ {
		for col := 0; col < c.screen.Width(); col++ {
			c.screen.SetCell(col, row, core.Cell{
				Rune: halfBlock,
				Fg:   c.pix[(row*2)*c.pw+col],
				Bg:   c.pix[(row*2+1)*c.pw+col],
			})
		}
	}

	for _, t := range c.texts {
		n := utf8.RuneCountInString(t.text)
		col := t.col
		switch t.align {
		case core.AlignCenter:
			col -= n / 2
		case core.AlignRight:
			col -= n
		}
		c.screen.DrawText(col, t.row, t.text, textColor)
	}

	return c.screen
}

// paintButton fills a world rectangle with a one-pixel frame.
func (c *Canvas) paintButton(r core.Rect) {
	x0, y0 := c.toPixel(float64(r.X), float64(r.Y))
	x1, y1 := c.toPixel(float64(r.Right()), float64(r.Bottom()))
	x1, y1 = x1-1, y1-1

	for vy := core.Max(y0, 0); vy <= core.Min(y1, c.ph-1); vy++ {
		for vx := core.Max(x0, 0); vx <= core.Min(x1, c.pw-1); vx++ {
			col := buttonFill
			if vx == x0 || vx == x1 || vy == y0 || vy == y1 {
				col = buttonFrame
			}
			c.pix[vy*c.pw+vx] = col
		}
	}
}

// CellToWorld maps a terminal cell to the world point at its center.
// ok is false for cells in the letterbox.
func (c *Canvas) CellToWorld(col, row int) (core.Vec, bool) {
	wx := (float64(col) + 0.5 - c.offX) * c.scale
	wy := (float64(row*2) + 1 - c.offY) * c.scale
	if wx < 0 || wy < 0 || wx >= float64(c.worldW) || wy >= float64(c.worldH) {
		return core.Vec{}, false
	}
	return core.Vec{X: wx, Y: wy}, true
}
