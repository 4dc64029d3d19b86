package core

import (
	"fmt"
	"image/color"
)

// RGB is a 24-bit color used for screen cells.
// Frontends map it to true-color terminal escapes.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBFrom converts any image color to RGB, dropping alpha.
func RGBFrom(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// Predefined colors for HUD and backdrop.
var (
	ColorBlack  = RGB{0, 0, 0}
	ColorWhite  = RGB{255, 255, 255}
	ColorYellow = RGB{250, 214, 60}
	ColorRed    = RGB{220, 60, 50}
	ColorSky    = RGB{78, 192, 202}
)
