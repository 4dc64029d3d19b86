package core

import (
	"image"
	"math/bits"
)

// alphaThreshold is the alpha value a pixel must exceed to count as solid.
const alphaThreshold = 127

// Mask is a per-pixel opacity bitmap (a silhouette) used for exact
// collision tests. Rows are packed into 64-bit words.
type Mask struct {
	w, h  int
	words int // words per row
	bits  []uint64
}

// NewMask creates an empty mask of the given size.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	words := (w + 63) / 64
	return &Mask{w: w, h: h, words: words, bits: make([]uint64, words*h)}
}

// MaskFromImage marks every pixel whose alpha exceeds the threshold.
// The mask origin is the image's Min point.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > alphaThreshold {
				m.Set(x, y)
			}
		}
	}
	return m
}

// Size returns the mask dimensions.
func (m *Mask) Size() (int, int) {
	return m.w, m.h
}

// Set marks (x, y) solid. Out-of-range points are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.words+x/64] |= 1 << uint(x%64)
}

// At reports whether (x, y) is solid. Out-of-range points are empty.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.words+x/64]&(1<<uint(x%64)) != 0
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Bounds returns the mask rectangle placed at (x, y).
func (m *Mask) Bounds(x, y int) Rect {
	return NewRect(x, y, m.w, m.h)
}

// Overlaps reports whether any solid pixel of m coincides with a solid
// pixel of other when other's origin sits at (dx, dy) in m's coordinates.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	if other == nil {
		return false
	}

	// Intersection of the two masks in m's coordinates
	x0 := Max(0, dx)
	y0 := Max(0, dy)
	x1 := Min(m.w, dx+other.w)
	y1 := Min(m.h, dy+other.h)
	if x0 >= x1 || y0 >= y1 {
		return false
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) && other.At(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
