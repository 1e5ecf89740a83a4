package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Rect is a destination rectangle. Unlike image.Rectangle it keeps a negative
// width, which describes a horizontally mirrored draw.
type Rect struct {
	X, Y          int
	Width, Height int
}

// DestRect returns where a frameW x frameH frame lands in the window after
// scaling. A mirrored rect starts at the right edge and has negative width.
func DestRect(frameW, frameH int, scale float64, mirror bool) Rect {
	w := int(float64(frameW) * scale)
	h := int(float64(frameH) * scale)
	r := Rect{Width: w, Height: h}
	if mirror {
		return r.Mirror()
	}
	return r
}

// Mirror flips r around its own vertical centre line.
func (r Rect) Mirror() Rect {
	return Rect{X: r.X + r.Width, Y: r.Y, Width: -r.Width, Height: r.Height}
}

func (r Rect) Mirrored() bool {
	return r.Width < 0
}

// Bounds returns the area covered by r.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// BlitGeoM maps a source rectangle (drawn from its own origin, as a sub-image
// is) onto dst.
func BlitGeoM(src image.Rectangle, dst Rect) ebiten.GeoM {
	var g ebiten.GeoM
	if src.Dx() == 0 || src.Dy() == 0 {
		return g
	}
	g.Scale(float64(dst.Width)/float64(src.Dx()), float64(dst.Height)/float64(src.Dy()))
	g.Translate(float64(dst.X), float64(dst.Y))
	return g
}
