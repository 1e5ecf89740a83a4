package component

import (
	"image"
	"math"
)

// Opaque reports whether the window pixel at `at` shows a visible sheet pixel
// when src is blitted onto dst. The point is mapped back through the inverse
// of BlitGeoM, so a mirrored dst is handled. Points outside dst, outside src
// or over a fully transparent pixel are not opaque.
func Opaque(sheet *image.NRGBA, src image.Rectangle, dst Rect, at image.Point) bool {
	if sheet == nil || !at.In(dst.Bounds()) {
		return false
	}
	g := BlitGeoM(src, dst)
	if !g.IsInvertible() {
		return false
	}
	g.Invert()

	// sample the pixel centre
	fx, fy := g.Apply(float64(at.X)+0.5, float64(at.Y)+0.5)
	p := image.Pt(src.Min.X+int(math.Floor(fx)), src.Min.Y+int(math.Floor(fy)))
	if !p.In(src) || !p.In(sheet.Bounds()) {
		return false
	}
	return sheet.NRGBAAt(p.X, p.Y).A != 0
}
