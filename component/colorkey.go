package component

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ColorKey returns an NRGBA copy of src whose pixels matching key exactly
// (colour and alpha) are fully transparent. The result is anchored at (0,0).
func ColorKey(src image.Image, key color.Color) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
	if key == nil {
		return dst
	}

	k := color.NRGBAModel.Convert(key).(color.NRGBA)
	pix := dst.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		if pix[i] == k.R && pix[i+1] == k.G && pix[i+2] == k.B && pix[i+3] == k.A {
			pix[i], pix[i+1], pix[i+2], pix[i+3] = 0, 0, 0, 0
		}
	}
	return dst
}
