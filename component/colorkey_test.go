package component

import (
	"image"
	"image/color"
	"testing"
)

func TestColorKey(t *testing.T) {
	magenta := color.NRGBA{R: 255, G: 0, B: 255, A: 255}
	src := image.NewRGBA(image.Rect(10, 20, 13, 21))
	src.Set(10, 20, magenta)
	src.Set(11, 20, color.NRGBA{R: 255, G: 1, B: 255, A: 255})
	src.Set(12, 20, color.NRGBA{R: 0, G: 128, B: 0, A: 255})

	out := ColorKey(src, magenta)
	if out.Bounds() != image.Rect(0, 0, 3, 1) {
		t.Fatalf("expected rebased bounds, got %v", out.Bounds())
	}

	cases := []struct {
		x     int
		alpha uint8
	}{
		{0, 0},
		{1, 255},
		{2, 255},
	}
	for _, c := range cases {
		if got := out.NRGBAAt(c.x, 0).A; got != c.alpha {
			t.Fatalf("pixel %d: expected alpha %d, got %d", c.x, c.alpha, got)
		}
	}
	if src.RGBAAt(10, 20).A != 255 {
		t.Fatalf("source image must not be modified")
	}
}

func TestColorKeyNilKey(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.NRGBA{R: 255, B: 255, A: 255})
	out := ColorKey(src, nil)
	if out.NRGBAAt(0, 0).A != 255 {
		t.Fatalf("nil key should keep all pixels")
	}
}
