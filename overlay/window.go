package overlay

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Configure applies the mascot window chrome: no decoration, always on top,
// fixed size, centred on the current monitor. The returned options make the
// screen transparent, keep the window out of the taskbar and show it without
// taking focus.
func (o *Overlay) Configure() *ebiten.RunGameOptions {
	ebiten.SetWindowTitle(o.spec.Name)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(o.width, o.height)
	ebiten.SetScreenClearedEveryFrame(true)

	mw, mh := ebiten.Monitor().Size()
	p := Centered(mw, mh, o.width, o.height)
	ebiten.SetWindowPosition(p.X, p.Y)

	return &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
	}
}

// Centered returns the top-left corner that centres a w x h window on a
// monitor of the given size.
func Centered(monitorW, monitorH, w, h int) image.Point {
	return image.Pt((monitorW-w)/2, (monitorH-h)/2)
}

// Run configures the window and blocks in the ebiten loop until the window
// closes. The sheet is released on return.
func Run(o *Overlay) error {
	defer o.Close()
	return ebiten.RunGameWithOptions(o, o.Configure())
}
