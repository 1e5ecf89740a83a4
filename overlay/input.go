package overlay

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer is the mouse state the overlay reads each tick. Cursor coordinates
// are relative to the window's top-left corner.
type Pointer interface {
	CursorPosition() (int, int)
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
}

// Window is the native window: its position in screen coordinates and
// whether mouse input falls through it to whatever is underneath.
type Window interface {
	Position() (int, int)
	SetPosition(x, y int)
	SetMousePassthrough(enabled bool)
}

type ebitenPointer struct{}

func (ebitenPointer) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenPointer) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (ebitenPointer) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(button)
}

type ebitenWindow struct{}

func (ebitenWindow) Position() (int, int) {
	return ebiten.WindowPosition()
}

func (ebitenWindow) SetPosition(x, y int) {
	ebiten.SetWindowPosition(x, y)
}

func (ebitenWindow) SetMousePassthrough(enabled bool) {
	ebiten.SetWindowMousePassthrough(enabled)
}
