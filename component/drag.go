package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

type DragState int

const (
	DragIdle DragState = iota
	Dragging
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "invalid-drag-state"
}

// Drag tracks a left-button window drag. The grab offset is the
// window-relative point where the button went down; the window follows the
// pointer so that point stays under it.
type Drag struct {
	state  DragState
	offset image.Point
	moved  bool
}

// Press starts a drag for a left-button press at the window-relative point.
func (d *Drag) Press(button ebiten.MouseButton, at image.Point) bool {
	if button != ebiten.MouseButtonLeft || d.state == Dragging {
		return false
	}
	d.state = Dragging
	d.offset = at
	d.moved = false
	return true
}

// Move returns the new window position for a pointer at the window-relative
// point. ok is false when the window should stay put.
func (d *Drag) Move(window, pointer image.Point) (pos image.Point, ok bool) {
	if d.state != Dragging {
		return window, false
	}
	delta := pointer.Sub(d.offset)
	if delta == (image.Point{}) {
		return window, false
	}
	d.moved = true
	return window.Add(delta), true
}

// Release ends any drag. It reports a click when the drag never moved the
// window.
func (d *Drag) Release() (click bool) {
	click = d.state == Dragging && !d.moved
	d.state = DragIdle
	d.moved = false
	return click
}

func (d *Drag) State() DragState { return d.state }
