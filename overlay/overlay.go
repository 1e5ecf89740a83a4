package overlay

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mascot/assets"
	"github.com/milk9111/mascot/component"
	"github.com/milk9111/mascot/prefabs"
)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Overlay is the mascot window: one sprite sheet, one looping animation and
// a left-button drag. ebiten calls Update and Draw from a single goroutine, so
// none of the state below is locked.
type Overlay struct {
	spec  prefabs.MascotSpec
	sheet *ebiten.Image
	anim  *component.Animation
	drag  component.Drag
	dest  component.Rect

	// mask is the keyed sheet kept on the CPU for hit testing.
	mask *image.NRGBA

	width       int
	height      int
	passthrough bool

	pointer Pointer
	window  Window
}

// New loads the sheet at path and builds the overlay for it.
func New(spec prefabs.MascotSpec, path string) (*Overlay, error) {
	img, err := assets.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewFromImage(spec, img)
}

// NewFromImage builds the overlay around an already decoded sheet. Sheets
// narrower than one frame are rejected here rather than on the first tick.
func NewFromImage(spec prefabs.MascotSpec, img image.Image) (*Overlay, error) {
	anim, err := component.NewAnimation(img.Bounds().Dx(), spec.Sheet.FrameW, spec.Sheet.FrameH, spec.Sheet.FPS, ebiten.DefaultTPS)
	if err != nil {
		return nil, err
	}
	o := newOverlay(spec, anim, ebitenPointer{}, ebitenWindow{})
	o.mask = component.ColorKey(img, spec.Window.TransparencyKey.Color)
	o.sheet = ebiten.NewImageFromImage(o.mask)
	return o, nil
}

func newOverlay(spec prefabs.MascotSpec, anim *component.Animation, pointer Pointer, window Window) *Overlay {
	w, h := spec.WindowSize()
	return &Overlay{
		spec:    spec,
		anim:    anim,
		dest:    component.DestRect(spec.Sheet.FrameW, spec.Sheet.FrameH, spec.Window.Scale, spec.Window.Mirror),
		width:   w,
		height:  h,
		pointer: pointer,
		window:  window,
	}
}

func (o *Overlay) Update() error {
	o.handlePointer()
	o.onTick()
	return nil
}

func (o *Overlay) handlePointer() {
	x, y := o.pointer.CursorPosition()
	cursor := image.Pt(x, y)

	for _, b := range mouseButtons {
		if o.pointer.IsMouseButtonJustPressed(b) {
			o.onMouseDown(b, cursor)
		}
	}
	o.onMouseMove(cursor)
	for _, b := range mouseButtons {
		if o.pointer.IsMouseButtonJustReleased(b) {
			o.onMouseUp(b, cursor)
		}
	}
	o.updatePassthrough(cursor)
}

// updatePassthrough lets clicks on keyed or empty pixels fall through to the
// window underneath. It stays off while a drag is in progress.
func (o *Overlay) updatePassthrough(cursor image.Point) {
	through := o.drag.State() != component.Dragging && !o.hit(cursor)
	if through == o.passthrough {
		return
	}
	o.passthrough = through
	o.window.SetMousePassthrough(through)
}

// hit reports whether the cursor is over a visible pixel of the current frame.
// Without a mask the whole window counts.
func (o *Overlay) hit(at image.Point) bool {
	if o.mask == nil {
		return true
	}
	return component.Opaque(o.mask, o.anim.Source(), o.dest, at)
}

func (o *Overlay) onTick() {
	o.anim.Update()
}

func (o *Overlay) onMouseDown(button ebiten.MouseButton, at image.Point) {
	if !o.hit(at) {
		return
	}
	o.drag.Press(button, at)
}

func (o *Overlay) onMouseMove(at image.Point) {
	wx, wy := o.window.Position()
	pos, ok := o.drag.Move(image.Pt(wx, wy), at)
	if !ok {
		return
	}
	o.window.SetPosition(pos.X, pos.Y)
}

func (o *Overlay) onMouseUp(button ebiten.MouseButton, at image.Point) {
	if o.drag.Release() && button == ebiten.MouseButtonLeft {
		o.onClick(at)
	}
}

func (o *Overlay) onClick(at image.Point) {
	log.Printf("mouse clicked at: x=%d, y=%d", at.X, at.Y)
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.sheet == nil {
		return
	}
	src := o.anim.Source()
	frame, ok := o.sheet.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = component.BlitGeoM(src, o.dest)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(frame, op)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return o.width, o.height
}

// Close releases the sprite sheet.
func (o *Overlay) Close() {
	if o == nil || o.sheet == nil {
		return
	}
	o.sheet.Deallocate()
	o.sheet = nil
	o.mask = nil
}
