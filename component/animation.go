package component

import (
	"errors"
	"fmt"
	"image"
	"math"
)

var ErrNoFrames = errors.New("component: sprite sheet is narrower than one frame")

// Animation steps through a single row of frames laid out left-to-right at
// y=0. Frame count is the sheet width divided by the frame width; leftover
// pixels on the right are ignored.
type Animation struct {
	FrameW     int
	FrameH     int
	FrameCount int

	current     int
	tick        int
	ticksPerFrm int
}

// NewAnimation creates an Animation for a sheet `sheetW` pixels wide. `tps` is
// the rate Update is called at; the frame advances every round(tps/fps) calls.
func NewAnimation(sheetW, frameW, frameH int, fps float64, tps int) (*Animation, error) {
	if frameW <= 0 || frameH <= 0 {
		return nil, fmt.Errorf("component: invalid frame size %dx%d", frameW, frameH)
	}
	count := sheetW / frameW
	if count <= 0 {
		return nil, fmt.Errorf("%w (%dpx sheet, %dpx frame)", ErrNoFrames, sheetW, frameW)
	}
	return &Animation{
		FrameW:      frameW,
		FrameH:      frameH,
		FrameCount:  count,
		ticksPerFrm: TicksPerFrame(fps, tps),
	}, nil
}

// TicksPerFrame converts a frame rate into a number of loop ticks, never less
// than one.
func TicksPerFrame(fps float64, tps int) int {
	if fps <= 0 || tps <= 0 {
		return 1
	}
	return int(math.Max(1, math.Round(float64(tps)/fps)))
}

// Update counts one loop tick and advances the frame when enough ticks have
// elapsed. It reports whether the frame changed.
func (a *Animation) Update() bool {
	if a == nil || a.FrameCount == 0 {
		return false
	}
	a.tick++
	if a.tick < a.ticksPerFrm {
		return false
	}
	a.tick = 0
	a.Advance()
	return true
}

// Advance moves to the next frame, wrapping to the first.
func (a *Animation) Advance() {
	if a == nil || a.FrameCount == 0 {
		return
	}
	a.current = (a.current + 1) % a.FrameCount
}

// Reset sets the animation back to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.current = 0
	a.tick = 0
}

// SetFrame jumps to a specific frame index.
func (a *Animation) SetFrame(i int) {
	if a == nil || a.FrameCount == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= a.FrameCount {
		i = a.FrameCount - 1
	}
	a.current = i
	a.tick = 0
}

func (a *Animation) Frame() int {
	if a == nil {
		return 0
	}
	return a.current
}

func (a *Animation) TicksPerFrame() int {
	if a == nil {
		return 0
	}
	return a.ticksPerFrm
}

// Source returns the sheet rectangle of the current frame.
func (a *Animation) Source() image.Rectangle {
	if a == nil {
		return image.Rectangle{}
	}
	x := a.current * a.FrameW
	return image.Rect(x, 0, x+a.FrameW, a.FrameH)
}
