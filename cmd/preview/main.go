package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mascot/assets"
	"github.com/milk9111/mascot/component"
	"github.com/milk9111/mascot/prefabs"
)

const (
	margin   = 24
	minWidth = 320
)

type previewGame struct {
	sheet  *ebiten.Image
	anim   *component.Animation
	dest   component.Rect
	paused bool
	w, h   int
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.dest = g.dest.Mirror()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.anim.Reset()
	}
	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			g.anim.Advance()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			g.anim.SetFrame((g.anim.Frame() + g.anim.FrameCount - 1) % g.anim.FrameCount)
		}
		return nil
	}
	g.anim.Update()
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	// dark backdrop so keyed pixels show through
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})

	src := g.anim.Source()
	if frame, ok := g.sheet.SubImage(src).(*ebiten.Image); ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM = component.BlitGeoM(src, g.dest)
		op.GeoM.Translate(margin, margin)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(frame, op)
	}

	state := "playing"
	if g.paused {
		state = "paused"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %d/%d  %s  mirror=%v  TPS %.0f\nspace pause  arrows step  R rewind  M mirror",
		g.anim.Frame()+1, g.anim.FrameCount, state, g.dest.Mirrored(), ebiten.ActualTPS()))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

func main() {
	sheetPath := flag.String("sheet", "", "sprite sheet to preview (default: first PNG in ./assets)")
	scale := flag.Float64("scale", 0, "override the prefab scale")
	mirror := flag.Bool("mirror", true, "mirror the frame horizontally")
	flag.Parse()

	spec, err := prefabs.LoadMascotSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *scale > 0 {
		spec.Window.Scale = *scale
	}

	path := *sheetPath
	if path == "" {
		path, err = assets.FirstSheet(assets.DirName)
		if err != nil {
			log.Fatal(err)
		}
	}

	img, err := assets.LoadImage(path)
	if err != nil {
		log.Fatal(err)
	}
	anim, err := component.NewAnimation(img.Bounds().Dx(), spec.Sheet.FrameW, spec.Sheet.FrameH, spec.Sheet.FPS, ebiten.DefaultTPS)
	if err != nil {
		log.Fatal(err)
	}
	if rem := img.Bounds().Dx() % spec.Sheet.FrameW; rem != 0 {
		log.Printf("%s: %dpx past the last frame are ignored", path, rem)
	}

	w, h := spec.WindowSize()
	g := &previewGame{
		sheet: ebiten.NewImageFromImage(component.ColorKey(img, spec.Window.TransparencyKey.Color)),
		anim:  anim,
		dest:  component.DestRect(spec.Sheet.FrameW, spec.Sheet.FrameH, spec.Window.Scale, *mirror),
		w:     max(w+2*margin, minWidth),
		h:     h + 2*margin,
	}

	ebiten.SetWindowSize(g.w*2, g.h*2)
	ebiten.SetWindowTitle("Sheet Preview: " + path)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
