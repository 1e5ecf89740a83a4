//go:build !dialog
// +build !dialog

package alert

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	windowWidth  = 360
	windowHeight = 160
)

type alertWindow struct {
	ui     *ebitenui.UI
	closed bool
}

// Show opens a small modal window with msg and an OK button and blocks until
// it is dismissed.
func Show(title, msg string) error {
	a, err := newAlertWindow(msg)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowFloating(true)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("alert: run: %w", err)
	}
	return nil
}

func newAlertWindow(msg string) (*alertWindow, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("alert: load font: %w", err)
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}

	a := &alertWindow{ui: &ebitenui.UI{}}
	a.ui.PrimaryTheme = newAlertTheme(&fontFace)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{220, 220, 220, 255})),
	)

	body := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(16),
			),
		),
	)

	label := widget.NewLabel(
		widget.LabelOpts.Text(wrapText(msg, wrapWidth), &fontFace, &widget.LabelColor{Idle: color.Black, Disabled: color.Gray{Y: 140}}),
	)
	ok := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(96, 28),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.Image(a.ui.PrimaryTheme.ButtonTheme.Image),
		widget.ButtonOpts.Text("OK", &fontFace, a.ui.PrimaryTheme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.closed = true
		}),
	)

	body.AddChild(label)
	body.AddChild(ok)
	root.AddChild(body)
	a.ui.Container = root
	return a, nil
}

func newAlertTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: image.NewNineSliceColor(color.RGBA{220, 220, 220, 255}),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    image.NewNineSliceColor(color.RGBA{180, 180, 180, 255}),
				Hover:   image.NewNineSliceColor(color.RGBA{200, 200, 200, 255}),
				Pressed: image.NewNineSliceColor(color.RGBA{160, 160, 160, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.Black,
			},
		},
	}
}

func (a *alertWindow) Update() error {
	a.ui.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.closed = true
	}
	if a.closed {
		return ebiten.Termination
	}
	return nil
}

func (a *alertWindow) Draw(screen *ebiten.Image) {
	a.ui.Draw(screen)
}

func (a *alertWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
