package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// faces are the three text sizes every screen uses.
// Stored as text.Face interface for ebitenui compatibility.
type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() (faces, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return faces{}, err
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return faces{}, err
	}
	return faces{
		title:  &text.GoTextFace{Source: bold, Size: 40},
		normal: &text.GoTextFace{Source: regular, Size: 18},
		small:  &text.GoTextFace{Source: regular, Size: 13},
	}, nil
}

var (
	panelColor      = color.RGBA{36, 28, 22, 255}
	backgroundColor = color.RGBA{20, 16, 12, 255}
	titleColor      = color.RGBA{255, 190, 80, 255}
	labelColor      = color.RGBA{230, 220, 200, 255}
	dimColor        = color.RGBA{150, 140, 120, 255}
)

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.RGBA{255, 255, 255, 255},
		Hover:    color.RGBA{255, 230, 180, 255},
		Pressed:  color.RGBA{200, 200, 200, 255},
		Disabled: color.RGBA{100, 100, 100, 255},
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{90, 60, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{120, 80, 50, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{70, 45, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{50, 45, 40, 255}),
	}
}

func startButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{150, 40, 30, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{190, 60, 40, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{120, 30, 20, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{60, 40, 40, 255}),
	}
}

// centeredColumn is a vertical row layout anchored to the middle of its parent
func centeredColumn(spacing int, opts ...widget.ContainerOpt) *widget.Container {
	return widget.NewContainer(append(opts,
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)...)
}

func newButton(label string, face *text.Face, img *widget.ButtonImage, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 34),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, face, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func newLabel(s string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: clr}),
	)
}
