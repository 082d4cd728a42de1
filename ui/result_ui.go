package ui

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// ResultUI is the overlay shown once a duel has a winner
type ResultUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnRestart func()
	OnMenu    func()

	winnerLabel *widget.Label
	tallyLabel  *widget.Label

	faces faces
}

// NewResultUI creates the result overlay
func NewResultUI(onRestart, onMenu func()) (*ResultUI, error) {
	rui := &ResultUI{
		OnRestart: onRestart,
		OnMenu:    onMenu,
	}

	f, err := loadFaces()
	if err != nil {
		return nil, fmt.Errorf("result fonts: %w", err)
	}
	rui.faces = f
	rui.buildUI()

	return rui, nil
}

func (rui *ResultUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 150})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := centeredColumn(12, widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelColor)))

	rui.winnerLabel = newLabel("", &rui.faces.title, titleColor)
	panel.AddChild(rui.winnerLabel)

	rui.tallyLabel = newLabel("", &rui.faces.normal, labelColor)
	panel.AddChild(rui.tallyLabel)

	panel.AddChild(newButton("Restart", &rui.faces.normal, startButtonImage(), 200, func() {
		if rui.OnRestart != nil {
			rui.OnRestart()
		}
	}))
	panel.AddChild(newButton("Menu", &rui.faces.normal, buttonImage(), 200, func() {
		if rui.OnMenu != nil {
			rui.OnMenu()
		}
	}))

	rootContainer.AddChild(panel)

	rui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetResult shows the winner's name and the running round tally
func (rui *ResultUI) SetResult(winner string, leftLabel string, leftWins int, rightLabel string, rightWins int) {
	rui.winnerLabel.Label = winner + " wins!"
	rui.tallyLabel.Label = fmt.Sprintf("%s %d - %d %s", leftLabel, leftWins, rightWins, rightLabel)
}

// Update calls the UI's Update method
func (rui *ResultUI) Update() {
	rui.UI.Update()
}
