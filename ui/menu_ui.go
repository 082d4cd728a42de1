package ui

import (
	"fmt"

	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// MenuUI is the title screen: start, opponent and difficulty, arena, exit
type MenuUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsData
	Arenas   []string

	// Callbacks
	OnStart func()
	OnExit  func()

	// Widget references for updates
	opponentButton   *widget.Button
	difficultyButton *widget.Button
	arenaButton      *widget.Button
	recordLabel      *widget.Label

	faces faces

	// Initialization tracking
	initialized bool
}

// NewMenuUI creates the main menu. arenas lists the selectable arena names.
func NewMenuUI(settings *components.SettingsData, arenas []string, onStart, onExit func()) (*MenuUI, error) {
	mui := &MenuUI{
		Settings: settings,
		Arenas:   arenas,
		OnStart:  onStart,
		OnExit:   onExit,
	}

	f, err := loadFaces()
	if err != nil {
		return nil, fmt.Errorf("menu fonts: %w", err)
	}
	mui.faces = f
	mui.buildUI()

	return mui, nil
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(backgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := centeredColumn(10)

	content.AddChild(newLabel("GLADIATOR DUEL", &mui.faces.title, titleColor))
	content.AddChild(newLabel("Spear and shield. One hit decides it.", &mui.faces.small, dimColor))

	content.AddChild(newButton("START", &mui.faces.normal, startButtonImage(), 220, func() {
		if mui.OnStart != nil {
			mui.OnStart()
		}
	}))

	mui.opponentButton = newButton("", &mui.faces.normal, buttonImage(), 220, func() {
		mui.Settings.Opponent = nextOpponent(mui.Settings.Opponent)
		mui.UpdateUI()
	})
	content.AddChild(mui.opponentButton)

	mui.difficultyButton = newButton("", &mui.faces.normal, buttonImage(), 220, func() {
		diffs := cfg.SettingsMenu.Difficulties
		mui.Settings.Difficulty = diffs[(indexOf(diffs, mui.Settings.Difficulty)+1)%len(diffs)]
		mui.UpdateUI()
	})
	content.AddChild(mui.difficultyButton)

	mui.arenaButton = newButton("", &mui.faces.normal, buttonImage(), 220, func() {
		if len(mui.Arenas) == 0 {
			return
		}
		mui.Settings.Arena = mui.Arenas[(indexOf(mui.Arenas, mui.Settings.Arena)+1)%len(mui.Arenas)]
		mui.UpdateUI()
	})
	content.AddChild(mui.arenaButton)

	content.AddChild(newButton("Exit", &mui.faces.normal, buttonImage(), 220, func() {
		if mui.OnExit != nil {
			mui.OnExit()
		}
	}))

	content.AddChild(newLabel(
		cfg.Fighters[0].Label+": "+cfg.ControlSchemeHints[cfg.ControlSchemeA],
		&mui.faces.small, labelColor))
	content.AddChild(newLabel(
		cfg.Fighters[1].Label+": "+cfg.ControlSchemeHints[cfg.ControlSchemeB],
		&mui.faces.small, labelColor))

	mui.recordLabel = newLabel("", &mui.faces.small, dimColor)
	content.AddChild(mui.recordLabel)

	rootContainer.AddChild(content)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

// UpdateUI updates all widgets to reflect the current settings
func (mui *MenuUI) UpdateUI() {
	if mui.opponentButton != nil {
		if textWidget := mui.opponentButton.Text(); textWidget != nil {
			textWidget.Label = "Opponent: " + mui.Settings.Opponent.String()
		}
	}

	isCPU := mui.Settings.Opponent == cfg.OpponentCPU
	if mui.difficultyButton != nil {
		if textWidget := mui.difficultyButton.Text(); textWidget != nil {
			textWidget.Label = "Difficulty: " + mui.Settings.Difficulty.String()
		}
		mui.difficultyButton.GetWidget().Disabled = !isCPU
	}

	if mui.arenaButton != nil {
		if textWidget := mui.arenaButton.Text(); textWidget != nil {
			textWidget.Label = "Arena: " + mui.Settings.Arena
		}
		mui.arenaButton.GetWidget().Disabled = len(mui.Arenas) < 2
	}

	if mui.recordLabel != nil {
		mui.recordLabel.Label = ""
		if isCPU {
			record := systems.LoadRecord()
			key := mui.Settings.Difficulty.String()
			mui.recordLabel.Label = fmt.Sprintf("Record vs %s CPU: %d - %d", key, record.Wins[key], record.Losses[key])
		}
	}
}

// Update calls the UI's Update method
func (mui *MenuUI) Update() {
	mui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !mui.initialized {
		mui.initialized = true
		mui.UpdateUI()
	}
}

func nextOpponent(m cfg.OpponentMode) cfg.OpponentMode {
	opts := cfg.SettingsMenu.Opponents
	return opts[(indexOf(opts, m)+1)%len(opts)]
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}
