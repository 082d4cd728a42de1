package config

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionAttack
	ActionParry
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:       "none",
	ActionMoveUp:     "move up",
	ActionMoveDown:   "move down",
	ActionMoveLeft:   "move left",
	ActionMoveRight:  "move right",
	ActionAttack:     "attack",
	ActionParry:      "parry",
	ActionPause:      "pause",
	ActionMenuUp:     "menu up",
	ActionMenuDown:   "menu down",
	ActionMenuSelect: "menu select",
	ActionMenuBack:   "menu back",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds the merged bindings used by menus and pause
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// ControlSchemeID selects one half of the shared keyboard
type ControlSchemeID int

const (
	ControlSchemeA ControlSchemeID = iota // WASD + G/H
	ControlSchemeB                        // Arrows + 4/5
	ControlSchemeCount
)

func (s ControlSchemeID) String() string {
	switch s {
	case ControlSchemeA:
		return "A"
	case ControlSchemeB:
		return "B"
	}
	return fmt.Sprintf("scheme(%d)", int(s))
}

// FighterActions are the actions every control scheme must bind
var FighterActions = []ActionID{
	ActionMoveUp,
	ActionMoveDown,
	ActionMoveLeft,
	ActionMoveRight,
	ActionAttack,
	ActionParry,
}

// ControlSchemeBindings maps each scheme to its per-action keys
var ControlSchemeBindings [ControlSchemeCount]map[ActionID][]ebiten.Key

// ControlSchemeHints is the on-screen legend for each scheme
var ControlSchemeHints [ControlSchemeCount]string

// Input is the global input configuration
var Input InputConfig

func init() {
	ControlSchemeBindings = [ControlSchemeCount]map[ActionID][]ebiten.Key{
		ControlSchemeA: {
			ActionMoveUp:    {ebiten.KeyW},
			ActionMoveDown:  {ebiten.KeyS},
			ActionMoveLeft:  {ebiten.KeyA},
			ActionMoveRight: {ebiten.KeyD},
			ActionAttack:    {ebiten.KeyG},
			ActionParry:     {ebiten.KeyH},
		},
		ControlSchemeB: {
			ActionMoveUp:    {ebiten.KeyArrowUp},
			ActionMoveDown:  {ebiten.KeyArrowDown},
			ActionMoveLeft:  {ebiten.KeyArrowLeft},
			ActionMoveRight: {ebiten.KeyArrowRight},
			ActionAttack:    {ebiten.KeyDigit4, ebiten.KeyNumpad4},
			ActionParry:     {ebiten.KeyDigit5, ebiten.KeyNumpad5},
		},
	}

	ControlSchemeHints = [ControlSchemeCount]string{
		ControlSchemeA: "WASD move  G attack  H parry",
		ControlSchemeB: "Arrows move  4 attack  5 parry",
	}

	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
		},
	}
}

// ValidateControlSchemes reports a scheme that leaves a fighter action
// unbound, or a key shared between the two schemes.
func ValidateControlSchemes() error {
	owner := make(map[ebiten.Key]ControlSchemeID)
	for id, bindings := range ControlSchemeBindings {
		scheme := ControlSchemeID(id)
		for _, action := range FighterActions {
			if len(bindings[action]) == 0 {
				return fmt.Errorf("control scheme %s: no key bound to %s", scheme, action)
			}
		}
		for action, keys := range bindings {
			for _, key := range keys {
				if prev, ok := owner[key]; ok && prev != scheme {
					return fmt.Errorf("control scheme %s: key %s for %s already used by scheme %s",
						scheme, key, action, prev)
				}
				owner[key] = scheme
			}
		}
	}
	return nil
}
