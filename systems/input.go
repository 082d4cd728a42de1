package systems

import (
	"strings"

	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/shared/control"
	"github.com/automoto/gladiator/shared/duel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Gamepad layout for a fighter bound to a controller
var fighterGamepadButtons = map[cfg.ActionID][]ebiten.StandardGamepadButton{
	cfg.ActionMoveUp:    {ebiten.StandardGamepadButtonLeftTop},
	cfg.ActionMoveDown:  {ebiten.StandardGamepadButtonLeftBottom},
	cfg.ActionMoveLeft:  {ebiten.StandardGamepadButtonLeftLeft},
	cfg.ActionMoveRight: {ebiten.StandardGamepadButtonLeftRight},
	// X / Square
	cfg.ActionAttack: {ebiten.StandardGamepadButtonRightLeft},
	// A / Cross, or the right trigger
	cfg.ActionParry: {ebiten.StandardGamepadButtonRightBottom, ebiten.StandardGamepadButtonFrontBottomRight},
}

// Connected gamepads, refilled every frame without reallocating
var gamepadIDs []ebiten.GamepadID

// Controller families by name, detected once per gamepad
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

var playStationNames = []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"}

// UpdateInput polls the merged menu and pause bindings from every device
// into the Input singleton. Runs first in every scene.
func UpdateInput(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	method, used := input.LastInputMethod, false
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				if !used {
					method = components.InputKeyboard
				}
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					method, used = getControllerType(gpID), true
				}
			}
		}
	}

	// The stick only scrolls menus vertically
	for _, gpID := range gamepadIDs {
		_, _, up, down := stickDirections(gpID)
		if up {
			input.Current[cfg.ActionMenuUp] = true
		}
		if down {
			input.Current[cfg.ActionMenuDown] = true
		}
		if up || down {
			method, used = getControllerType(gpID), true
		}
	}

	// A gamepad wins over the keyboard when both were touched
	input.LastInputMethod = method
}

func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}
	method := components.InputXbox
	name := strings.ToLower(ebiten.GamepadName(gpID))
	for _, n := range playStationNames {
		if strings.Contains(name, n) {
			method = components.InputPlayStation
			break
		}
	}
	controllerTypeCache[gpID] = method
	return method
}

// stickDirections reads one gamepad's left stick past the deadzone.
func stickDirections(gpID ebiten.GamepadID) (left, right, up, down bool) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}
	dz := cfg.Input.AnalogDeadzone
	h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
	return h < -dz, h > dz, v < -dz, v > dz
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdateFighterInput polls input for every human fighter.
// Must run AFTER UpdateInput (which handles global/menu input) and
// BEFORE UpdateBots, which writes bot fighters' actions itself.
func UpdateFighterInput(e *ecs.ECS) {
	var humans []*components.PlayerInputData
	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Bot) {
			return
		}
		humans = append(humans, components.PlayerInput.Get(entry))
	})

	bindNewGamepads(humans, gamepadIDs)
	for _, input := range humans {
		updatePlayerInputData(input)
	}
}

// bindNewGamepads hands a gamepad to the first keyboard fighter once any
// face button is pressed on it. A gamepad whose layout disappears is
// released back to the keyboard.
func bindNewGamepads(humans []*components.PlayerInputData, gamepads []ebiten.GamepadID) {
	bound := make(map[ebiten.GamepadID]bool, len(humans))
	for _, input := range humans {
		if input.BoundGamepadID == nil {
			continue
		}
		if !ebiten.IsStandardGamepadLayoutAvailable(*input.BoundGamepadID) {
			input.BoundGamepadID = nil
			input.InputMethod = components.InputKeyboard
			continue
		}
		bound[*input.BoundGamepadID] = true
	}

	for _, gpID := range gamepads {
		if bound[gpID] || !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		if !ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonRightBottom) &&
			!ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonRightLeft) {
			continue
		}
		for _, input := range humans {
			if input.BoundGamepadID == nil {
				id := gpID
				input.BoundGamepadID = &id
				input.InputMethod = getControllerType(gpID)
				bound[gpID] = true
				break
			}
		}
	}
}

// updatePlayerInputData polls one human fighter from its gamepad when one
// is bound, otherwise from its half of the keyboard.
func updatePlayerInputData(input *components.PlayerInputData) {
	input.PreviousInput = input.CurrentInput
	input.CurrentInput = [cfg.ActionCount]bool{}

	switch {
	case input.BoundGamepadID != nil:
		pollGamepadForPlayer(input, *input.BoundGamepadID)
	case input.ControlScheme >= 0 && input.ControlScheme < cfg.ControlSchemeCount:
		pollControlSchemeForPlayer(input, input.ControlScheme)
	}
}

func pollGamepadForPlayer(input *components.PlayerInputData, gpID ebiten.GamepadID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}
	for actionID, buttons := range fighterGamepadButtons {
		for _, btn := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				input.CurrentInput[actionID] = true
			}
		}
	}

	left, right, up, down := stickDirections(gpID)
	input.CurrentInput[cfg.ActionMoveLeft] = input.CurrentInput[cfg.ActionMoveLeft] || left
	input.CurrentInput[cfg.ActionMoveRight] = input.CurrentInput[cfg.ActionMoveRight] || right
	input.CurrentInput[cfg.ActionMoveUp] = input.CurrentInput[cfg.ActionMoveUp] || up
	input.CurrentInput[cfg.ActionMoveDown] = input.CurrentInput[cfg.ActionMoveDown] || down
	input.InputMethod = getControllerType(gpID)
}

// pollControlSchemeForPlayer reads input from a control scheme into PlayerInputData.
func pollControlSchemeForPlayer(input *components.PlayerInputData, scheme cfg.ControlSchemeID) {
	schemeBindings := cfg.ControlSchemeBindings[scheme]
	keyPressed := false

	for actionID, keys := range schemeBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.CurrentInput[actionID] = true
				keyPressed = true
			}
		}
	}

	if keyPressed {
		input.InputMethod = components.InputKeyboard
	}
}

// FighterInput converts a fighter's action state into the per-tick input
// the match consumes.
func FighterInput(input *components.PlayerInputData) duel.Input {
	return control.ToInput(heldActions(input.PreviousInput), heldActions(input.CurrentInput))
}

// WriteFighterActions stores a logical input as held actions, the inverse of
// FighterInput. Bots use it so their output goes through the same path as a
// human's keyboard.
func WriteFighterActions(input *components.PlayerInputData, in duel.Input) {
	held := control.FromInput(in)
	input.PreviousInput = input.CurrentInput
	input.CurrentInput = [cfg.ActionCount]bool{}
	input.CurrentInput[cfg.ActionMoveUp] = held.Up
	input.CurrentInput[cfg.ActionMoveDown] = held.Down
	input.CurrentInput[cfg.ActionMoveLeft] = held.Left
	input.CurrentInput[cfg.ActionMoveRight] = held.Right
	input.CurrentInput[cfg.ActionAttack] = held.Attack
	input.CurrentInput[cfg.ActionParry] = held.Parry
}

func heldActions(actions [cfg.ActionCount]bool) control.Held {
	return control.Held{
		Up:     actions[cfg.ActionMoveUp],
		Down:   actions[cfg.ActionMoveDown],
		Left:   actions[cfg.ActionMoveLeft],
		Right:  actions[cfg.ActionMoveRight],
		Attack: actions[cfg.ActionAttack],
		Parry:  actions[cfg.ActionParry],
	}
}
