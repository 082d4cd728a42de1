package components

import (
	cfg "github.com/automoto/gladiator/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
// Used for global/menu input where all devices are merged.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData stores per-fighter input state.
// Each fighter entity has its own PlayerInputData bound to a control scheme
// or a gamepad. Bots write CurrentInput directly.
type PlayerInputData struct {
	CurrentInput   [cfg.ActionCount]bool // Current frame's Pressed state
	PreviousInput  [cfg.ActionCount]bool // Previous frame's Pressed state
	BoundGamepadID *ebiten.GamepadID     // Bound gamepad (nil = keyboard)
	ControlScheme  cfg.ControlSchemeID   // Keyboard half (A = WASD+G/H, B = Arrows+4/5)
	InputMethod    InputMethod           // Current input method (for UI prompts)
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
