package config

import "github.com/automoto/gladiator/shared/botai"

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// OpponentMode is who controls the right-hand gladiator
type OpponentMode int

const (
	OpponentHuman OpponentMode = iota
	OpponentCPU
)

func (m OpponentMode) String() string {
	if m == OpponentCPU {
		return "CPU"
	}
	return "Human"
}

// SettingsMenuConfig contains menu option lists
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	Opponents              []OpponentMode
	Difficulties           []botai.Difficulty
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 900, Height: 500, Label: "900 x 500"},
			{Width: 1350, Height: 750, Label: "1350 x 750"},
			{Width: 1800, Height: 1000, Label: "1800 x 1000"},
		},
		DefaultResolutionIndex: 0,
		Opponents:              []OpponentMode{OpponentHuman, OpponentCPU},
		Difficulties: []botai.Difficulty{
			botai.DifficultyEasy,
			botai.DifficultyNormal,
			botai.DifficultyHard,
		},
	}
}
