package components

import (
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/shared/botai"
	"github.com/yohamta/donburi"
)

// SettingsData stores the player's choices from the main menu
type SettingsData struct {
	Fullscreen      bool
	ResolutionIndex int
	Opponent        cfg.OpponentMode
	Difficulty      botai.Difficulty
	Arena           string
}

var Settings = donburi.NewComponentType[SettingsData]()
