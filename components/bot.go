package components

import (
	"github.com/automoto/gladiator/shared/botai"
	"github.com/yohamta/donburi"
)

// BotData marks a fighter driven by the CPU
type BotData struct {
	Brain *botai.Brain
}

var Bot = donburi.NewComponentType[BotData]()
