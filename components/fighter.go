package components

import (
	"github.com/automoto/gladiator/shared/duel"
	"github.com/yohamta/donburi"
)

// FighterData links an entity to one side of the match
type FighterData struct {
	Side  duel.Side
	Label string
	Human bool
}

var Fighter = donburi.NewComponentType[FighterData]()
