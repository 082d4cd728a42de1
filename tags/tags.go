package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Duel    = donburi.NewTag().SetName("Duel")
	Effects = donburi.NewTag().SetName("Effects")
)
