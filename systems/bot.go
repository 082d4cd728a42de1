package systems

import (
	"github.com/automoto/gladiator/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBots generates input for bot-controlled fighters from the last
// match snapshot. Must run AFTER UpdateFighterInput and BEFORE UpdateDuel.
func UpdateBots(e *ecs.ECS) {
	d, ok := GetDuel(e)
	if !ok || d.Phase != components.DuelFighting {
		return
	}

	snap := d.Match.Snapshot()
	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		bot := components.Bot.Get(entry)
		if bot.Brain == nil {
			return
		}
		WriteFighterActions(components.PlayerInput.Get(entry), bot.Brain.Think(snap))
	})
}
