package factory

import (
	"time"

	"github.com/automoto/gladiator/archetypes"
	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/shared/botai"
	"github.com/automoto/gladiator/shared/duel"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns the entity that mirrors one side of the match.
// When bot is true the side is driven by a botai.Brain instead of the keyboard.
func CreateFighter(ecs *ecs.ECS, side duel.Side, bot bool) *donburi.Entry {
	var fighter *donburi.Entry
	if bot {
		fighter = archetypes.Fighter.Spawn(ecs, components.Bot)
	} else {
		fighter = archetypes.Fighter.Spawn(ecs)
	}

	components.Fighter.SetValue(fighter, components.FighterData{
		Side:  side,
		Label: cfg.Fighters[side].Label,
		Human: !bot,
	})
	state := components.StateData{}
	state.Reset(duel.PoseIdle)
	components.State.SetValue(fighter, state)
	components.PlayerInput.SetValue(fighter, components.PlayerInputData{
		ControlScheme: schemeFor(side),
		InputMethod:   components.InputKeyboard,
	})
	// Permanently attached to avoid archetype thrashing
	components.Flash.SetValue(fighter, components.FlashData{
		R: 1, G: 1, B: 1,
	})
	fighter.AddComponent(components.Idle)

	if bot {
		seed := cfg.Bot.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		components.Bot.SetValue(fighter, components.BotData{
			Brain: botai.NewBrain(side, cfg.Bot.Difficulty, cfg.Duel.Tunables, seed),
		})
	}

	return fighter
}

func schemeFor(side duel.Side) cfg.ControlSchemeID {
	if side == duel.SideRight {
		return cfg.ControlSchemeB
	}
	return cfg.ControlSchemeA
}
