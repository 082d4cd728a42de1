package systems

import (
	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/shared/duel"
	"github.com/automoto/gladiator/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// UpdateDuel drives the countdown, ticks the match once per frame while
// fighting and publishes the match events it returns.
func UpdateDuel(e *ecs.ECS) {
	d, ok := GetDuel(e)
	if !ok {
		return
	}

	switch d.Phase {
	case components.DuelCountdown:
		updateCountdown(e, d)

	case components.DuelFighting:
		evs := d.Match.Tick(gatherInputs(e))
		publishDuelEvents(e.World, evs)

	case components.DuelFinished:
		// Counts up so the result overlay can wait out the killing blow
		d.Timer++
	}

	events.ProcessAllEvents(e.World)
}

func updateCountdown(e *ecs.ECS, d *components.DuelData) {
	if d.Timer > 0 {
		d.Timer--

		// Calculate countdown value (3, 2, 1, 0=GO)
		framesPerCount := cfg.Match.CountdownDuration / 4
		if framesPerCount < 1 {
			framesPerCount = 1
		}
		d.CountdownValue = d.Timer / framesPerCount
		if d.CountdownValue > 3 {
			d.CountdownValue = 3
		}
		return
	}

	d.Phase = components.DuelFighting
	d.CountdownValue = -1
	ShowBanner(e, "FIGHT!", cfg.C.TPS)
}

// gatherInputs reads each fighter's actions into the per-side input array
func gatherInputs(e *ecs.ECS) [2]duel.Input {
	var inputs [2]duel.Input
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		inputs[fighter.Side] = FighterInput(components.PlayerInput.Get(entry))
	})
	return inputs
}

// RestartDuel rebuilds both combatants from their spawns and runs the
// countdown again. Round wins are kept.
func RestartDuel(e *ecs.ECS) {
	d, ok := GetDuel(e)
	if !ok {
		return
	}
	d.Match.Restart()
	d.Phase = components.DuelCountdown
	d.Timer = cfg.Match.CountdownDuration
	d.CountdownValue = 3
	d.Rounds++

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		input.CurrentInput = [cfg.ActionCount]bool{}
		input.PreviousInput = [cfg.ActionCount]bool{}
		components.Flash.Get(entry).Duration = 0
		if entry.HasComponent(components.Bot) {
			components.Bot.Get(entry).Brain.Reset()
		}
	})
	clearEffects(e)
	UpdateStates(e)
}

// GetDuel returns the duel singleton
func GetDuel(e *ecs.ECS) (*components.DuelData, bool) {
	entry, ok := components.Duel.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Duel.Get(entry), true
}

// IsDuelFighting returns true while the match is ticking
func IsDuelFighting(e *ecs.ECS) bool {
	d, ok := GetDuel(e)
	return ok && d.Phase == components.DuelFighting
}

// IsDuelFinished returns true once the winner has been shown long enough
// for the result overlay to appear.
func IsDuelFinished(e *ecs.ECS) bool {
	d, ok := GetDuel(e)
	if !ok {
		return false
	}
	return d.Phase == components.DuelFinished && d.Timer >= cfg.Match.ResultsDelay
}
