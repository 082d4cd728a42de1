package systems

import (
	"log"

	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/shared/duel"
	"github.com/automoto/gladiator/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Match events, published by UpdateDuel after each tick and dispatched
// at the end of the same frame.
var (
	ParryEvent    = events.NewEventType[duel.Event]()
	HitEvent      = events.NewEventType[duel.Event]()
	MatchWonEvent = events.NewEventType[duel.Event]()
)

// RegisterDuelEvents subscribes the shell's reactions to match events.
// Call once per world.
func RegisterDuelEvents(w donburi.World) {
	ParryEvent.Subscribe(w, onParry)
	HitEvent.Subscribe(w, onHit)
	MatchWonEvent.Subscribe(w, onMatchWon)
}

func publishDuelEvents(w donburi.World, evs []duel.Event) {
	for _, ev := range evs {
		switch ev.Kind {
		case duel.EventParry:
			ParryEvent.Publish(w, ev)
		case duel.EventHit:
			HitEvent.Publish(w, ev)
		case duel.EventMatchWon:
			MatchWonEvent.Publish(w, ev)
		}
	}
}

func onParry(w donburi.World, ev duel.Event) {
	if cfg.Debug.LogCollisions {
		log.Printf("tick %d: %s parried %s", ev.Tick, ev.Defender, ev.Attacker)
	}
	if entry, ok := fighterEntry(w, ev.Attacker); ok {
		TriggerFlash(entry, cfg.Effects.ParryFlashFrames, 0.6, 0.8, 1)
	}
	triggerScreenShake(w, cfg.Effects.ParryShake, cfg.Effects.ParryShakeFrames)
}

func onHit(w donburi.World, ev duel.Event) {
	if cfg.Debug.LogCollisions {
		log.Printf("tick %d: %s speared %s", ev.Tick, ev.Attacker, ev.Defender)
	}
	if entry, ok := fighterEntry(w, ev.Defender); ok {
		TriggerFlash(entry, cfg.Effects.HitFlashFrames, 1, 0.3, 0.3)
	}
	triggerScreenShake(w, cfg.Effects.HitShake, cfg.Effects.HitShakeFrames)
}

func onMatchWon(w donburi.World, ev duel.Event) {
	if cfg.Debug.LogCollisions {
		log.Printf("tick %d: %s wins", ev.Tick, ev.Winner)
	}

	entry, ok := components.Duel.First(w)
	if !ok {
		return
	}
	d := components.Duel.Get(entry)
	d.Phase = components.DuelFinished
	d.Timer = 0
	d.Wins[ev.Winner]++

	label := cfg.Fighters[ev.Winner].Label
	if f, ok := fighterEntry(w, ev.Winner); ok {
		label = components.Fighter.Get(f).Label
	}
	showBanner(w, label+" wins!", 0)

	recordBotResult(w, ev.Winner)
}

func fighterEntry(w donburi.World, side duel.Side) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Fighter.Each(w, func(entry *donburi.Entry) {
		if components.Fighter.Get(entry).Side == side {
			found = entry
		}
	})
	return found, found != nil
}
