package factory

import (
	"fmt"

	"github.com/automoto/gladiator/archetypes"
	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/shared/duel"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDuel builds the match from the configured tunables and arena
// and stores it in the duel singleton, starting in the countdown phase.
func CreateDuel(ecs *ecs.ECS) (*donburi.Entry, error) {
	match, err := duel.NewMatch(cfg.Duel.Arena, cfg.Duel.Tunables)
	if err != nil {
		return nil, fmt.Errorf("create duel: %w", err)
	}

	entry := archetypes.Duel.Spawn(ecs)
	components.Duel.SetValue(entry, components.DuelData{
		Match:          match,
		Phase:          components.DuelCountdown,
		Timer:          cfg.Match.CountdownDuration,
		CountdownValue: 3,
		Rounds:         1,
	})
	return entry, nil
}

// CreateEffects spawns the singleton holding screen shake and the banner.
func CreateEffects(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Effects.Spawn(ecs)
	components.ScreenShake.SetValue(entry, components.ScreenShakeData{})
	components.Banner.SetValue(entry, components.BannerData{})
	return entry
}
