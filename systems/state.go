package systems

import (
	"github.com/automoto/gladiator/components"
	"github.com/automoto/gladiator/shared/duel"
	"github.com/automoto/gladiator/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates mirrors each combatant's pose onto its entity as a state
// tag and advances the pose clock the renderers animate from.
// Must run AFTER UpdateDuel.
func UpdateStates(ecs *ecs.ECS) {
	d, ok := GetDuel(ecs)
	if !ok {
		return
	}
	snap := d.Match.Snapshot()

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		fighter := components.Fighter.Get(e)
		state := components.State.Get(e)
		setPose(e, state, snap.Fighter(fighter.Side).Pose)
	})
}

func setPose(e *donburi.Entry, state *components.StateData, pose duel.Pose) {
	if !state.Observe(pose) {
		return
	}

	// Remove all state tags
	removeAllStateTags(e)

	// Add the current state tag
	switch pose {
	case duel.PoseIdle:
		donburi.Add(e, components.Idle, &components.IdleState{})
	case duel.PoseMoving:
		donburi.Add(e, components.Moving, &components.MovingState{})
	case duel.PoseAttacking:
		donburi.Add(e, components.Attacking, &components.AttackingState{})
	case duel.PoseParrying:
		donburi.Add(e, components.Parrying, &components.ParryingState{})
	case duel.PoseStunned:
		donburi.Add(e, components.Stunned, &components.StunnedState{})
	case duel.PoseDead:
		donburi.Add(e, components.Dead, &components.DeadState{})
	}
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.IdleState](e, components.Idle)
	donburi.Remove[components.MovingState](e, components.Moving)
	donburi.Remove[components.AttackingState](e, components.Attacking)
	donburi.Remove[components.ParryingState](e, components.Parrying)
	donburi.Remove[components.StunnedState](e, components.Stunned)
	donburi.Remove[components.DeadState](e, components.Dead)
}
