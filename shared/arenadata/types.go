// Package arenadata parses TMX arena files into the floor size and spawn
// points of a duel. It has no dependencies on ebitengine or donburi.
package arenadata

import (
	"github.com/automoto/gladiator/shared/duel"
	"github.com/automoto/gladiator/shared/gamemath"
)

// SpawnGroup is the Tiled object group holding the two spawn points.
const SpawnGroup = "PlayerSpawn"

// Arena holds everything the duel needs from a TMX arena file.
type Arena struct {
	Name   string // file stem
	Width  int
	Height int
	Spawns [2]SpawnPoint // indexed by duel.Side
}

// SpawnPoint is one side's starting position.
type SpawnPoint struct {
	X, Y float64
	Side duel.Side
}

// ToDuel converts the parsed arena into the simulation's arena.
func (a *Arena) ToDuel() duel.Arena {
	out := duel.Arena{Width: float64(a.Width), Height: float64(a.Height)}
	for _, sp := range a.Spawns {
		out.Spawns[sp.Side] = gamemath.V(sp.X, sp.Y)
	}
	return out
}
