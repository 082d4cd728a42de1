package components

import (
	"github.com/automoto/gladiator/shared/duel"
	"github.com/yohamta/donburi"
)

// DuelPhase is the shell's flow around a match
type DuelPhase int

const (
	DuelCountdown DuelPhase = iota // 3-2-1-GO, match not ticking
	DuelFighting                   // Match.Tick every frame
	DuelFinished                   // winner decided, waiting for restart
)

func (p DuelPhase) String() string {
	switch p {
	case DuelCountdown:
		return "countdown"
	case DuelFighting:
		return "fighting"
	}
	return "finished"
}

// DuelData stores the running match and the flow around it.
// This is a singleton component - only one duel exists at a time.
type DuelData struct {
	Match          *duel.Match
	Phase          DuelPhase
	Timer          int // frames remaining in countdown, or frames since the win
	CountdownValue int // Current countdown number (3, 2, 1, 0 = GO)
	Wins           [2]int // rounds won this session
	Rounds         int
}

var Duel = donburi.NewComponentType[DuelData]()
