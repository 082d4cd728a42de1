// Package botai is the CPU opponent. A Brain reads match snapshots and
// produces the same logical Input a human player would.
package botai

import (
	"fmt"
	"strings"
)

// Difficulty affects reaction time and decision quality.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	}
	return "normal"
}

// ParseDifficulty accepts the names printed by Difficulty.String.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "normal", "":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyNormal, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

// Profile holds the tuning values for one difficulty.
type Profile struct {
	ReactionDelay  int     // ticks between re-evaluations of the plan
	ParryChance    float64 // probability of raising the shield against a given thrust
	AttackCooldown int     // ticks to wait after pressing attack
	AimSlack       float64 // vertical misalignment tolerated before thrusting
	Patience       float64 // probability of holding back for a tick when in range
}

// Profiles maps each difficulty to its tuning.
var Profiles = map[Difficulty]Profile{
	DifficultyEasy: {
		ReactionDelay:  30, // 0.5 second
		ParryChance:    0.2,
		AttackCooldown: 45,
		AimSlack:       26,
		Patience:       0.6,
	},
	DifficultyNormal: {
		ReactionDelay:  15,
		ParryChance:    0.5,
		AttackCooldown: 30,
		AimSlack:       18,
		Patience:       0.3,
	},
	DifficultyHard: {
		ReactionDelay:  5,
		ParryChance:    0.9,
		AttackCooldown: 18,
		AimSlack:       10,
		Patience:       0,
	},
}
