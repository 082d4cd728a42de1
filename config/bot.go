package config

import "github.com/automoto/gladiator/shared/botai"

// BotConfigData holds CPU opponent configuration
type BotConfigData struct {
	Enabled    bool // right side is played by the CPU
	Difficulty botai.Difficulty
	Seed       int64 // 0 picks a seed from the clock at match start
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Enabled:    false,
		Difficulty: botai.DifficultyNormal,
	}
}
