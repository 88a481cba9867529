package config

import (
	"fmt"
	"strings"
)

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyHard:
		return "hard"
	}
	return "normal"
}

// ParseBotDifficulty maps "easy", "normal" or "hard" onto a difficulty.
func ParseBotDifficulty(s string) (BotDifficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return BotDifficultyEasy, nil
	case "normal", "":
		return BotDifficultyNormal, nil
	case "hard":
		return BotDifficultyHard, nil
	}
	return BotDifficultyNormal, fmt.Errorf("unknown bot difficulty %q", s)
}

// BotDifficultyConfig holds tuning values for the scripted arena bot
type BotDifficultyConfig struct {
	ReactionDelay int     // Ticks between decisions
	FireRange     float64 // Distance at which the bot starts shooting
	LoadTarget    int     // Magazine count the bot vacuums up to before fighting
	AimJitter     float64 // Degrees of random aim error
	StrafeChance  float64 // Chance per decision to strafe instead of advance
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay: 30, // 0.5 second reaction time
				FireRange:     8,
				LoadTarget:    2,
				AimJitter:     6,
				StrafeChance:  0.1,
			},
			BotDifficultyNormal: {
				ReactionDelay: 15,
				FireRange:     10,
				LoadTarget:    3,
				AimJitter:     3,
				StrafeChance:  0.25,
			},
			BotDifficultyHard: {
				ReactionDelay: 5, // Near-instant reaction
				FireRange:     12,
				LoadTarget:    5,
				AimJitter:     1,
				StrafeChance:  0.4,
			},
		},
	}
}
