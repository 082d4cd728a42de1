package config

import (
	"image/color"

	"github.com/automoto/gladiator/shared/duel"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // ticks per second; the simulation is tick counted
	Title  string
}

// DuelConfig selects the simulation parameters for the next match
type DuelConfig struct {
	Tunables   duel.Tunables
	Arena      duel.Arena
	ArenaName  string // stem of a .tmx under assets/arenas
	TuningPath string // optional YAML override file
}

// MatchConfig contains the shell's match flow timings
type MatchConfig struct {
	CountdownDuration int // frames of 3-2-1-GO before the first tick
	ResultsDelay      int // frames between the killing blow and the result overlay
	BannerDuration    float32
}

// FighterStyle is how one side is drawn
type FighterStyle struct {
	Label  string
	Body   color.RGBA
	Shield color.RGBA
	Spear  color.RGBA
	Head   color.RGBA
}

// ArenaStyle is the floor and wall colors
type ArenaStyle struct {
	Floor      color.RGBA
	FloorLines color.RGBA
	Wall       color.RGBA
	WallWidth  float32
}

// EffectsConfig contains hit/parry feedback
type EffectsConfig struct {
	HitFlashFrames   int
	ParryFlashFrames int
	HitShake         float64 // pixels
	HitShakeFrames   int
	ParryShake       float64
	ParryShakeFrames int
	DeathFallFrames  int // ticks for a killed fighter to topple
	StunBlinkPeriod  int // ticks per dim/bright half of the stun blink
	WalkBob          float64
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDMargin      float64
	HUDTextColor   color.RGBA
	HUDShadowColor color.RGBA
	BannerColor    color.RGBA
	BannerBgColor  color.RGBA

	// Debug colors
	DebugHurtColor   color.RGBA
	DebugTipColor    color.RGBA
	DebugShieldColor color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool // Skip menu and go directly to the duel
	Overlay       bool // Draw spear tips, shield ellipses and broadphase regions
	LogCollisions bool // Log parries, hits and wins
}

// Global configuration instances
var C *Config
var Duel DuelConfig
var Match MatchConfig
var Fighters [2]FighterStyle
var Arena ArenaStyle
var Effects EffectsConfig
var UI UIConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  900,
		Height: 500,
		TPS:    60,
		Title:  "Gladiator Duel",
	}

	Duel = DuelConfig{
		Tunables:  duel.DefaultTunables(),
		Arena:     duel.DefaultArena(),
		ArenaName: "colosseum",
	}

	Match = MatchConfig{
		CountdownDuration: 180, // 3 seconds
		ResultsDelay:      45,
		BannerDuration:    0.6, // seconds
	}

	Fighters = [2]FighterStyle{
		duel.SideLeft: {
			Label:  "Red",
			Body:   color.RGBA{R: 200, G: 60, B: 50, A: 255},
			Shield: color.RGBA{R: 170, G: 120, B: 40, A: 255},
			Spear:  color.RGBA{R: 220, G: 220, B: 210, A: 255},
			Head:   color.RGBA{R: 240, G: 200, B: 170, A: 255},
		},
		duel.SideRight: {
			Label:  "Blue",
			Body:   color.RGBA{R: 50, G: 90, B: 200, A: 255},
			Shield: color.RGBA{R: 150, G: 150, B: 160, A: 255},
			Spear:  color.RGBA{R: 220, G: 220, B: 210, A: 255},
			Head:   color.RGBA{R: 240, G: 200, B: 170, A: 255},
		},
	}

	Arena = ArenaStyle{
		Floor:      color.RGBA{R: 194, G: 168, B: 120, A: 255}, // sand
		FloorLines: color.RGBA{R: 176, G: 150, B: 104, A: 255},
		Wall:       color.RGBA{R: 90, G: 70, B: 50, A: 255},
		WallWidth:  6,
	}

	Effects = EffectsConfig{
		HitFlashFrames:   12,
		ParryFlashFrames: 8,
		HitShake:         6,
		HitShakeFrames:   14,
		ParryShake:       3,
		ParryShakeFrames: 8,
		DeathFallFrames:  24,
		StunBlinkPeriod:  4,
		WalkBob:          1.5,
	}

	UI = UIConfig{
		HUDMargin:      12,
		HUDTextColor:   White,
		HUDShadowColor: color.RGBA{A: 160},
		BannerColor:    BrightOrange,
		BannerBgColor:  color.RGBA{A: 170},

		DebugHurtColor:   Cyan,
		DebugTipColor:    Magenta,
		DebugShieldColor: Yellow,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Restart", "Main Menu"},
	}

	// Defaults, can be overridden by CLI flags
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
