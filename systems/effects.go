package systems

import (
	"math"

	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, shake, banner).
// Effects are advanced a fixed step per tick so they pause with the game.
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateScreenShake(ecs)
	updateBanner(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateScreenShake computes the decaying shake offset
func updateScreenShake(ecs *ecs.ECS) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration <= 0 {
		shake.OffsetX, shake.OffsetY = 0, 0
		return
	}

	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Oscillating offset using sine/cosine for smooth shake
	shake.OffsetX = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	shake.OffsetY = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		*shake = components.ScreenShakeData{}
	}
}

func updateBanner(ecs *ecs.ECS) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Tween == nil {
		if banner.Visible && banner.Hold > 0 {
			banner.Hold--
			if banner.Hold == 0 {
				banner.Visible = false
			}
		}
		return
	}
	offset, finished := banner.Tween.Update(1 / float32(cfg.C.TPS))
	banner.Offset = offset
	if finished {
		banner.Tween = nil
	}
}

// TriggerFlash tints a fighter for the given number of frames
func TriggerFlash(entry *donburi.Entry, frames int, r, g, b float32) {
	flash := components.Flash.Get(entry)
	flash.Duration = frames
	flash.R, flash.G, flash.B = r, g, b
}

// triggerScreenShake starts a screen shake effect
func triggerScreenShake(w donburi.World, intensity float64, duration int) {
	entry, ok := components.ScreenShake.First(w)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	// Only override if new shake is stronger
	if shake.Duration > 0 && intensity <= shake.Intensity {
		return
	}
	shake.Intensity = intensity
	shake.Duration = duration
	shake.Elapsed = 0
}

// ShakeOffset returns the current world-space shake offset
func ShakeOffset(ecs *ecs.ECS) (float64, float64) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return 0, 0
	}
	shake := components.ScreenShake.Get(entry)
	return shake.OffsetX, shake.OffsetY
}

// ShowBanner slides a line of text in from above the arena. A hold of 0
// keeps it up until HideBanner.
func ShowBanner(ecs *ecs.ECS, text string, hold int) {
	showBanner(ecs.World, text, hold)
}

func showBanner(w donburi.World, text string, hold int) {
	entry, ok := components.Banner.First(w)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	banner.Text = text
	banner.Visible = true
	banner.Hold = hold
	banner.Offset = -float32(cfg.C.Height) / 2
	banner.Tween = gween.New(banner.Offset, 0, cfg.Match.BannerDuration, ease.OutBack)
}

// HideBanner removes the banner immediately
func HideBanner(ecs *ecs.ECS) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	*components.Banner.Get(entry) = components.BannerData{}
}

func clearEffects(ecs *ecs.ECS) {
	if entry, ok := components.ScreenShake.First(ecs.World); ok {
		*components.ScreenShake.Get(entry) = components.ScreenShakeData{}
	}
	HideBanner(ecs)
}
