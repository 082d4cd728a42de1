package systems

import (
	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const pauseOptionCount = int(components.MenuExit) + 1

// UpdatePause opens and closes the pause menu and applies its choices.
// Runs after UpdateInput and before the gameplay systems it gates.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := GetOrCreateInput(e)

	// The result overlay has its own buttons
	if IsDuelFinished(e) {
		pause.IsPaused = false
		return
	}

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		pause.SelectedOption = components.MenuResume
		return
	}
	if !pause.IsPaused {
		return
	}

	switch {
	case GetAction(input, cfg.ActionMenuUp).JustPressed:
		pause.SelectedOption = stepOption(pause.SelectedOption, -1)
	case GetAction(input, cfg.ActionMenuDown).JustPressed:
		pause.SelectedOption = stepOption(pause.SelectedOption, 1)
	case GetAction(input, cfg.ActionMenuSelect).JustPressed:
		choosePauseOption(e, pause)
	}
}

func stepOption(o components.PauseMenuOption, delta int) components.PauseMenuOption {
	return components.PauseMenuOption((int(o) + delta + pauseOptionCount) % pauseOptionCount)
}

func choosePauseOption(e *ecs.ECS, pause *components.PauseData) {
	pause.IsPaused = false
	switch pause.SelectedOption {
	case components.MenuRestart:
		RestartDuel(e)
	case components.MenuExit:
		pause.ExitRequested = true
	}
}

// DrawPause dims the arena and lists the pause options, highlighting the
// selected one with a bar.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, w, h, cfg.Pause.OverlayColor, false)

	face := fonts.Bold.Get()
	step := float32(cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	top := (h - step*float32(len(cfg.Pause.MenuOptions))) / 2

	for i, label := range cfg.Pause.MenuOptions {
		y := top + float32(i)*step
		clr := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			clr = cfg.Pause.TextColorSelected
			vector.FillRect(screen, w/2-110, y, 220, float32(cfg.Pause.MenuItemHeight), cfg.UI.BannerBgColor, false)
		}
		x := (int(w) - textWidth(face, label)) / 2
		text.Draw(screen, label, face, x, int(y)+int(cfg.Pause.MenuItemHeight)-8, clr)
	}

	hint := pauseHint(GetOrCreateInput(e).LastInputMethod)
	small := fonts.Small.Get()
	text.Draw(screen, hint, small, (int(w)-textWidth(small, hint))/2, int(h)-12, cfg.Pause.TextColorNormal)
}

func pauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad choose   Cross confirm   Options resume"
	case components.InputXbox:
		return "D-Pad choose   A confirm   Start resume"
	}
	return "Up/Down choose   Enter confirm   Esc resume"
}

// WithGameplayChecks gates a system so it does not run while the pause
// menu is open. A paused duel does not tick.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the pause singleton, creating it on first use.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
