package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/fonts"
	"github.com/automoto/gladiator/shared/duel"
	"github.com/automoto/gladiator/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the round tally, each side's controls and the countdown.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	d, ok := GetDuel(ecs)
	if !ok {
		return
	}

	drawScores(screen, d)
	drawControlHints(ecs, screen)

	if d.Phase == components.DuelCountdown {
		drawCountdown(screen, d)
	}
	drawBanner(ecs, screen)
}

func drawScores(screen *ebiten.Image, d *components.DuelData) {
	width := float64(screen.Bounds().Dx())
	margin := int(cfg.UI.HUDMargin)
	fontFace := fonts.Bold.Get()

	left := fmt.Sprintf("%s %d", cfg.Fighters[duel.SideLeft].Label, d.Wins[duel.SideLeft])
	right := fmt.Sprintf("%d %s", d.Wins[duel.SideRight], cfg.Fighters[duel.SideRight].Label)
	drawShadowed(screen, left, fontFace, margin, margin+20, cfg.Fighters[duel.SideLeft].Body)
	drawShadowed(screen, right, fontFace, int(width)-margin-textWidth(fontFace, right), margin+20, cfg.Fighters[duel.SideRight].Body)

	round := fmt.Sprintf("Round %d", d.Rounds)
	small := fonts.Regular.Get()
	drawShadowed(screen, round, small, int(width)/2-textWidth(small, round)/2, margin+16, cfg.UI.HUDTextColor)
}

func drawControlHints(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	margin := int(cfg.UI.HUDMargin)
	fontFace := fonts.Small.Get()

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		fighter := components.Fighter.Get(e)
		var hint string
		if e.HasComponent(components.Bot) {
			hint = "CPU " + components.Bot.Get(e).Brain.Difficulty.String()
		} else {
			hint = controlHint(components.PlayerInput.Get(e))
		}
		x := margin
		if fighter.Side == duel.SideRight {
			x = int(width) - margin - textWidth(fontFace, hint)
		}
		drawShadowed(screen, hint, fontFace, x, int(height)-margin, cfg.UI.HUDTextColor)
	})
}

func controlHint(input *components.PlayerInputData) string {
	switch {
	case input.BoundGamepadID != nil && input.InputMethod == components.InputPlayStation:
		return "Stick move  Square attack  Cross parry"
	case input.BoundGamepadID != nil:
		return "Stick move  X attack  A parry"
	}
	return cfg.ControlSchemeHints[input.ControlScheme]
}

func drawCountdown(screen *ebiten.Image, d *components.DuelData) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	fontFace := fonts.Title.Get()

	// Semi-transparent overlay
	vector.FillRect(screen, 0, 0, float32(width), float32(height),
		color.RGBA{0, 0, 0, 120}, false)

	countStr := "GO!"
	textColor := cfg.BrightGreen
	if d.CountdownValue > 0 {
		countStr = fmt.Sprintf("%d", d.CountdownValue)
		textColor = cfg.BrightOrange
	}

	x := int(width/2) - textWidth(fontFace, countStr)/2
	text.Draw(screen, countStr, fontFace, x, int(height/2), textColor)
}

func drawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if !banner.Visible || banner.Text == "" {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	fontFace := fonts.Title.Get()
	w := textWidth(fontFace, banner.Text)
	y := float32(height/3) + banner.Offset

	vector.FillRect(screen, 0, y-50, float32(width), 70, cfg.UI.BannerBgColor, false)
	text.Draw(screen, banner.Text, fontFace, int(width/2)-w/2, int(y), cfg.UI.BannerColor)
}

func drawShadowed(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x+1, y+1, cfg.UI.HUDShadowColor)
	text.Draw(screen, s, face, x, y, clr)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
