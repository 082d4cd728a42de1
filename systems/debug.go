package systems

import (
	"fmt"
	"math"

	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/fonts"
	"github.com/automoto/gladiator/shared/duel"
	"github.com/automoto/gladiator/shared/gamemath"
	"github.com/automoto/gladiator/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const debugEllipseSegments = 32

// DrawDebug overlays the collision shapes and each fighter's pose clock.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	d, ok := GetDuel(ecs)
	if !ok {
		return
	}
	snap := d.Match.Snapshot()
	tun := d.Match.Tunables()
	ox, oy := ShakeOffset(ecs)
	fontFace := fonts.Small.Get()

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		side := components.Fighter.Get(e).Side
		state := components.State.Get(e)
		fs := snap.Fighter(side)

		// Hurt region as seen by the resolver's broadphase
		x, y, w, h := d.Match.HurtRegion(side)
		vector.StrokeRect(screen, float32(x+ox), float32(y+oy), float32(w), float32(h), 1, cfg.UI.DebugHurtColor, false)

		drawShieldOutline(screen, fs, tun, ox, oy)

		tip := fs.SpearTip
		vector.FillCircle(screen, float32(tip.X+ox), float32(tip.Y+oy), 4, cfg.UI.DebugTipColor, true)

		label := fmt.Sprintf("%s %d (was %s) reach=%.0f", state.Current, state.Ticks, state.Previous, fs.SpearReach)
		if fs.StunFrames > 0 {
			label += fmt.Sprintf(" stun=%d", fs.StunFrames)
		}
		text.Draw(screen, label, fontFace,
			int(fs.Position.X+ox-fs.BodyRadius), int(fs.Position.Y+oy-fs.BodyRadius-8), cfg.UI.DebugTipColor)
	})

	tuned := "defaults"
	if cfg.Duel.TuningPath != "" {
		tuned = cfg.Duel.TuningPath
	}
	text.Draw(screen, fmt.Sprintf("tick %d  tps %.0f  arena %s  tuning %s", snap.Tick, ebiten.ActualTPS(), cfg.Duel.ArenaName, tuned), fontFace,
		int(cfg.UI.HUDMargin), int(cfg.UI.HUDMargin)+40, cfg.UI.HUDTextColor)
}

// drawShieldOutline strokes the whole ellipse used for parry checks,
// not just the half that is filled when rendering.
func drawShieldOutline(screen *ebiten.Image, fs duel.FighterSnapshot, tun duel.Tunables, ox, oy float64) {
	center := fs.Position.Add(gamemath.V(fs.Facing*(fs.BodyRadius+tun.ShieldOffset), 0))
	offset := gamemath.V(ox, oy)
	point := func(i int) gamemath.Vec2 {
		a := 2 * math.Pi * float64(i) / debugEllipseSegments
		p := center.Add(gamemath.V(tun.ShieldRx*math.Cos(a), tun.ShieldRy*math.Sin(a)))
		return gamemath.RotateAbout(p, fs.Position, fs.ShieldAngle).Add(offset)
	}

	prev := point(0)
	for i := 1; i <= debugEllipseSegments; i++ {
		next := point(i)
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(next.X), float32(next.Y), 1, cfg.UI.DebugShieldColor, true)
		prev = next
	}
}
