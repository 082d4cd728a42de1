package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/shared/anim"
	"github.com/automoto/gladiator/shared/duel"
	"github.com/automoto/gladiator/shared/gamemath"
	"github.com/automoto/gladiator/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	spearheadLength   = 16
	spearheadHalfBase = 9
	spearShaftWidth   = 6
	shieldSegments    = 16
	floorLineSpacing  = 50
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	// Reused vertex buffers for filled polygons
	polyVertices []ebiten.Vertex
	polyIndices  []uint16
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawArena renders the sand floor and the wall the fighters are clamped to.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	d, ok := GetDuel(ecs)
	if !ok {
		return
	}
	arena := d.Match.Arena()
	ox, oy := ShakeOffset(ecs)
	w, h := float32(arena.Width), float32(arena.Height)

	screen.Fill(cfg.Arena.Wall)
	vector.FillRect(screen, float32(ox), float32(oy), w, h, cfg.Arena.Floor, false)

	for x := float32(floorLineSpacing); x < w; x += floorLineSpacing {
		vector.StrokeLine(screen, x+float32(ox), float32(oy), x+float32(ox), h+float32(oy), 1, cfg.Arena.FloorLines, false)
	}

	ww := cfg.Arena.WallWidth
	vector.StrokeRect(screen, float32(ox)+ww/2, float32(oy)+ww/2, w-ww, h-ww, ww, cfg.Arena.Wall, false)
}

// DrawFighters renders both combatants from the current snapshot, animated
// from each fighter's state tag and the ticks it has spent in that pose.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	d, ok := GetDuel(ecs)
	if !ok {
		return
	}
	snap := d.Match.Snapshot()
	tun := d.Match.Tunables()
	ox, oy := ShakeOffset(ecs)
	offset := gamemath.V(ox, oy)

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		fighter := components.Fighter.Get(e)
		state := components.State.Get(e)
		fs := snap.Fighter(fighter.Side)
		style := cfg.Fighters[fighter.Side]
		flash := components.Flash.Get(e)

		if e.HasComponent(components.Dead) {
			drawDeadFighter(screen, fs, style, offset, anim.FallProgress(state.Ticks, cfg.Effects.DeathFallFrames))
			return
		}

		body := style.Body
		if flash.Duration > 0 {
			body = tint(body, flash.R, flash.G, flash.B)
		}
		if e.HasComponent(components.Stunned) && anim.StunBlink(state.Ticks, cfg.Effects.StunBlinkPeriod) {
			body = tint(body, 0.7, 0.7, 0.7)
		}

		pos := fs.Position.Add(offset)
		bob := 0.0
		switch {
		case e.HasComponent(components.Moving):
			bob = math.Sin(float64(state.Ticks)*0.5) * cfg.Effects.WalkBob
		case e.HasComponent(components.Idle):
			// Slow breathing
			bob = math.Sin(float64(state.Ticks)*0.08) * cfg.Effects.WalkBob * 0.5
		}
		vector.FillCircle(screen, float32(pos.X), float32(pos.Y), float32(fs.BodyRadius), body, true)
		vector.FillCircle(screen, float32(pos.X+fs.Facing*fs.BodyRadius*0.35), float32(pos.Y-fs.BodyRadius*0.3+bob),
			float32(fs.BodyRadius*0.3), style.Head, true)

		spear := style.Spear
		if e.HasComponent(components.Attacking) {
			spear = tint(spear, 1.15, 1.15, 1.15)
		}
		drawSpear(screen, fs, spear, offset)
		drawShield(screen, fs, tun, style, offset, e.HasComponent(components.Parrying))
	})
}

func drawSpear(screen *ebiten.Image, fs duel.FighterSnapshot, head color.RGBA, offset gamemath.Vec2) {
	tip := fs.SpearTip.Add(offset)
	base := fs.Position.Add(gamemath.V(fs.Facing*fs.BodyRadius, 0)).Add(offset)
	neck := tip.Sub(gamemath.V(fs.Facing*spearheadLength, 0))

	vector.StrokeLine(screen, float32(base.X), float32(base.Y), float32(neck.X), float32(neck.Y),
		spearShaftWidth, shaftColor, true)

	fillPolygon(screen, []gamemath.Vec2{
		tip,
		neck.Add(gamemath.V(0, -spearheadHalfBase)),
		neck.Add(gamemath.V(0, spearheadHalfBase)),
	}, head)
}

var shaftColor = color.RGBA{R: 107, G: 63, B: 27, A: 255}

// drawShield fills the outward half of the shield ellipse, rotated about
// the body centre by the current shield angle.
func drawShield(screen *ebiten.Image, fs duel.FighterSnapshot, tun duel.Tunables, style cfg.FighterStyle, offset gamemath.Vec2, parrying bool) {
	center := fs.Position.Add(gamemath.V(fs.Facing*(fs.BodyRadius+tun.ShieldOffset), 0))
	points := make([]gamemath.Vec2, 0, shieldSegments+2)
	for i := 0; i <= shieldSegments; i++ {
		a := -math.Pi/2 + math.Pi*float64(i)/shieldSegments
		p := center.Add(gamemath.V(fs.Facing*tun.ShieldRx*math.Cos(a), tun.ShieldRy*math.Sin(a)))
		points = append(points, gamemath.RotateAbout(p, fs.Position, fs.ShieldAngle).Add(offset))
	}

	clr := style.Shield
	if parrying {
		clr = tint(clr, 1.2, 1.2, 1.2)
	}
	fillPolygon(screen, points, clr)
}

// drawDeadFighter topples the body from upright (progress 0) to lying on
// its back (progress 1), keeping its lowest point on the ground.
func drawDeadFighter(screen *ebiten.Image, fs duel.FighterSnapshot, style cfg.FighterStyle, offset gamemath.Vec2, progress float64) {
	pos := fs.Position.Add(offset)
	r := fs.BodyRadius
	ry := r * (1 - 0.8*progress)
	center := gamemath.V(pos.X, pos.Y+r-ry)

	points := make([]gamemath.Vec2, 0, shieldSegments*2)
	for i := 0; i < shieldSegments*2; i++ {
		a := math.Pi * float64(i) / shieldSegments
		points = append(points, center.Add(gamemath.V(r*math.Cos(a), ry*math.Sin(a))))
	}
	fillPolygon(screen, points, tint(style.Body, 0.5, 0.5, 0.5))

	upright := gamemath.V(pos.X+fs.Facing*r*0.35, pos.Y-r*0.3)
	lying := gamemath.V(pos.X-fs.Facing*r, pos.Y+r*0.5)
	head := upright.Add(lying.Sub(upright).Scale(progress))
	vector.FillCircle(screen, float32(head.X), float32(head.Y), float32(r*0.3), style.Head, true)
}

// fillPolygon draws a convex polygon as a triangle fan.
func fillPolygon(screen *ebiten.Image, points []gamemath.Vec2, clr color.RGBA) {
	if len(points) < 3 {
		return
	}
	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff

	polyVertices = polyVertices[:0]
	polyIndices = polyIndices[:0]
	for _, p := range points {
		polyVertices = append(polyVertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for i := 1; i < len(points)-1; i++ {
		polyIndices = append(polyIndices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(polyVertices, polyIndices, whiteSubImage, op)
}

func tint(c color.RGBA, r, g, b float32) color.RGBA {
	scale := func(v uint8, f float32) uint8 {
		s := float32(v) * f
		if s > 255 {
			s = 255
		}
		return uint8(s)
	}
	return color.RGBA{R: scale(c.R, r), G: scale(c.G, g), B: scale(c.B, b), A: c.A}
}
