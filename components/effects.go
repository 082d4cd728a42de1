package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // total frames
	Elapsed   int     // frames elapsed (for oscillation)
	OffsetX   float64 // applied to everything drawn in world space
	OffsetY   float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks fighter flash effect (hit flash, parry flash)
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

// BannerData is the sliding text shown for GO and the winner
type BannerData struct {
	Text    string
	Tween   *gween.Tween
	Offset  float32 // current vertical offset from the resting position
	Hold    int     // frames to stay up once the tween settles, 0 = until hidden
	Visible bool
}

var Banner = donburi.NewComponentType[BannerData]()
