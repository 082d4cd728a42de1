// Package gamemath holds the small amount of 2D math shared by the duel
// simulation, the CPU opponent and the renderer. It has no dependencies on
// ebitengine or donburi so it stays usable from headless code and tests.
package gamemath

import "math"

// Vec2 is a point or displacement in arena space (pixels, y down).
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Rotate applies the standard 2D rotation matrix for angle radians to v.
func Rotate(v Vec2, angle float64) Vec2 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// RotateAbout rotates p by angle around pivot.
func RotateAbout(p, pivot Vec2, angle float64) Vec2 {
	return Rotate(p.Sub(pivot), angle).Add(pivot)
}

// InsideEllipse reports whether p lies inside or on the axis-aligned ellipse
// centred at center with radii rx and ry. Radii must be non-zero.
func InsideEllipse(p, center Vec2, rx, ry float64) bool {
	dx := (p.X - center.X) / rx
	dy := (p.Y - center.Y) / ry
	return dx*dx+dy*dy <= 1
}

// DistanceToSegment returns the shortest distance from p to the segment ab.
// A degenerate segment (a == b) is treated as a point.
func DistanceToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return Distance(p, a)
	}
	t := ClampFloat(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return Distance(p, a.Add(ab.Scale(t)))
}

// CircleTouchesSegment reports whether a circle of radius r at c overlaps ab.
func CircleTouchesSegment(c Vec2, r float64, a, b Vec2) bool {
	return DistanceToSegment(c, a, b) <= r
}
