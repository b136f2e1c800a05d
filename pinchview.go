package pinchview

import "math"

// Zoom and timing constants. The zoom window and animation durations are
// fixed; hosts configure only the viewport and page layout.
const (
	// MinZoom and MaxZoom bound the target scale after every apply step.
	MinZoom = 0.5
	MaxZoom = 5.0
	// DefaultZoom is the scale ratio applied by a double tap from neutral.
	DefaultZoom = 2.0
	// DoubleTapWindow is the maximum gap in seconds between two touch-downs
	// for the second one to count as a double tap.
	DoubleTapWindow = 0.3
	// SoftAnimationTime is the duration in seconds of double-tap zoom and
	// snap-back animations.
	SoftAnimationTime float32 = 0.3

	// Release snap-back window: when a gesture ends with the target scale
	// inside (minResetZoom, maxResetZoom), the view snaps back to identity.
	minResetZoom = 0.0
	maxResetZoom = 1.3
)

// Vec2 is a 2D point or offset in the gallery's absolute coordinate space.
// All arithmetic returns new values; receivers are never mutated.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Pinch describes two active touches: their midpoint and separation.
// It is derived fresh whenever two fingers are present and never persists
// across gesture boundaries.
type Pinch struct {
	Center   Vec2
	Distance float64
}

// pinchBetween builds a Pinch from two touch positions.
func pinchBetween(a, b Vec2) Pinch {
	return Pinch{
		Center:   Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2},
		Distance: a.Dist(b),
	}
}

// Viewport is the fixed size of the gallery's visible area.
type Viewport struct {
	Width, Height float64
}

// Center returns the viewport's center point.
func (vp Viewport) Center() Vec2 {
	return Vec2{vp.Width / 2, vp.Height / 2}
}

// Transform is a scale plus translation pair. Translation is the content
// offset relative to its neutral centered position.
type Transform struct {
	Scale       float64
	Translation Vec2
}

// identityTransform is the neutral transform: unscaled, centered.
var identityTransform = Transform{Scale: 1}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
