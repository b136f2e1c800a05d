package pinchview

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// convergeAnim holds the active tween triple driving the animated
// transform toward the target. All three tweens terminate together.
type convergeAnim struct {
	scale  *gween.Tween
	transX *gween.Tween
	transY *gween.Tween

	doneScale bool
	doneX     bool
	doneY     bool

	// generation ties the completion callback to the apply call that
	// started this animation. A stale callback (superseded by a newer
	// override) must not run its completion side effects.
	generation uint64
	onComplete func()
}

// Engine owns the authoritative target transform and the live animated
// transform converging toward it. Only the engine mutates either; the
// classifier reaches it exclusively through operation calls.
//
// The engine is frame-pumped: call [Engine.Update] once per frame to
// advance the convergence animation. At most one animation is active at a
// time; an overriding request cancels the previous one in place, freezing
// the animated value as the new start point so there is no visual jump.
type Engine struct {
	viewport Viewport

	target  Transform
	current Transform

	anim       *convergeAnim
	generation uint64

	// zooming gates whether single-finger moves pan the image versus
	// letting the page strip scroll. It is distinct from scale == 1 and
	// is cleared only by an explicit reset completing.
	zooming bool
}

// NewEngine creates an engine at the identity transform for the given
// viewport. The viewport is immutable for the engine's lifetime.
func NewEngine(viewport Viewport) *Engine {
	return &Engine{
		viewport: viewport,
		target:   identityTransform,
		current:  identityTransform,
	}
}

// Target returns the authoritative, un-animated target transform.
func (e *Engine) Target() Transform {
	return e.target
}

// Current returns the live interpolated transform. The host applies this
// to the currently visible page only.
func (e *Engine) Current() Transform {
	return e.current
}

// Zooming reports whether a zoom interaction is in progress.
func (e *Engine) Zooming() bool {
	return e.zooming
}

// Animating reports whether a convergence animation is in flight.
func (e *Engine) Animating() bool {
	return e.anim != nil
}

// markZooming sets the zoom-in-progress flag without touching the
// transform. Executed when a pinch begins.
func (e *Engine) markZooming() {
	e.zooming = true
}

// CenterOffset expresses an absolute point as an offset from the
// viewport center, the natural pivot space for unscaled content.
func (e *Engine) CenterOffset(p Vec2) Vec2 {
	return p.Sub(e.viewport.Center())
}

// changeScale multiplies the target scale by ratio and shifts the target
// translation by delta. With a pivot, the translation additionally gains
// pivotOffset*(1-ratio), where pivotOffset is the pivot relative to the
// current translation origin. That single additive term is
// translate-to-origin, scale, translate-back collapsed: the pixel under
// the pivot stays visually fixed while scaling. Bounds are not enforced
// here; clamping happens in applyAndAnimate.
func (e *Engine) changeScale(delta Vec2, ratio float64, pivot Vec2, hasPivot bool) {
	if hasPivot {
		pivotOffset := pivot.Sub(e.target.Translation)
		delta = delta.Add(pivotOffset.Scale(1 - ratio))
	}
	e.target.Scale *= ratio
	e.target.Translation = e.target.Translation.Add(delta)
}

// Move pans the target by the drag delta from prev to next, animating
// over duration seconds. Dragging is a no-op unless zoom is in progress
// and the target scale is not neutral; at neutral zoom the drag belongs
// to the page strip.
func (e *Engine) Move(prev, next Vec2, duration float32) {
	if !e.zooming || e.target.Scale == 1 {
		return
	}
	e.changeScale(next.Sub(prev), 1, Vec2{}, false)
	e.applyAndAnimate(duration, nil, false)
}

// PinchMove applies a two-finger pinch step: the center delta pans, the
// distance ratio scales around the previous pinch center. Coincident
// fingers (zero previous distance) contribute no scale change this frame.
func (e *Engine) PinchMove(prev, next Pinch, duration float32) {
	ratio := 1.0
	if prev.Distance > 0 {
		ratio = next.Distance / prev.Distance
	}
	delta := next.Center.Sub(prev.Center)
	e.changeScale(delta, ratio, e.CenterOffset(prev.Center), true)
	e.applyAndAnimate(duration, nil, false)
}

// DoubleTapZoom zooms to DefaultZoom around the tapped point with an
// overriding animation, or snaps back to identity if already zoomed.
func (e *Engine) DoubleTapZoom(at Vec2) {
	if e.target.Scale != 1 {
		e.ResetToIdentity(SoftAnimationTime)
		return
	}
	e.changeScale(Vec2{}, DefaultZoom, e.CenterOffset(at), true)
	e.applyAndAnimate(SoftAnimationTime, nil, true)
}

// ResetToIdentity animates back to the neutral transform and clears the
// zoom-in-progress flag once the animation completes naturally. Calling
// it at identity is harmless: nothing visibly moves and the flag still
// clears.
func (e *Engine) ResetToIdentity(duration float32) {
	e.target = identityTransform
	e.applyAndAnimate(duration, func() { e.zooming = false }, true)
}

// applyAndAnimate is the shared bounds-then-animate step. The target is
// clamped on every call, even when the animation is left alone.
//
// Without override, a request arriving while an animation is in flight
// returns after clamping: rapid move events coalesce into the ongoing
// animation instead of restarting it. With override, the in-flight
// animation is cancelled and the animated value at this instant becomes
// the new start point.
func (e *Engine) applyAndAnimate(duration float32, onComplete func(), override bool) {
	e.target.Scale = clamp(e.target.Scale, MinZoom, MaxZoom)
	maxX := e.viewport.Width * math.Abs(1-e.target.Scale) / 2
	maxY := e.viewport.Height * math.Abs(1-e.target.Scale) / 2
	e.target.Translation.X = clamp(e.target.Translation.X, -maxX, maxX)
	e.target.Translation.Y = clamp(e.target.Translation.Y, -maxY, maxY)

	if e.anim != nil {
		if !override {
			return
		}
		// Cancel in place. current already holds the interpolated value,
		// so the replacement animation starts exactly where this one stopped.
		e.anim = nil
	}

	e.zooming = true

	e.generation++
	e.anim = &convergeAnim{
		scale:      gween.New(float32(e.current.Scale), float32(e.target.Scale), duration, ease.OutQuad),
		transX:     gween.New(float32(e.current.Translation.X), float32(e.target.Translation.X), duration, ease.OutQuad),
		transY:     gween.New(float32(e.current.Translation.Y), float32(e.target.Translation.Y), duration, ease.OutQuad),
		generation: e.generation,
		onComplete: onComplete,
	}
}

// Update advances the convergence animation by dt seconds. On natural
// completion the animation's callback runs, but only if no newer apply
// call has superseded it.
func (e *Engine) Update(dt float32) {
	a := e.anim
	if a == nil {
		return
	}

	if !a.doneScale {
		v, done := a.scale.Update(dt)
		e.current.Scale = float64(v)
		a.doneScale = done
	}
	if !a.doneX {
		v, done := a.transX.Update(dt)
		e.current.Translation.X = float64(v)
		a.doneX = done
	}
	if !a.doneY {
		v, done := a.transY.Update(dt)
		e.current.Translation.Y = float64(v)
		a.doneY = done
	}

	if a.doneScale && a.doneX && a.doneY {
		e.anim = nil
		if a.onComplete != nil && a.generation == e.generation {
			a.onComplete()
		}
	}
}
