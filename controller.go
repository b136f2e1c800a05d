package pinchview

// Config configures a Controller at construction time.
type Config struct {
	// Viewport is the size of the gallery's visible area. When zero, the
	// full device screen size is used.
	Viewport Viewport
	// PageCount is the number of pages in the gallery. Defaults to 1.
	PageCount int
	// PageWidth is the horizontal stride between pages. Defaults to the
	// viewport width.
	PageWidth float64
}

// Controller is the thin dispatcher tying the gesture classifier, the
// transform engine, and the page strip together. It corrects incoming
// touch coordinates by the gallery's measured screen origin, runs the
// classifier's pure transitions, and executes the resulting effects.
//
// All methods must be called from a single goroutine (the game loop).
type Controller struct {
	engine *Engine
	pager  *Pager

	state  ClassifierState
	origin Vec2

	touchBuf []Vec2
}

// New creates a Controller from the given configuration.
func New(cfg Config) *Controller {
	if cfg.Viewport == (Viewport{}) {
		cfg.Viewport = screenViewport()
	}
	if cfg.PageCount < 1 {
		cfg.PageCount = 1
	}
	if cfg.PageWidth == 0 {
		cfg.PageWidth = cfg.Viewport.Width
	}
	return &Controller{
		engine: NewEngine(cfg.Viewport),
		pager:  newPager(cfg.PageWidth, cfg.PageCount),
		state:  NewClassifierState(),
	}
}

// Engine returns the transform engine.
func (c *Controller) Engine() *Engine {
	return c.engine
}

// Pager returns the page strip model.
func (c *Controller) Pager() *Pager {
	return c.pager
}

// Current returns the live interpolated transform for the visible page.
func (c *Controller) Current() Transform {
	return c.engine.Current()
}

// SetOrigin records the absolute screen origin of the gesture-capturing
// view, as reported by the host's layout measurement. Touch coordinates
// are corrected by this origin before classification, since nested
// content may report positions relative to an inner view.
func (c *Controller) SetOrigin(origin Vec2) {
	c.origin = origin
}

// Update advances the engine's convergence animation and the pager's
// snap tween by dt seconds. Call once per frame.
func (c *Controller) Update(dt float32) {
	c.engine.Update(dt)
	c.pager.update(dt)
}

// ShouldClaim is the responder-negotiation predicate for all of the
// host's start, move, capture, and termination hooks: the gallery claims
// the gesture while zoom is in progress or more than one finger is down.
func (c *Controller) ShouldClaim(touchCount int) bool {
	return shouldClaim(c.engine.Zooming(), touchCount)
}

// TouchStart handles a responder start event. touches holds finger
// positions in the host's reported frame; count is the platform finger
// count; now is the event time in seconds.
func (c *Controller) TouchStart(touches []Vec2, count int, now float64) {
	state, effects := c.state.TouchStart(c.correct(touches), count, now)
	c.state = state
	c.dispatch(effects)
}

// TouchMove handles a responder move event.
func (c *Controller) TouchMove(touches []Vec2, count int, now float64) {
	state, effects := c.state.TouchMove(c.correct(touches), count, now)
	c.state = state
	c.dispatch(effects)
}

// TouchRelease handles the responder release: the gesture ends, and if
// the view is only slightly zoomed it snaps back to identity.
func (c *Controller) TouchRelease() {
	c.endGesture()
}

// TouchTerminate handles the responder being taken away by the host.
func (c *Controller) TouchTerminate() {
	c.endGesture()
}

// TouchReject handles the responder claim being rejected.
func (c *Controller) TouchReject() {
	c.endGesture()
}

func (c *Controller) endGesture() {
	state, effects := c.state.TouchEnd()
	c.state = state
	c.dispatch(effects)

	if s := c.engine.Target().Scale; s > minResetZoom && s < maxResetZoom {
		c.engine.ResetToIdentity(SoftAnimationTime)
	}
}

// correct converts touches from the host's frame into the gallery's
// absolute space by subtracting the measured origin. Uses an internal
// scratch buffer; the result is valid until the next call.
func (c *Controller) correct(touches []Vec2) []Vec2 {
	c.touchBuf = c.touchBuf[:0]
	for _, p := range touches {
		c.touchBuf = append(c.touchBuf, p.Sub(c.origin))
	}
	return c.touchBuf
}

// dispatch executes classifier effects against the engine and pager.
func (c *Controller) dispatch(effects []Effect) {
	for _, ef := range effects {
		switch ef.Kind {
		case EffectMove:
			c.engine.Move(ef.From, ef.To, ef.Duration)
		case EffectPinchMove:
			c.engine.PinchMove(ef.PinchFrom, ef.PinchTo, ef.Duration)
		case EffectDoubleTapZoom:
			c.engine.DoubleTapZoom(ef.At)
		case EffectMarkZooming:
			c.engine.markZooming()
		case EffectRealignPage:
			c.pager.Realign()
		}
	}
}
