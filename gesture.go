package pinchview

// GesturePhase identifies which gesture variant is currently tracked.
type GesturePhase uint8

const (
	GestureNone  GesturePhase = iota // no gesture tracked
	GestureDrag                      // one finger down, dragging
	GesturePinch                     // two fingers down
)

// gestureState is the sealed sum of tracked gesture variants. Exactly one
// variant is active at a time; variant changes always pass through
// reconcile, which may emit side effects.
type gestureState interface {
	phase() GesturePhase
}

type gestureNone struct{}

type gestureDrag struct {
	initial Vec2
	last    Vec2
	at      float64 // seconds, time of the most recent event
}

type gesturePinch struct {
	initial Pinch
	last    Pinch
	at      float64
}

func (gestureNone) phase() GesturePhase  { return GestureNone }
func (gestureDrag) phase() GesturePhase  { return GestureDrag }
func (gesturePinch) phase() GesturePhase { return GesturePinch }

// EffectKind identifies an intended side effect produced by a gesture
// transition. Effects are executed by the Controller, never by the
// classifier itself.
type EffectKind uint8

const (
	EffectMove          EffectKind = iota // pan by the drag delta
	EffectPinchMove                       // scale/pan by the pinch delta
	EffectDoubleTapZoom                   // double-tap zoom shortcut
	EffectMarkZooming                     // set the zoom-in-progress flag
	EffectRealignPage                     // snap the page strip to the current page
)

// Effect is one intended side effect. Only the fields relevant to Kind
// are populated.
type Effect struct {
	Kind EffectKind

	// EffectMove
	From, To Vec2
	// EffectPinchMove
	PinchFrom, PinchTo Pinch
	// EffectDoubleTapZoom
	At Vec2

	// Duration of the resulting animation in seconds.
	Duration float32
}

// ClassifierState is the full immutable state of the touch classifier:
// the active gesture variant plus the double-tap clock. Transition methods
// return a new state and the effects to execute; they never mutate the
// receiver, which keeps every transition independently testable.
type ClassifierState struct {
	gesture gestureState
	// lastTap is the time of the most recent fresh single-finger
	// touch-down, or 0 when the preceding gesture was not a fresh single
	// touch. Used only for double-tap detection.
	lastTap float64
}

// NewClassifierState returns the initial classifier state: no gesture.
func NewClassifierState() ClassifierState {
	return ClassifierState{gesture: gestureNone{}}
}

// Phase returns the phase of the active gesture variant.
func (cs ClassifierState) Phase() GesturePhase {
	return cs.gesture.phase()
}

// transition reconciles a variant change and adopts the new gesture.
// When the variant kind changes, the double-tap clock is cleared unless
// the new kind is a drag, and entering a pinch emits the mark-zooming and
// realign-page effects so the page strip cannot scroll mid-pinch.
func (cs ClassifierState) transition(next gestureState, effects []Effect) (ClassifierState, []Effect) {
	oldPhase := cs.gesture.phase()
	newPhase := next.phase()
	if oldPhase != newPhase {
		if newPhase != GestureDrag {
			cs.lastTap = 0
		}
		if newPhase == GesturePinch {
			effects = append(effects,
				Effect{Kind: EffectMarkZooming},
				Effect{Kind: EffectRealignPage})
		}
	}
	cs.gesture = next
	return cs, effects
}

// TouchStart classifies a touch-down event. touches holds the corrected
// absolute positions; count is the platform-reported finger count, which
// may exceed len(touches) on some delivery orders.
func (cs ClassifierState) TouchStart(touches []Vec2, count int, now float64) (ClassifierState, []Effect) {
	if count != 1 || len(touches) < 1 {
		// Multi-finger gestures may begin directly in a start callback;
		// the move logic handles every count consistently.
		return cs.TouchMove(touches, count, now)
	}

	p := touches[0]
	if cs.lastTap > 0 && now-cs.lastTap < DoubleTapWindow && cs.gesture.phase() != GestureDrag {
		// Double tap: consume the tap clock and zoom instead of dragging.
		cs.lastTap = 0
		return cs, []Effect{{Kind: EffectDoubleTapZoom, At: p, Duration: SoftAnimationTime}}
	}

	cs.lastTap = now
	return cs.transition(gestureDrag{initial: p, last: p, at: now}, nil)
}

// TouchMove classifies a touch-move event, branching on finger count.
func (cs ClassifierState) TouchMove(touches []Vec2, count int, now float64) (ClassifierState, []Effect) {
	switch {
	case count == 1 && len(touches) >= 1:
		return cs.dragMove(touches[0], now)
	case count >= 2 && len(touches) >= 2:
		return cs.pinchMove(pinchBetween(touches[0], touches[1]), now)
	default:
		// Zero fingers, or the touch array is missing reported fingers:
		// unrecognized, fall back to no gesture.
		return cs.transition(gestureNone{}, nil)
	}
}

// TouchEnd classifies the end of the responder lifecycle (release,
// terminate, or reject): the gesture is dropped unconditionally. The
// double-tap clock survives, or a tap-release-tap sequence could never
// register as a double tap. Whether the transform snaps back to identity
// is the dispatcher's decision since it depends on the engine's target
// scale.
func (cs ClassifierState) TouchEnd() (ClassifierState, []Effect) {
	cs.gesture = gestureNone{}
	return cs, nil
}

func (cs ClassifierState) dragMove(p Vec2, now float64) (ClassifierState, []Effect) {
	drag, ok := cs.gesture.(gestureDrag)
	if !ok {
		// A finger was lifted out of a pinch (or no gesture was tracked):
		// reinitialize without forwarding a move, since no delta exists.
		return cs.transition(gestureDrag{initial: p, last: p, at: now}, nil)
	}

	effects := []Effect{{
		Kind:     EffectMove,
		From:     drag.last,
		To:       p,
		Duration: float32(now - drag.at),
	}}
	drag.last = p
	drag.at = now
	return cs.transition(drag, effects)
}

func (cs ClassifierState) pinchMove(next Pinch, now float64) (ClassifierState, []Effect) {
	pinch, ok := cs.gesture.(gesturePinch)
	if !ok {
		return cs.transition(gesturePinch{initial: next, last: next, at: now}, nil)
	}

	effects := []Effect{{
		Kind:      EffectPinchMove,
		PinchFrom: pinch.last,
		PinchTo:   next,
		Duration:  float32(now - pinch.at),
	}}
	pinch.last = next
	pinch.at = now
	return cs.transition(pinch, effects)
}

// shouldClaim is the responder-negotiation predicate: the gallery claims
// the gesture while zoom is in progress or more than one finger is down,
// and releases the claim otherwise so the page strip can swipe. Pure
// function, no side effects.
func shouldClaim(zooming bool, touchCount int) bool {
	return zooming || touchCount > 1
}
