package pinchview

import "testing"

func kinds(effects []Effect) []EffectKind {
	out := make([]EffectKind, len(effects))
	for i, ef := range effects {
		out[i] = ef.Kind
	}
	return out
}

func hasEffect(effects []Effect, kind EffectKind) bool {
	for _, ef := range effects {
		if ef.Kind == kind {
			return true
		}
	}
	return false
}

// --- single-finger flow ---

func TestTouchStartBeginsDrag(t *testing.T) {
	cs := NewClassifierState()

	cs, effects := cs.TouchStart([]Vec2{{100, 50}}, 1, 1.0)

	if cs.Phase() != GestureDrag {
		t.Fatalf("phase = %v, want drag", cs.Phase())
	}
	if len(effects) != 0 {
		t.Errorf("unexpected effects: %v", kinds(effects))
	}
	if cs.lastTap != 1.0 {
		t.Errorf("lastTap = %v, want 1.0", cs.lastTap)
	}
}

func TestDragMoveEmitsMoveEffect(t *testing.T) {
	cs := NewClassifierState()
	cs, _ = cs.TouchStart([]Vec2{{100, 50}}, 1, 1.0)

	cs, effects := cs.TouchMove([]Vec2{{110, 45}}, 1, 1.016)

	if len(effects) != 1 || effects[0].Kind != EffectMove {
		t.Fatalf("effects = %v, want one move", kinds(effects))
	}
	if effects[0].From != (Vec2{100, 50}) || effects[0].To != (Vec2{110, 45}) {
		t.Errorf("move %v -> %v, want {100 50} -> {110 45}", effects[0].From, effects[0].To)
	}
	assertNear(t, "duration", float64(effects[0].Duration), 0.016)

	// A second move measures from the updated last position.
	_, effects = cs.TouchMove([]Vec2{{120, 40}}, 1, 1.032)
	if effects[0].From != (Vec2{110, 45}) {
		t.Errorf("second move From = %v, want {110 45}", effects[0].From)
	}
}

func TestDragMoveWithoutDragReinitializes(t *testing.T) {
	cs := NewClassifierState()

	// Move with no prior gesture: no delta exists, so no move is forwarded.
	cs, effects := cs.TouchMove([]Vec2{{100, 50}}, 1, 1.0)

	if cs.Phase() != GestureDrag {
		t.Fatalf("phase = %v, want drag", cs.Phase())
	}
	if len(effects) != 0 {
		t.Errorf("unexpected effects: %v", kinds(effects))
	}
}

// --- pinch flow ---

func TestPinchEntryMarksZoomingAndRealigns(t *testing.T) {
	cs := NewClassifierState()
	cs, _ = cs.TouchStart([]Vec2{{100, 50}}, 1, 1.0)

	cs, effects := cs.TouchMove([]Vec2{{100, 50}, {200, 50}}, 2, 1.016)

	if cs.Phase() != GesturePinch {
		t.Fatalf("phase = %v, want pinch", cs.Phase())
	}
	if !hasEffect(effects, EffectMarkZooming) {
		t.Error("pinch entry should mark zooming")
	}
	if !hasEffect(effects, EffectRealignPage) {
		t.Error("pinch entry should realign the page strip")
	}
	if hasEffect(effects, EffectPinchMove) {
		t.Error("no pinch delta exists on entry")
	}
	if cs.lastTap != 0 {
		t.Errorf("lastTap = %v, want cleared on leaving drag", cs.lastTap)
	}
}

func TestPinchMoveEmitsPinchEffect(t *testing.T) {
	cs := NewClassifierState()
	cs, _ = cs.TouchMove([]Vec2{{100, 100}, {200, 100}}, 2, 1.0)

	cs, effects := cs.TouchMove([]Vec2{{50, 100}, {250, 100}}, 2, 1.016)

	if len(effects) != 1 || effects[0].Kind != EffectPinchMove {
		t.Fatalf("effects = %v, want one pinch move", kinds(effects))
	}
	assertNear(t, "from distance", effects[0].PinchFrom.Distance, 100)
	assertNear(t, "to distance", effects[0].PinchTo.Distance, 200)
	assertNear(t, "from center X", effects[0].PinchFrom.Center.X, 150)
	assertNear(t, "to center X", effects[0].PinchTo.Center.X, 150)

	if cs.Phase() != GesturePinch {
		t.Errorf("phase = %v, want pinch", cs.Phase())
	}
}

func TestPinchEntryOnlyFiresOnce(t *testing.T) {
	cs := NewClassifierState()
	cs, _ = cs.TouchMove([]Vec2{{100, 100}, {200, 100}}, 2, 1.0)

	_, effects := cs.TouchMove([]Vec2{{90, 100}, {210, 100}}, 2, 1.016)

	if hasEffect(effects, EffectMarkZooming) || hasEffect(effects, EffectRealignPage) {
		t.Errorf("entry effects repeated on continued pinch: %v", kinds(effects))
	}
}

func TestFingerLiftedFromPinchReinitializesDrag(t *testing.T) {
	cs := NewClassifierState()
	cs, _ = cs.TouchMove([]Vec2{{100, 100}, {200, 100}}, 2, 1.0)

	cs, effects := cs.TouchMove([]Vec2{{120, 100}}, 1, 1.016)

	if cs.Phase() != GestureDrag {
		t.Fatalf("phase = %v, want drag", cs.Phase())
	}
	if hasEffect(effects, EffectMove) {
		t.Error("no move delta exists across a pinch-to-drag transition")
	}
}

func TestMultiFingerStartDefersToMoveLogic(t *testing.T) {
	cs := NewClassifierState()

	// Two fingers may arrive directly in a start callback.
	cs, effects := cs.TouchStart([]Vec2{{100, 100}, {200, 100}}, 2, 1.0)

	if cs.Phase() != GesturePinch {
		t.Fatalf("phase = %v, want pinch", cs.Phase())
	}
	if !hasEffect(effects, EffectMarkZooming) {
		t.Error("pinch entry via start should mark zooming")
	}
}

// --- defensive fallbacks ---

func TestUnrecognizedTouchesFallBackToNone(t *testing.T) {
	tests := []struct {
		name    string
		touches []Vec2
		count   int
	}{
		{"no touches", nil, 0},
		{"count exceeds array", []Vec2{{100, 100}}, 2},
		{"single reported but array empty", nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := NewClassifierState()
			cs, _ = cs.TouchStart([]Vec2{{100, 50}}, 1, 1.0)

			cs, effects := cs.TouchMove(tt.touches, tt.count, 1.016)

			if cs.Phase() != GestureNone {
				t.Errorf("phase = %v, want none", cs.Phase())
			}
			if len(effects) != 0 {
				t.Errorf("unexpected effects: %v", kinds(effects))
			}
		})
	}
}

// --- double tap ---

func TestDoubleTapDetected(t *testing.T) {
	cs := NewClassifierState()
	cs, _ = cs.TouchStart([]Vec2{{200, 150}}, 1, 1.0)
	cs, _ = cs.TouchEnd()

	cs, effects := cs.TouchStart([]Vec2{{200, 150}}, 1, 1.2)

	if len(effects) != 1 || effects[0].Kind != EffectDoubleTapZoom {
		t.Fatalf("effects = %v, want double-tap zoom", kinds(effects))
	}
	if effects[0].At != (Vec2{200, 150}) {
		t.Errorf("At = %v, want {200 150}", effects[0].At)
	}
	if cs.lastTap != 0 {
		t.Errorf("lastTap = %v, want consumed", cs.lastTap)
	}
}

func TestSlowSecondTapIsNotDoubleTap(t *testing.T) {
	cs := NewClassifierState()
	cs, _ = cs.TouchStart([]Vec2{{200, 150}}, 1, 1.0)
	cs, _ = cs.TouchEnd()

	cs, effects := cs.TouchStart([]Vec2{{200, 150}}, 1, 1.5)

	if hasEffect(effects, EffectDoubleTapZoom) {
		t.Error("tap outside the window should not double-tap")
	}
	if cs.Phase() != GestureDrag {
		t.Errorf("phase = %v, want drag", cs.Phase())
	}
}

func TestDoubleTapIgnoredWhileDragging(t *testing.T) {
	cs := NewClassifierState()
	cs, _ = cs.TouchStart([]Vec2{{200, 150}}, 1, 1.0)

	// A second down while already dragging (platform quirk) must not zoom.
	_, effects := cs.TouchStart([]Vec2{{200, 150}}, 1, 1.1)

	if hasEffect(effects, EffectDoubleTapZoom) {
		t.Error("double tap should not fire while a drag is tracked")
	}
}

func TestTapClockClearedByPinch(t *testing.T) {
	cs := NewClassifierState()
	cs, _ = cs.TouchStart([]Vec2{{200, 150}}, 1, 1.0)
	cs, _ = cs.TouchMove([]Vec2{{100, 100}, {200, 100}}, 2, 1.05)
	cs, _ = cs.TouchEnd()

	// Within the window of the first down, but the pinch cleared the clock.
	_, effects := cs.TouchStart([]Vec2{{200, 150}}, 1, 1.2)

	if hasEffect(effects, EffectDoubleTapZoom) {
		t.Error("pinch in between should prevent double-tap detection")
	}
}

// --- claim predicate ---

func TestShouldClaim(t *testing.T) {
	tests := []struct {
		name    string
		zooming bool
		count   int
		want    bool
	}{
		{"idle single touch", false, 1, false},
		{"idle no touch", false, 0, false},
		{"two fingers", false, 2, true},
		{"zooming single touch", true, 1, true},
		{"zooming no touch", true, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldClaim(tt.zooming, tt.count); got != tt.want {
				t.Errorf("shouldClaim(%v, %v) = %v, want %v", tt.zooming, tt.count, got, tt.want)
			}
		})
	}
}
