package pinchview

import "github.com/hajimehoshi/ebiten/v2"

// maxTouches bounds how many simultaneous fingers are read per frame.
// The classifier only ever uses the first two.
const maxTouches = 10

// screenViewport returns the full device screen as a viewport. Used as
// the configuration default when the host does not measure one.
func screenViewport() Viewport {
	w, h := ebiten.Monitor().Size()
	return Viewport{Width: float64(w), Height: float64(h)}
}

// syntheticTouchEvent is a single injected responder event. One event is
// consumed per Poll, matching real per-frame input delivery.
type syntheticTouchEvent struct {
	kind    syntheticKind
	touches []Vec2
}

type syntheticKind uint8

const (
	synthDown syntheticKind = iota
	synthMove
	synthUp
)

// Input polls Ebitengine touch and mouse state once per frame and feeds
// the resulting responder events to a Controller. The mouse, while a
// button is held, acts as a single touch so gestures work on desktop.
type Input struct {
	controller *Controller

	clock  float64
	active bool // a touch sequence was live last frame

	touchIDs  []ebiten.TouchID
	positions []Vec2

	injectQueue []syntheticTouchEvent
}

// NewInput creates an input poller feeding the given controller.
func NewInput(c *Controller) *Input {
	return &Input{
		controller: c,
		touchIDs:   make([]ebiten.TouchID, 0, maxTouches),
		positions:  make([]Vec2, 0, maxTouches),
	}
}

// Poll reads the current input state and forwards start/move/release
// events to the controller. Call once per game Update. Injected events
// take priority over real input, one per frame.
func (in *Input) Poll() {
	in.clock += 1.0 / float64(ebiten.TPS())

	if in.processInjected() {
		return
	}

	in.positions = in.positions[:0]
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		if len(in.positions) == maxTouches {
			break
		}
		x, y := ebiten.TouchPosition(id)
		in.positions = append(in.positions, Vec2{float64(x), float64(y)})
	}

	if len(in.positions) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		in.positions = append(in.positions, Vec2{float64(mx), float64(my)})
	}

	in.feed(in.positions)
}

// feed converts this frame's touch snapshot into a responder event.
func (in *Input) feed(touches []Vec2) {
	count := len(touches)
	switch {
	case count > 0 && !in.active:
		in.active = true
		in.controller.TouchStart(touches, count, in.clock)
	case count > 0:
		in.controller.TouchMove(touches, count, in.clock)
	case in.active:
		in.active = false
		in.controller.TouchRelease()
	}
}

func (in *Input) processInjected() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue[len(in.injectQueue)-1] = syntheticTouchEvent{}
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	switch evt.kind {
	case synthDown:
		in.active = true
		in.controller.TouchStart(evt.touches, len(evt.touches), in.clock)
	case synthMove:
		in.controller.TouchMove(evt.touches, len(evt.touches), in.clock)
	case synthUp:
		in.active = false
		in.controller.TouchRelease()
	}
	return true
}

// --- Synthetic input injection ---

// InjectDown queues a touch-down with the given finger positions,
// consumed on the next Poll.
func (in *Input) InjectDown(touches ...Vec2) {
	in.injectQueue = append(in.injectQueue, syntheticTouchEvent{kind: synthDown, touches: touches})
}

// InjectMove queues a touch-move with the given finger positions.
func (in *Input) InjectMove(touches ...Vec2) {
	in.injectQueue = append(in.injectQueue, syntheticTouchEvent{kind: synthMove, touches: touches})
}

// InjectUp queues the release of all fingers.
func (in *Input) InjectUp() {
	in.injectQueue = append(in.injectQueue, syntheticTouchEvent{kind: synthUp})
}

// InjectTap queues a down followed by an up at the same point.
// Consumes two frames.
func (in *Input) InjectTap(p Vec2) {
	in.InjectDown(p)
	in.InjectUp()
}

// InjectDrag queues a full single-finger drag: down at from, linearly
// interpolated moves over frames-2 intermediate frames, and a release.
// Minimum frames is 2 (down + up).
func (in *Input) InjectDrag(from, to Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectDown(from)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(from.Add(to.Sub(from).Scale(t)))
	}
	in.InjectUp()
}

// InjectPinch queues a full two-finger pinch: both fingers down at their
// from positions, interpolated moves, and a release. Minimum frames is 2.
func (in *Input) InjectPinch(from0, from1, to0, to1 Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectDown(from0, from1)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(
			from0.Add(to0.Sub(from0).Scale(t)),
			from1.Add(to1.Sub(from1).Scale(t)))
	}
	in.InjectUp()
}
