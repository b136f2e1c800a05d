// Package pinchview is a touch-gesture and animation controller for
// horizontally paging image galleries on [Ebitengine].
//
// It classifies raw multi-touch input into single-finger pans and
// two-finger pinches, derives a bounded pan+zoom transform from them with
// pinch-center-relative scaling, and drives a smooth animated convergence
// of the displayed transform toward that target, including double-tap
// zoom shortcuts and elastic snap-back to the neutral view.
//
// # Quick start
//
// Create a [Controller], feed it input once per frame, and apply the
// resulting transform to the currently visible page:
//
//	ctrl := pinchview.New(pinchview.Config{
//		Viewport:  pinchview.Viewport{Width: 640, Height: 480},
//		PageCount: len(images),
//	})
//	input := pinchview.NewInput(ctrl)
//
//	func (g *Game) Update() error {
//		input.Poll()
//		ctrl.Update(1.0 / float32(ebiten.TPS()))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		tf := ctrl.Current()
//		// scale the visible page by tf.Scale around the viewport center
//		// and offset it by tf.Translation; other pages draw untransformed.
//	}
//
// # Architecture
//
// The classifier ([ClassifierState]) is a set of pure transition
// functions over a sealed gesture sum type; each touch event yields a new
// state plus a list of intended side effects. The [Controller] dispatches
// those effects into the [Engine], which owns the target transform,
// clamps it to the zoom and pan bounds, and animates the displayed value
// toward it with [gween] tweens. The [Pager] models the page strip:
// animated page snaps, pinch-time realignment, and pull-to-refresh at
// either edge.
//
// Hosts embedding the gallery in a larger responder hierarchy wire
// [Controller.ShouldClaim] into their gesture-negotiation hooks and
// report the gallery's measured screen origin via [Controller.SetOrigin].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package pinchview
