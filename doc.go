// Package magnetic implements cursor-following "magnetic" buttons for
// retained 2D interfaces.
//
// As the pointer approaches a button's center within its trigger radius, the
// button and its inner label drift toward the pointer with exponentially
// smoothed motion, and enter/leave transitions play on a filler layer and on
// the label. The package holds the animation controller only; hosts supply
// frames and pointer input. The [ebitenview] subpackage is a ready-made
// Ebitengine host.
//
// # Quick start
//
//	doc := magnetic.NewDocument(1000, 1000)
//	tracker := magnetic.NewPointerTracker()
//	sched := magnetic.NewFrameScheduler()
//	anim := magnetic.NewTweenAnimator()
//
//	root := magnetic.NewElement("cta", 450, 475, 100, 50)
//	label := magnetic.NewElement("label", 0, 0, 100, 50, magnetic.ClassLabel)
//	label.AddChild(magnetic.NewElement("inner", 0, 0, 100, 50, magnetic.ClassLabelInner))
//	root.AddChild(label)
//	root.AddChild(magnetic.NewElement("filler", 0, 0, 100, 50, magnetic.ClassFiller))
//
//	ctrl := magnetic.NewController(root, magnetic.Host{
//		Document: doc, Pointer: tracker, Animator: anim, Scheduler: sched,
//	}, magnetic.DefaultConfig())
//	ctrl.Start()
//
// and once per frame:
//
//	tracker.Move(cursorX, cursorY)
//	sched.Tick()
//	anim.Update(dt)
//
// # Elements
//
// An [Element] is a box with a class list. A controller's root may contain a
// label wrapper ([ClassLabel]), a label inner element ([ClassLabelInner]) and
// a filler layer ([ClassFiller]). Each one is optional: without the label
// wrapper there is no parallax, and without all three there are no
// enter/leave transitions. The root always moves.
//
// # Frames
//
// [FrameScheduler] behaves like a display-refresh scheduler: callbacks
// requested during one frame run on the next [FrameScheduler.Tick].
// [FrameLoop] keeps a step function running until cancelled. A controller's
// loop runs independently of its hover state; leaving the trigger radius
// does not stop it.
//
// # Events
//
// A [Host] may carry an [EventStore] that receives a [HoverEvent] on every
// hover edge. The ecs submodule publishes them into a Donburi world.
//
// [ebitenview]: https://pkg.go.dev/github.com/phanxgames/magnetic/ebitenview
package magnetic
