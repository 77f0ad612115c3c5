package magnetic

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// recordingAnimator counts enter/leave calls and the elements they received.
type recordingAnimator struct {
	enters, leaves int
	lastFiller     *Element
	lastInner      *Element
}

func (r *recordingAnimator) PlayEnter(filler, inner *Element) {
	r.enters++
	r.lastFiller, r.lastInner = filler, inner
}

func (r *recordingAnimator) PlayLeave(filler, inner *Element) {
	r.leaves++
	r.lastFiller, r.lastInner = filler, inner
}

type fixture struct {
	doc     *Document
	tracker *PointerTracker
	sched   *FrameScheduler
	anim    *recordingAnimator
	root    *Element
}

// newFixture builds a 100x50 button centered at (500, 500). With layers set
// it gets a label wrapper, a label inner element and a filler.
func newFixture(layers bool) *fixture {
	f := &fixture{
		doc:     NewDocument(1000, 1000),
		tracker: NewPointerTracker(),
		sched:   NewFrameScheduler(),
		anim:    &recordingAnimator{},
		root:    NewElement("cta", 450, 475, 100, 50),
	}
	if layers {
		label := NewElement("label", 0, 0, 100, 50, ClassLabel)
		label.AddChild(NewElement("inner", 0, 0, 100, 50, ClassLabelInner))
		f.root.AddChild(label)
		f.root.AddChild(NewElement("filler", 0, 0, 100, 50, ClassFiller))
	}
	return f
}

func (f *fixture) host() Host {
	return Host{Document: f.doc, Pointer: f.tracker, Animator: f.anim, Scheduler: f.sched}
}

func (f *fixture) controller(cfg Config) *Controller {
	c := NewController(f.root, f.host(), cfg)
	c.Start()
	return c
}

func TestControllerResolvesCapabilities(t *testing.T) {
	f := newFixture(true)
	c := NewController(f.root, f.host(), DefaultConfig())
	if !c.HasParallax() || !c.HasTransition() {
		t.Errorf("parallax = %v, transition = %v, want both", c.HasParallax(), c.HasTransition())
	}
	if c.Label() == nil || c.LabelInner() == nil || c.Filler() == nil {
		t.Error("optional elements not resolved")
	}
	if !approxEqual(c.Radius(), 70, 1e-9) {
		t.Errorf("Radius = %v, want 70", c.Radius())
	}
	if c.Running() {
		t.Error("controller should not run before Start")
	}
}

func TestControllerEnterLeaveScenario(t *testing.T) {
	f := newFixture(true)
	c := f.controller(DefaultConfig())

	f.tracker.Move(540, 500)
	f.sched.Tick()

	if f.anim.enters != 1 {
		t.Fatalf("enters = %d, want 1", f.anim.enters)
	}
	if c.State() != HoverActive {
		t.Errorf("state = %v, want hover", c.State())
	}
	if tg := c.Target(); !approxEqual(tg.X, 12, 1e-9) || tg.Y != 0 {
		t.Errorf("target = %v, want (12, 0)", tg)
	}
	if !f.root.HasClass(ClassHover) || !f.doc.Root.HasClass(ClassActive) {
		t.Error("hover/active classes not applied")
	}
	if f.anim.lastFiller != c.Filler() || f.anim.lastInner != c.LabelInner() {
		t.Error("animator received the wrong elements")
	}

	f.tracker.Move(600, 500)
	f.sched.Tick()

	if f.anim.leaves != 1 {
		t.Fatalf("leaves = %d, want 1", f.anim.leaves)
	}
	if c.State() != HoverIdle {
		t.Errorf("state = %v, want idle", c.State())
	}
	if tg := c.Target(); tg != (Vec2{}) {
		t.Errorf("target = %v, want zero", tg)
	}
	if f.root.HasClass(ClassHover) || f.doc.Root.HasClass(ClassActive) {
		t.Error("hover/active classes not removed")
	}
}

func TestControllerEdgeTriggeredOncePerCrossing(t *testing.T) {
	for _, name := range []string{"fixed center", "default pull"} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(true)
			cfg := DefaultConfig()
			if name == "fixed center" {
				cfg.OffsetScale = 0
			}
			f.controller(cfg)

			// Inward from far left, linger, then outward to the far right.
			f.tracker.InjectPath(200, 500, 500, 500, 40)
			for i := 0; i < 30; i++ {
				f.tracker.InjectMove(510, 505)
			}
			f.tracker.InjectPath(500, 500, 900, 500, 40)
			for i := 0; i < 30; i++ {
				f.tracker.InjectMove(900, 500)
			}
			for f.tracker.Advance() {
				f.sched.Tick()
			}

			if f.anim.enters != 1 || f.anim.leaves != 1 {
				t.Errorf("enters = %d, leaves = %d, want 1 and 1", f.anim.enters, f.anim.leaves)
			}
		})
	}
}

func TestControllerConvergesAndStaysStable(t *testing.T) {
	f := newFixture(true)
	c := f.controller(DefaultConfig())
	f.tracker.Move(540, 520)

	prev := c.Offset()
	settledAt := -1
	for i := 0; i < 500; i++ {
		f.sched.Tick()
		o := c.Offset()
		if o.X < prev.X || o.Y < prev.Y {
			t.Fatalf("tick %d: offset moved backwards %v -> %v", i, prev, o)
		}
		if o.X > 12+1e-9 || o.Y > 6+1e-9 {
			t.Fatalf("tick %d: offset overshot %v", i, o)
		}
		if settledAt < 0 && c.Settled() {
			settledAt = i
		}
		prev = o
	}
	if settledAt < 0 {
		t.Fatal("offset never settled")
	}
	if o := c.Offset(); !approxEqual(o.X, 12, 1e-9) || !approxEqual(o.Y, 6, 1e-9) {
		t.Errorf("offset = %v, want (12, 6)", o)
	}
	if f.root.TranslateX != c.Offset().X || f.root.TranslateY != c.Offset().Y {
		t.Error("root translate not written from the smoothed offset")
	}
	label := c.Label()
	if !approxEqual(label.TranslateX, -12*0.6, 1e-9) || !approxEqual(label.TranslateY, -6*0.6, 1e-9) {
		t.Errorf("label translate = (%v, %v), want inverse parallax", label.TranslateX, label.TranslateY)
	}
}

func TestControllerRelaxesToZeroAfterLeave(t *testing.T) {
	f := newFixture(false)
	c := f.controller(DefaultConfig())

	f.tracker.Move(540, 500)
	for i := 0; i < 20; i++ {
		f.sched.Tick()
	}
	f.tracker.Move(900, 900)
	for i := 0; i < 300; i++ {
		f.sched.Tick()
	}
	if c.Offset() != (Vec2{}) {
		t.Errorf("offset = %v, want exactly zero after relaxing", c.Offset())
	}
	if !c.Running() {
		t.Error("leave must not stop the loop")
	}
}

func TestControllerMissingLayers(t *testing.T) {
	f := newFixture(false)
	c := f.controller(DefaultConfig())
	if c.HasParallax() || c.HasTransition() {
		t.Error("no optional layers should be detected")
	}

	f.tracker.Move(540, 500)
	for i := 0; i < 5; i++ {
		f.sched.Tick()
	}
	if c.State() != HoverActive {
		t.Fatal("root-only controller should still hover")
	}
	if f.root.TranslateX == 0 {
		t.Error("root transform should update without layers")
	}

	f.tracker.Move(600, 500)
	f.sched.Tick()
	if c.State() != HoverIdle {
		t.Error("root-only controller should leave")
	}
	if f.anim.enters != 0 || f.anim.leaves != 0 {
		t.Errorf("animator invoked without layers: %d enters, %d leaves", f.anim.enters, f.anim.leaves)
	}
	if !c.Running() {
		t.Error("loop should keep running without a label")
	}
}

func TestControllerLabelWithoutFiller(t *testing.T) {
	f := newFixture(false)
	f.root.AddChild(NewElement("label", 0, 0, 100, 50, ClassLabel))
	c := f.controller(DefaultConfig())
	if !c.HasParallax() || c.HasTransition() {
		t.Errorf("parallax = %v, transition = %v, want parallax only", c.HasParallax(), c.HasTransition())
	}
	f.tracker.Move(540, 500)
	f.sched.Tick()
	if f.anim.enters != 0 {
		t.Error("transition played without filler")
	}
	if c.Label().TranslateX >= 0 {
		t.Errorf("label translate = %v, want negative parallax", c.Label().TranslateX)
	}
}

func TestControllerNilRootIsInert(t *testing.T) {
	f := newFixture(false)
	c := NewController(nil, f.host(), DefaultConfig())
	if !c.Inert() {
		t.Error("nil root should give an inert controller")
	}
	if c.Start() {
		t.Error("Start on inert controller should fail")
	}
	if f.sched.Pending() != 0 {
		t.Error("inert controller scheduled a frame")
	}
	c.Tick()
	if c.Stop() {
		t.Error("Stop on inert controller should fail")
	}
}

func TestControllerMissingCollaboratorsIsInert(t *testing.T) {
	f := newFixture(true)
	if c := NewController(f.root, Host{Document: f.doc, Scheduler: f.sched}, DefaultConfig()); !c.Inert() {
		t.Error("controller without pointer should be inert")
	}
	if c := NewController(f.root, Host{Document: f.doc, Pointer: f.tracker}, DefaultConfig()); !c.Inert() {
		t.Error("controller without scheduler should be inert")
	}
}

func TestControllerNilAnimatorAndDocument(t *testing.T) {
	f := newFixture(true)
	c := NewController(f.root, Host{Pointer: StaticPointer{540, 500}, Scheduler: f.sched}, DefaultConfig())
	c.Start()
	f.sched.Tick()
	if c.State() != HoverActive {
		t.Error("controller without animator or document should still hover")
	}
}

func TestControllerStopAndRestart(t *testing.T) {
	f := newFixture(true)
	c := f.controller(DefaultConfig())
	f.tracker.Move(540, 500)
	f.sched.Tick()

	if !c.Stop() {
		t.Fatal("Stop should succeed")
	}
	before := c.Offset()
	f.sched.Tick()
	f.sched.Tick()
	if c.Offset() != before {
		t.Error("offset changed while stopped")
	}

	// Leave while stopped is not observed; re-entering after restart still renders.
	if !c.Start() {
		t.Fatal("Start after Stop should succeed")
	}
	f.sched.Tick()
	if c.Offset() == before {
		t.Error("restart did not resume rendering")
	}
	if f.anim.enters != 1 {
		t.Errorf("enters = %d, want 1 (state kept across stop)", f.anim.enters)
	}
}

func TestControllerReenterAfterLeaveKeepsRendering(t *testing.T) {
	f := newFixture(true)
	c := f.controller(DefaultConfig())

	f.tracker.Move(540, 500)
	f.sched.Tick()
	f.tracker.Move(900, 500)
	f.sched.Tick()
	f.tracker.Move(520, 500)
	f.sched.Tick()
	f.sched.Tick()

	if f.anim.enters != 2 || f.anim.leaves != 1 {
		t.Errorf("enters = %d, leaves = %d, want 2 and 1", f.anim.enters, f.anim.leaves)
	}
	if c.State() != HoverActive || c.Target().X <= 0 {
		t.Errorf("state = %v, target = %v, want hovering with a pull", c.State(), c.Target())
	}
}

func TestControllerScrollAdjustsPointerOnly(t *testing.T) {
	f := newFixture(false)
	c := f.controller(DefaultConfig())

	// The element center is measured in viewport space (500, 400) while the
	// pointer is shifted into page space (500, 500): 100px apart.
	f.doc.ScrollY = 100
	f.tracker.Move(500, 400)
	f.sched.Tick()
	if c.State() != HoverIdle {
		t.Error("scroll-adjusted pointer should be outside the radius")
	}

	f.tracker.Move(500, 300)
	f.sched.Tick()
	if c.State() != HoverActive {
		t.Error("pointer at page-space center should hover")
	}
}

func TestControllerPageSpaceCenter(t *testing.T) {
	f := newFixture(false)
	cfg := DefaultConfig()
	cfg.PageSpaceCenter = true
	c := f.controller(cfg)

	f.doc.ScrollY = 300
	// Element center in viewport space is (500, 200).
	f.tracker.Move(510, 200)
	f.sched.Tick()
	if c.State() != HoverActive {
		t.Error("page-space center should follow the scrolled element")
	}
	if tg := c.Target(); !approxEqual(tg.X, 3, 1e-9) || !approxEqual(tg.Y, 0, 1e-9) {
		t.Errorf("target = %v, want (3, 0)", tg)
	}
}

func TestControllerInvalidConfigFallsBack(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	SetDebugMode(true)
	defer func() {
		SetDebugMode(false)
		SetLogOutput(os.Stderr)
	}()

	f := newFixture(false)
	c := NewController(f.root, f.host(), Config{})
	if !approxEqual(c.Radius(), 70, 1e-9) {
		t.Errorf("Radius = %v, want default 70", c.Radius())
	}
	if !strings.Contains(buf.String(), "config rejected") {
		t.Errorf("expected config warning, got %q", buf.String())
	}
}

func TestControllerCallbacks(t *testing.T) {
	f := newFixture(false)
	c := f.controller(DefaultConfig())
	var log []string
	c.OnEnter = func(*Controller) { log = append(log, "enter") }
	c.OnLeave = func(*Controller) { log = append(log, "leave") }

	f.tracker.Move(500, 500)
	f.sched.Tick()
	f.tracker.Move(0, 0)
	f.sched.Tick()
	if strings.Join(log, ",") != "enter,leave" {
		t.Errorf("callbacks = %v", log)
	}
}

func TestControllersShareDocumentActiveClass(t *testing.T) {
	f := newFixture(false)
	a := f.controller(DefaultConfig())
	other := NewElement("other", 550, 475, 100, 50) // center (600, 500)
	b := NewController(other, f.host(), DefaultConfig())
	b.Start()

	f.tracker.Move(550, 500)
	f.sched.Tick()
	if a.State() != HoverActive || b.State() != HoverActive {
		t.Fatal("both buttons should hover")
	}

	f.tracker.Move(620, 500)
	f.sched.Tick()
	if a.State() != HoverIdle || b.State() != HoverActive {
		t.Fatalf("a = %v, b = %v, want idle and hover", a.State(), b.State())
	}
	if !f.doc.Root.HasClass(ClassActive) {
		t.Error("active class removed while another button is hovered")
	}

	f.tracker.Move(900, 900)
	f.sched.Tick()
	if f.doc.Root.HasClass(ClassActive) {
		t.Error("active class should be removed once no button is hovered")
	}
}

type eventLog []HoverEvent

func (l *eventLog) EmitEvent(e HoverEvent) { *l = append(*l, e) }

func TestControllerEmitsHoverEvents(t *testing.T) {
	f := newFixture(false)
	var events eventLog
	host := f.host()
	host.Events = &events
	c := NewController(f.root, host, DefaultConfig())
	c.Start()

	f.tracker.Move(540, 500)
	f.sched.Tick()
	f.tracker.Move(600, 500)
	f.sched.Tick()

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Type != EdgeEnter || events[0].ElementID != f.root.ID || events[0].Name != "cta" {
		t.Errorf("event 0 = %+v", events[0])
	}
	if !approxEqual(events[0].Distance, 40, 1e-9) || !approxEqual(events[0].Radius, 70, 1e-9) {
		t.Errorf("event 0 distance/radius = %v/%v", events[0].Distance, events[0].Radius)
	}
	if events[1].Type != EdgeLeave || events[1].PointerX != 600 {
		t.Errorf("event 1 = %+v", events[1])
	}
}
