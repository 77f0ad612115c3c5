package magnetic

// capability is the set of optional elements resolved at construction.
type capability uint8

const (
	capLabel      capability = 1 << iota // label wrapper present: parallax write
	capTransition                        // filler, label and label inner all present
)

// Host bundles the collaborators a Controller is attached to. Several
// controllers normally share one Host.
type Host struct {
	Document  *Document
	Pointer   PointerSource
	Animator  TransitionAnimator
	Scheduler *FrameScheduler

	// Events receives hover edges. May be nil.
	Events EventStore
}

// Controller drives the magnetic effect of one element group. Each frame it
// measures the pointer distance to the root's center, runs the hover state
// machine, smooths the pull toward the pointer and writes the resulting
// translates to the root and, inverted, to the label.
//
// A controller built on a nil root, or without a pointer or scheduler, is
// inert: Start does nothing.
type Controller struct {
	cfg  Config
	doc  *Document
	ptr  PointerSource
	anim TransitionAnimator
	evs  EventStore
	loop *FrameLoop

	root       *Element
	label      *Element
	labelInner *Element
	filler     *Element
	caps       capability

	radius float64
	hover  HoverMachine
	tx, ty SmoothedAxis
	target Vec2

	// OnEnter and OnLeave, when set, run after the built-in edge side effects.
	OnEnter func(c *Controller)
	OnLeave func(c *Controller)
}

// NewController resolves the optional descendants of root by class, computes
// the trigger radius from root's width and prepares a stopped frame loop.
// An invalid cfg is replaced by DefaultConfig.
func NewController(root *Element, host Host, cfg Config) *Controller {
	if err := cfg.Validate(); err != nil {
		debugf("config rejected, using defaults: %v", err)
		cfg = DefaultConfig()
	}
	c := &Controller{
		cfg:  cfg,
		doc:  host.Document,
		ptr:  host.Pointer,
		anim: host.Animator,
		evs:  host.Events,
		root: root,
		tx:   SmoothedAxis{Amt: cfg.Smoothing},
		ty:   SmoothedAxis{Amt: cfg.Smoothing},
	}
	if c.doc == nil {
		c.doc = &Document{}
	}
	if root == nil || host.Pointer == nil || host.Scheduler == nil {
		return c
	}

	c.label = root.Query(cfg.LabelClass)
	c.labelInner = root.Query(cfg.LabelInnerClass)
	c.filler = root.Query(cfg.FillerClass)
	if c.label != nil {
		c.caps |= capLabel
	}
	if c.label != nil && c.labelInner != nil && c.filler != nil {
		c.caps |= capTransition
	}

	c.radius = TriggerRadius(root.LayoutBounds(c.doc).Width, cfg.TriggerScale)
	debugCheckTriggerRadius(root, c.radius)
	c.loop = NewFrameLoop(host.Scheduler, c.tick)
	return c
}

// Start begins (or resumes) the frame loop. Returns false if the controller
// is inert or already running.
func (c *Controller) Start() bool {
	if c.loop == nil {
		return false
	}
	if !c.loop.Start() {
		return false
	}
	debugf("loop started for %q", c.root.Name)
	return true
}

// Stop cancels the pending frame. The element keeps its last translate and
// the hover state is left unchanged; Start resumes from there.
func (c *Controller) Stop() bool {
	if c.loop == nil || !c.loop.Cancel() {
		return false
	}
	debugf("loop cancelled for %q", c.root.Name)
	return true
}

// Running reports whether the frame loop is active.
func (c *Controller) Running() bool {
	return c.loop != nil && c.loop.Running()
}

// Inert reports whether the controller was built without the collaborators
// it needs and will never render.
func (c *Controller) Inert() bool {
	return c.loop == nil
}

// State returns the hover state.
func (c *Controller) State() HoverState {
	return c.hover.State()
}

// Radius returns the trigger radius computed at construction.
func (c *Controller) Radius() float64 {
	return c.radius
}

// Offset returns the smoothed translate currently applied to the root.
func (c *Controller) Offset() Vec2 {
	return Vec2{c.tx.Previous, c.ty.Previous}
}

// Target returns the translate the smoother is heading to.
func (c *Controller) Target() Vec2 {
	return c.target
}

// Settled reports whether both axes have reached their targets.
func (c *Controller) Settled() bool {
	return c.tx.Settled() && c.ty.Settled()
}

// Root returns the root element (nil for a controller built on nil).
func (c *Controller) Root() *Element { return c.root }

// Label returns the label wrapper, or nil.
func (c *Controller) Label() *Element { return c.label }

// LabelInner returns the label inner element, or nil.
func (c *Controller) LabelInner() *Element { return c.labelInner }

// Filler returns the filler layer, or nil.
func (c *Controller) Filler() *Element { return c.filler }

// HasParallax reports whether the label wrapper was found.
func (c *Controller) HasParallax() bool { return c.caps&capLabel != 0 }

// HasTransition reports whether enter/leave transitions will be played.
func (c *Controller) HasTransition() bool { return c.caps&capTransition != 0 }

// Tick runs one frame outside the loop. Hosts normally let the scheduler
// call it; Tick is exposed for hosts that drive controllers directly.
func (c *Controller) Tick() {
	if c.loop == nil {
		return
	}
	c.tick()
}

func (c *Controller) tick() {
	scroll := Vec2{c.doc.ScrollX, c.doc.ScrollY}
	center := Center(c.root.LayoutBounds(c.doc))
	if c.cfg.PageSpaceCenter {
		center = center.Add(scroll)
	}
	p := c.ptr.Position().Add(scroll)

	dist := Distance(p, center)
	inside := dist < c.radius
	switch edge := c.hover.Update(inside); edge {
	case EdgeEnter:
		c.enter()
		c.emit(edge, p, dist)
	case EdgeLeave:
		c.leave()
		c.emit(edge, p, dist)
	}

	c.target = Vec2{}
	if inside {
		c.target = p.Sub(center).Scale(c.cfg.OffsetScale)
	}
	c.tx.Current = c.target.X
	c.ty.Current = c.target.Y
	c.tx.Step(c.cfg.SnapEpsilon)
	c.ty.Step(c.cfg.SnapEpsilon)

	c.root.TranslateX = c.tx.Previous
	c.root.TranslateY = c.ty.Previous
	if c.caps&capLabel != 0 {
		c.label.TranslateX = -c.tx.Previous * c.cfg.ParallaxScale
		c.label.TranslateY = -c.ty.Previous * c.cfg.ParallaxScale
	}
}

func (c *Controller) enter() {
	debugf("enter %q", c.root.Name)
	c.root.AddClass(c.cfg.HoverClass)
	c.doc.acquireRootClass(c.cfg.ActiveClass)
	if c.caps&capTransition != 0 && c.anim != nil {
		c.anim.PlayEnter(c.filler, c.labelInner)
	}
	if c.OnEnter != nil {
		c.OnEnter(c)
	}
}

func (c *Controller) leave() {
	debugf("leave %q", c.root.Name)
	c.root.RemoveClass(c.cfg.HoverClass)
	c.doc.releaseRootClass(c.cfg.ActiveClass)
	if c.caps&capTransition != 0 && c.anim != nil {
		c.anim.PlayLeave(c.filler, c.labelInner)
	}
	if c.OnLeave != nil {
		c.OnLeave(c)
	}
}

func (c *Controller) emit(edge HoverEdge, p Vec2, dist float64) {
	if c.evs == nil {
		return
	}
	c.evs.EmitEvent(HoverEvent{
		Type:      edge,
		ElementID: c.root.ID,
		Name:      c.root.Name,
		PointerX:  p.X,
		PointerY:  p.Y,
		Distance:  dist,
		Radius:    c.radius,
	})
}
