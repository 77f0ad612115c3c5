// Package ebitenview hosts magnetic buttons in an Ebitengine game: it polls
// the cursor and wheel, drives the frame scheduler and tween animator, and
// draws each button from its rasterized skin.
package ebitenview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/magnetic"
)

// wheelStep is the scroll distance in pixels of one wheel notch.
const wheelStep = 40

// Scene owns the document, the shared pointer tracker and every button in it.
type Scene struct {
	// ClearColor fills the screen before drawing. A zero alpha skips the fill.
	ClearColor magnetic.Color

	doc      *magnetic.Document
	tracker  *magnetic.PointerTracker
	sched    *magnetic.FrameScheduler
	anim     *magnetic.TweenAnimator
	cfg      magnetic.Config
	buttons  []*Button
	wrappers []*magnetic.HoverWrapper
	runner   *magnetic.TestRunner
	events   eventRelay
	onUpdate func(dt float64)

	// Input sources, replaceable for headless runs.
	cursor func() (int, int)
	wheel  func() (float64, float64)
}

// NewScene creates a scene with a width x height viewport. Buttons added to
// it use cfg.
func NewScene(width, height float64, cfg magnetic.Config) *Scene {
	return &Scene{
		doc:     magnetic.NewDocument(width, height),
		tracker: magnetic.NewPointerTracker(),
		sched:   magnetic.NewFrameScheduler(),
		anim:    magnetic.NewTweenAnimator(),
		cfg:     cfg,
		cursor:  ebiten.CursorPosition,
		wheel:   ebiten.Wheel,
	}
}

// Document returns the scene's document.
func (s *Scene) Document() *magnetic.Document { return s.doc }

// Pointer returns the tracker shared by all buttons.
func (s *Scene) Pointer() *magnetic.PointerTracker { return s.tracker }

// Buttons returns the buttons in insertion order.
func (s *Scene) Buttons() []*Button { return s.buttons }

// SetDebugMode enables magnetic diagnostics on stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	magnetic.SetDebugMode(enabled)
}

// SetEventStore forwards hover edges of every button, including buttons
// already added, to store. Pass nil to stop forwarding.
func (s *Scene) SetEventStore(store magnetic.EventStore) {
	s.events.store = store
}

// eventRelay lets SetEventStore apply to controllers created earlier.
type eventRelay struct {
	store magnetic.EventStore
}

func (r *eventRelay) EmitEvent(e magnetic.HoverEvent) {
	if r.store != nil {
		r.store.EmitEvent(e)
	}
}

// SetUpdateFunc sets a callback run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func(dt float64)) {
	s.onUpdate = fn
}

// SetTestRunner attaches a script that drives the pointer and scroll. Real
// cursor input is ignored until the script is done.
func (s *Scene) SetTestRunner(r *magnetic.TestRunner) {
	s.runner = r
}

// AddButton builds a button group, rasterizes its skin and starts its
// controller.
func (s *Scene) AddButton(opts ButtonOptions) (*Button, error) {
	style := DefaultSkinStyle()
	if opts.Style != nil {
		style = *opts.Style
	}
	label := opts.Label
	if opts.NoLabel {
		label = ""
	}
	skin, err := RenderSkin(int(opts.Width), int(opts.Height), label, style)
	if err != nil {
		return nil, fmt.Errorf("button %q: %w", opts.Name, err)
	}

	root := newButtonGroup(opts, s.cfg)
	s.doc.Root.AddChild(root)
	ctrl := magnetic.NewController(root, magnetic.Host{
		Document:  s.doc,
		Pointer:   s.tracker,
		Animator:  s.anim,
		Scheduler: s.sched,
		Events:    &s.events,
	}, s.cfg)
	ctrl.Start()

	b := &Button{Name: opts.Name, Root: root, Controller: ctrl, skin: skin}
	s.buttons = append(s.buttons, b)
	return b, nil
}

// AddHoverWrapper tracks pointer containment of e. onChange may be nil.
func (s *Scene) AddHoverWrapper(e *magnetic.Element, onChange func(hovered bool)) *magnetic.HoverWrapper {
	w := &magnetic.HoverWrapper{Element: e, OnChange: onChange}
	s.wrappers = append(s.wrappers, w)
	return w
}

// Update advances the scene by one tick.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.step(dt)
}

func (s *Scene) step(dt float32) {
	scripted := s.runner != nil && !s.runner.Done()
	if s.runner != nil {
		s.runner.Step(s.tracker, s.doc)
	}
	if !s.tracker.Advance() && !scripted {
		s.pollInput()
	}
	s.doc.Update(dt)

	if s.tracker.Seen() {
		p := s.tracker.Position()
		for _, w := range s.wrappers {
			w.Sync(p, s.doc)
		}
	}

	s.sched.Tick()
	s.anim.Update(dt)

	if s.onUpdate != nil {
		s.onUpdate(float64(dt))
	}
}

// pollInput forwards cursor motion to the tracker and wheel motion to the
// document scroll.
func (s *Scene) pollInput() {
	if s.cursor != nil {
		x, y := s.cursor()
		p := magnetic.Vec2{X: float64(x), Y: float64(y)}
		if !s.tracker.Seen() || p != s.tracker.Position() {
			s.tracker.Move(p.X, p.Y)
		}
	}
	if s.wheel != nil {
		dx, dy := s.wheel()
		if dx != 0 || dy != 0 {
			s.doc.ScrollBy(-dx*wheelStep, -dy*wheelStep)
		}
	}
}

// AnyHovered reports whether any button is in the hover state.
func (s *Scene) AnyHovered() bool {
	return s.doc.Root.HasClass(s.cfg.ActiveClass)
}

// Draw renders every visible button onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.RGBA())
	}
	for _, b := range s.visibleButtons() {
		b.draw(screen, s.doc, s.cfg.HoverClass)
	}
}

// visibleButtons returns the buttons that are visible and overlap the
// viewport at their current translate.
func (s *Scene) visibleButtons() []*Button {
	view := magnetic.Rect{Width: s.doc.Viewport.X, Height: s.doc.Viewport.Y}
	var out []*Button
	for _, b := range s.buttons {
		if b.Root.Visible && b.Root.Bounds(s.doc).Intersects(view) {
			out = append(out, b)
		}
	}
	return out
}
