package magnetic

// HoverState is the two-state hover status of a single controller.
type HoverState uint8

const (
	HoverIdle   HoverState = iota // pointer outside the trigger radius
	HoverActive                   // pointer inside the trigger radius
)

// String returns "idle" or "hover".
func (s HoverState) String() string {
	if s == HoverActive {
		return "hover"
	}
	return "idle"
}

// HoverEdge identifies the transition produced by a HoverMachine update.
type HoverEdge uint8

const (
	EdgeNone  HoverEdge = iota // state unchanged
	EdgeEnter                  // idle -> hover
	EdgeLeave                  // hover -> idle
)

// HoverMachine is an edge-triggered idle/hover state machine. The guarding
// condition is re-evaluated every frame, but Update reports a transition only
// when its truth value flips.
type HoverMachine struct {
	state HoverState
}

// State returns the current state. The zero value is HoverIdle.
func (m *HoverMachine) State() HoverState {
	return m.state
}

// Update feeds the current inside-radius condition and returns the edge it
// caused, if any.
func (m *HoverMachine) Update(inside bool) HoverEdge {
	switch {
	case inside && m.state == HoverIdle:
		m.state = HoverActive
		return EdgeEnter
	case !inside && m.state == HoverActive:
		m.state = HoverIdle
		return EdgeLeave
	}
	return EdgeNone
}

// HoverWrapper is a stateless enter/leave toggle for elements that only need
// to know whether the pointer is over them (gallery tiles, captions). It has
// no radius and no smoothing.
type HoverWrapper struct {
	Element  *Element
	Hovered  bool
	OnChange func(hovered bool)
}

// Enter marks the wrapper hovered.
func (w *HoverWrapper) Enter() { w.set(true) }

// Leave clears the hovered flag.
func (w *HoverWrapper) Leave() { w.set(false) }

func (w *HoverWrapper) set(v bool) {
	if w.Hovered == v {
		return
	}
	w.Hovered = v
	if w.OnChange != nil {
		w.OnChange(v)
	}
}

// Sync enters or leaves depending on whether p lies inside the wrapped
// element's viewport bounds. A wrapper without an element never hovers.
func (w *HoverWrapper) Sync(p Vec2, doc *Document) {
	if w.Element == nil {
		w.Leave()
		return
	}
	if w.Element.Bounds(doc).Contains(p.X, p.Y) {
		w.Enter()
	} else {
		w.Leave()
	}
}
