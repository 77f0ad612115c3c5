package magnetic

// Marker classes recognized inside a magnetic element group.
const (
	ClassLabel      = "button__text"
	ClassLabelInner = "button__text-inner"
	ClassFiller     = "button__filler"
	ClassHover      = "button--hover"
	ClassActive     = "active"
)

// elementIDCounter is a plain counter (no atomic; the package is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is a retained interface element: a box in page space with a class
// list, a per-frame translate and the presentation fields written by
// transitions. Children are positioned relative to their parent and inherit
// its translate.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element
	classes  []string

	// Layout box, relative to the parent (page space for a root).
	X, Y          float64
	Width, Height float64

	// Translate is written every frame by the controller that owns the element.
	TranslateX, TranslateY float64

	// FillY is a vertical offset expressed as a fraction of Height.
	// Transitions animate it on the filler and label layers.
	FillY float64
	Alpha float64

	Visible bool
}

// NewElement creates a visible, fully opaque element with the given layout
// box and classes.
func NewElement(name string, x, y, width, height float64, classes ...string) *Element {
	e := &Element{
		ID:      nextElementID(),
		Name:    name,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Alpha:   1,
		Visible: true,
	}
	for _, c := range classes {
		e.AddClass(c)
	}
	return e
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("magnetic: cannot add nil child")
	}
	for p := e; p != nil; p = p.Parent {
		if p == child {
			panic("magnetic: adding child would create a cycle")
		}
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("magnetic: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// Query returns the first descendant (depth-first, document order) carrying
// class, or nil. The element itself is not considered.
func (e *Element) Query(class string) *Element {
	for _, c := range e.children {
		if c.HasClass(class) {
			return c
		}
		if found := c.Query(class); found != nil {
			return found
		}
	}
	return nil
}

// --- Classes ---

// AddClass adds class to the element. Adding a present class is a no-op.
func (e *Element) AddClass(class string) {
	if e.HasClass(class) {
		return
	}
	e.classes = append(e.classes, class)
}

// RemoveClass removes class from the element. Removing an absent class is a no-op.
func (e *Element) RemoveClass(class string) {
	for i, c := range e.classes {
		if c == class {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns the class list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Classes() []string {
	return e.classes
}

// --- Geometry ---

// PagePosition returns the element's top-left corner in page space, including
// the translates of the element and all of its ancestors.
func (e *Element) PagePosition() Vec2 {
	var p Vec2
	for n := e; n != nil; n = n.Parent {
		p.X += n.X + n.TranslateX
		p.Y += n.Y + n.TranslateY
	}
	return p
}

// Bounds returns the element's bounding box in viewport coordinates: its page
// position minus the document scroll. Like a live bounding-client rect it
// includes the current translate, so it must be recomputed every frame.
// A nil document means no scroll.
func (e *Element) Bounds(doc *Document) Rect {
	p := e.PagePosition()
	if doc != nil {
		p.X -= doc.ScrollX
		p.Y -= doc.ScrollY
	}
	return Rect{p.X, p.Y, e.Width, e.Height}
}

// LayoutBounds is Bounds without the element's own translate. Ancestor
// translates still apply. Controllers measure against it so the pull toward
// the pointer does not feed back into the distance it is derived from.
func (e *Element) LayoutBounds(doc *Document) Rect {
	return e.Bounds(doc).Translate(-e.TranslateX, -e.TranslateY)
}
