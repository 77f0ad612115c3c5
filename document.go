package magnetic

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the document X and Y offsets.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Document is the page every element group lives in. It owns the
// document-level root element (the one receiving the active class while any
// button is hovered) and the scroll offsets used to convert between page and
// viewport coordinates.
type Document struct {
	// Root receives ClassActive while a controller is hovered. May be nil.
	Root *Element

	// ScrollX and ScrollY are the page offsets of the viewport's top-left corner.
	ScrollX, ScrollY float64

	// Viewport is the visible size. Scrolling is clamped to Content minus Viewport
	// when Content is non-zero.
	Viewport Vec2
	Content  Vec2

	scrollTween *scrollAnim
	active      map[string]int
}

// NewDocument creates a document with a root element sized to the viewport.
func NewDocument(width, height float64) *Document {
	return &Document{
		Root:     NewElement("body", 0, 0, width, height),
		Viewport: Vec2{width, height},
	}
}

// ScrollBy moves the scroll offsets by (dx, dy) immediately, cancelling any
// scroll animation.
func (d *Document) ScrollBy(dx, dy float64) {
	d.scrollTween = nil
	d.ScrollX += dx
	d.ScrollY += dy
	d.clamp()
}

// ScrollTo animates the scroll offsets to (x, y) over duration seconds.
// A nil easeFn scrolls linearly.
func (d *Document) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	d.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(d.ScrollX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(d.ScrollY), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in flight.
func (d *Document) Scrolling() bool {
	return d.scrollTween != nil
}

// Update advances the scroll animation by dt seconds.
func (d *Document) Update(dt float32) {
	if d.scrollTween == nil {
		return
	}
	if !d.scrollTween.doneX {
		val, done := d.scrollTween.tweenX.Update(dt)
		d.ScrollX = float64(val)
		d.scrollTween.doneX = done
	}
	if !d.scrollTween.doneY {
		val, done := d.scrollTween.tweenY.Update(dt)
		d.ScrollY = float64(val)
		d.scrollTween.doneY = done
	}
	if d.scrollTween.doneX && d.scrollTween.doneY {
		d.scrollTween = nil
	}
	d.clamp()
}

// clamp keeps the scroll offsets inside the scrollable range.
func (d *Document) clamp() {
	if d.Content.X > 0 {
		d.ScrollX = math.Max(0, math.Min(d.ScrollX, math.Max(0, d.Content.X-d.Viewport.X)))
	}
	if d.Content.Y > 0 {
		d.ScrollY = math.Max(0, math.Min(d.ScrollY, math.Max(0, d.Content.Y-d.Viewport.Y)))
	}
}

// acquireRootClass adds class to the document root. Classes are reference
// counted so that one controller leaving does not strip the class while
// another controller is still hovered.
func (d *Document) acquireRootClass(class string) {
	if d.active == nil {
		d.active = make(map[string]int)
	}
	d.active[class]++
	if d.Root != nil {
		d.Root.AddClass(class)
	}
}

// releaseRootClass drops one reference to class and removes it from the
// document root when the last holder releases it.
func (d *Document) releaseRootClass(class string) {
	if d.active[class] > 0 {
		d.active[class]--
	}
	if d.active[class] > 0 {
		return
	}
	delete(d.active, class)
	if d.Root != nil {
		d.Root.RemoveClass(class)
	}
}
