package magnetic

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionAnimator plays the enter and leave sequences on a button's filler
// and label layers. Implementations must cancel any effect still running on
// the same elements before starting a new one, so rapid toggling never leaves
// stale animations behind.
type TransitionAnimator interface {
	PlayEnter(filler, labelInner *Element)
	PlayLeave(filler, labelInner *Element)
}

// Field selects the Element property a tween track animates.
type Field uint8

const (
	FieldFillY Field = iota
	FieldAlpha
)

func (f Field) ptr(e *Element) *float64 {
	if f == FieldAlpha {
		return &e.Alpha
	}
	return &e.FillY
}

// Keyframe is one tween on a timeline. It starts At seconds after the
// timeline begins, optionally snapping the field to From first, and eases the
// field to To over Duration seconds.
type Keyframe struct {
	Field    Field
	From     *float64
	To       float64
	Duration float32
	At       float32
	Ease     ease.TweenFunc
}

// track is a scheduled Keyframe bound to an element.
type track struct {
	target *Element
	key    Keyframe
	delay  float32
	tween  *gween.Tween
}

func (tr *track) start() {
	field := tr.key.Field.ptr(tr.target)
	if tr.key.From != nil {
		*field = *tr.key.From
	}
	fn := tr.key.Ease
	if fn == nil {
		fn = ease.Linear
	}
	tr.tween = gween.New(float32(*field), float32(tr.key.To), tr.key.Duration, fn)
}

// advance moves the track forward by dt seconds and reports whether it finished.
func (tr *track) advance(dt float32) bool {
	if tr.tween == nil {
		if tr.delay > dt {
			tr.delay -= dt
			return false
		}
		dt -= tr.delay
		tr.delay = 0
		tr.start()
	}
	val, done := tr.tween.Update(dt)
	*tr.key.Field.ptr(tr.target) = float64(val)
	return done
}

func from(v float64) *float64 { return &v }

// EnterTimeline is the default enter sequence: the filler slides up from 75%
// of its height while the label inner fades out, drops in from 30% and fades
// back in.
func EnterTimeline() (filler, labelInner []Keyframe) {
	filler = []Keyframe{
		{Field: FieldFillY, From: from(0.75), To: 0, Duration: 0.5, Ease: ease.OutCubic},
	}
	labelInner = []Keyframe{
		{Field: FieldAlpha, To: 0, Duration: 0.1, Ease: ease.OutCubic},
		{Field: FieldFillY, To: -0.1, Duration: 0.1, Ease: ease.OutCubic},
		{Field: FieldFillY, From: from(0.3), To: 0, Duration: 0.25, At: 0.1, Ease: ease.OutCubic},
		{Field: FieldAlpha, From: from(1), To: 1, Duration: 0.25, At: 0.1, Ease: ease.OutCubic},
	}
	return filler, labelInner
}

// LeaveTimeline is the default leave sequence: the filler slides down to 85%
// of its height and the label inner rolls in from below.
func LeaveTimeline() (filler, labelInner []Keyframe) {
	filler = []Keyframe{
		{Field: FieldFillY, From: from(0), To: 0.85, Duration: 0.5, Ease: ease.OutCubic},
	}
	labelInner = []Keyframe{
		{Field: FieldFillY, From: from(1), To: 0, Duration: 0.25, At: 0.1, Ease: ease.OutCubic},
		{Field: FieldAlpha, From: from(1), To: 1, Duration: 0.25, At: 0.1, Ease: ease.OutCubic},
	}
	return filler, labelInner
}

// TweenAnimator is a TransitionAnimator backed by gween tweens. There is no
// global animation manager: the host calls Update once per frame.
type TweenAnimator struct {
	tracks []*track
}

// NewTweenAnimator creates an idle animator.
func NewTweenAnimator() *TweenAnimator {
	return &TweenAnimator{}
}

// PlayEnter kills running tweens on both elements and starts the enter timeline.
func (a *TweenAnimator) PlayEnter(filler, labelInner *Element) {
	f, l := EnterTimeline()
	a.play(filler, labelInner, f, l)
}

// PlayLeave kills running tweens on both elements and starts the leave timeline.
func (a *TweenAnimator) PlayLeave(filler, labelInner *Element) {
	f, l := LeaveTimeline()
	a.play(filler, labelInner, f, l)
}

func (a *TweenAnimator) play(filler, labelInner *Element, fk, lk []Keyframe) {
	a.Kill(filler)
	a.Kill(labelInner)
	a.Schedule(filler, fk...)
	a.Schedule(labelInner, lk...)
}

// Schedule appends keyframes for target to the running set. A nil target is ignored.
func (a *TweenAnimator) Schedule(target *Element, keys ...Keyframe) {
	if target == nil {
		return
	}
	for _, k := range keys {
		a.tracks = append(a.tracks, &track{target: target, key: k, delay: k.At})
	}
}

// Kill drops every track animating target. Values already written stay as
// they are.
func (a *TweenAnimator) Kill(target *Element) {
	if target == nil {
		return
	}
	kept := a.tracks[:0]
	for _, tr := range a.tracks {
		if tr.target != target {
			kept = append(kept, tr)
		}
	}
	for i := len(kept); i < len(a.tracks); i++ {
		a.tracks[i] = nil
	}
	a.tracks = kept
}

// Active reports whether any track animates target.
func (a *TweenAnimator) Active(target *Element) bool {
	for _, tr := range a.tracks {
		if tr.target == target {
			return true
		}
	}
	return false
}

// Len returns the number of unfinished tracks.
func (a *TweenAnimator) Len() int {
	return len(a.tracks)
}

// Update advances all tracks by dt seconds, in scheduling order, and drops
// the finished ones.
func (a *TweenAnimator) Update(dt float32) {
	kept := a.tracks[:0]
	for _, tr := range a.tracks {
		if !tr.advance(dt) {
			kept = append(kept, tr)
		}
	}
	for i := len(kept); i < len(a.tracks); i++ {
		a.tracks[i] = nil
	}
	a.tracks = kept
}
