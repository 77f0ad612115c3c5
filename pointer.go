package magnetic

// PointerSource is read by controllers once per frame. Reads never block and
// return whatever position was stored last.
type PointerSource interface {
	Position() Vec2
}

type moveHandler struct {
	id uint32
	fn func(Vec2)
}

// PointerTracker records the last observed pointer position in viewport
// coordinates. A host subscribes it once to its pointer-move events (or
// polls the cursor each tick) and calls Move; every controller sharing the
// tracker reads the same value. Only the latest position is kept.
type PointerTracker struct {
	pos      Vec2
	seen     bool
	handlers []moveHandler
	nextID   uint32

	injectQueue []Vec2
}

// NewPointerTracker creates a tracker positioned at the origin.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Position returns the last recorded pointer position.
func (t *PointerTracker) Position() Vec2 {
	return t.pos
}

// Seen reports whether Move has been called at least once.
func (t *PointerTracker) Seen() bool {
	return t.seen
}

// Move overwrites the stored position and notifies move subscribers.
func (t *PointerTracker) Move(x, y float64) {
	t.pos = Vec2{x, y}
	t.seen = true
	// Handlers may register or remove callbacks while being notified. Remove
	// never shifts entries of a published slice, so the snapshot stays valid;
	// removed entries have a nil fn.
	hs := t.handlers
	for i := range hs {
		if fn := hs[i].fn; fn != nil {
			fn(t.pos)
		}
	}
}

// CallbackHandle allows removing a registered move callback.
type CallbackHandle struct {
	id uint32
	t  *PointerTracker
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.t == nil {
		return
	}
	s := h.t.handlers
	for i := range s {
		if s[i].id == h.id {
			s[i].fn = nil
			h.t.handlers = append(s[:i:i], s[i+1:]...)
			return
		}
	}
}

// OnMove registers a callback fired after every Move.
func (t *PointerTracker) OnMove(fn func(Vec2)) CallbackHandle {
	t.nextID++
	id := t.nextID
	t.handlers = append(t.handlers, moveHandler{id: id, fn: fn})
	return CallbackHandle{id: id, t: t}
}

// StaticPointer is a PointerSource fixed at one position.
type StaticPointer Vec2

// Position returns the fixed position.
func (p StaticPointer) Position() Vec2 { return Vec2(p) }
