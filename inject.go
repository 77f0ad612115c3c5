package magnetic

// InjectMove queues a synthetic pointer move to (x, y). Queued moves are
// consumed one per frame by Advance, ahead of real input.
func (t *PointerTracker) InjectMove(x, y float64) {
	t.injectQueue = append(t.injectQueue, Vec2{x, y})
}

// InjectPath queues a straight pointer path from (fromX, fromY) to (toX, toY)
// spread over the given number of frames. The first frame lands on the start
// point and the last on the end point. Minimum frames is 2.
func (t *PointerTracker) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	last := float64(frames - 1)
	for i := 0; i < frames; i++ {
		f := float64(i) / last
		t.InjectMove(fromX+(toX-fromX)*f, fromY+(toY-fromY)*f)
	}
}

// Pending returns the number of queued synthetic moves.
func (t *PointerTracker) Pending() int {
	return len(t.injectQueue)
}

// Advance pops one queued move and applies it. Returns true if a move was
// consumed, in which case the host should skip real input for this frame.
func (t *PointerTracker) Advance() bool {
	if len(t.injectQueue) == 0 {
		return false
	}
	p := t.injectQueue[0]
	copy(t.injectQueue, t.injectQueue[1:])
	t.injectQueue = t.injectQueue[:len(t.injectQueue)-1]
	t.Move(p.X, p.Y)
	return true
}

// ClearInjected drops all queued synthetic moves.
func (t *PointerTracker) ClearInjected() {
	t.injectQueue = t.injectQueue[:0]
}
