package magnetic

// FrameHandle identifies a pending frame request. The zero value is never
// issued and means "no request".
type FrameHandle uint64

type frameRequest struct {
	id FrameHandle
	fn func()
}

// FrameScheduler is a display-refresh style scheduler: callbacks requested
// during frame N run when the host calls Tick for frame N+1. Hosts call Tick
// exactly once per rendered frame (from ebiten's Update or a terminal tick).
type FrameScheduler struct {
	nextID  FrameHandle
	pending []frameRequest
	running []frameRequest
	cursor  int
	frame   uint64
}

// NewFrameScheduler creates an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Request schedules fn for the next Tick and returns its handle.
func (s *FrameScheduler) Request(fn func()) FrameHandle {
	s.nextID++
	s.pending = append(s.pending, frameRequest{id: s.nextID, fn: fn})
	return s.nextID
}

// Cancel removes a pending request. It also suppresses a request that belongs
// to the batch currently being run but has not executed yet. Returns false if
// the handle is unknown or already ran.
func (s *FrameScheduler) Cancel(h FrameHandle) bool {
	if h == 0 {
		return false
	}
	for i := range s.pending {
		if s.pending[i].id == h {
			copy(s.pending[i:], s.pending[i+1:])
			s.pending[len(s.pending)-1] = frameRequest{}
			s.pending = s.pending[:len(s.pending)-1]
			return true
		}
	}
	for i := s.cursor; i < len(s.running); i++ {
		if s.running[i].id == h && s.running[i].fn != nil {
			s.running[i].fn = nil
			return true
		}
	}
	return false
}

// Tick runs every callback requested before this call, in request order.
// Callbacks that request again are deferred to the following Tick. Returns
// the number of callbacks run.
func (s *FrameScheduler) Tick() int {
	s.frame++
	s.running, s.pending = s.pending, s.running[:0]
	n := 0
	for s.cursor = 0; s.cursor < len(s.running); s.cursor++ {
		req := s.running[s.cursor]
		if req.fn == nil {
			continue
		}
		s.running[s.cursor].fn = nil
		req.fn()
		n++
	}
	s.running = s.running[:0]
	s.cursor = 0
	return n
}

// Pending returns the number of requests waiting for the next Tick.
func (s *FrameScheduler) Pending() int {
	return len(s.pending)
}

// Frame returns the number of Ticks run so far.
func (s *FrameScheduler) Frame() uint64 {
	return s.frame
}

// FrameLoop repeatedly runs a step function once per frame on a
// FrameScheduler. Its running state is explicit: it loops from Start until
// Cancel, independently of what the step does, and can be restarted at any
// time. At most one frame request is live per loop.
type FrameLoop struct {
	sched   *FrameScheduler
	step    func()
	handle  FrameHandle
	running bool
	frames  uint64
}

// NewFrameLoop creates a stopped loop.
func NewFrameLoop(sched *FrameScheduler, step func()) *FrameLoop {
	return &FrameLoop{sched: sched, step: step}
}

// Start schedules the first frame. Returns false if the loop was already running.
func (l *FrameLoop) Start() bool {
	if l.running {
		return false
	}
	l.running = true
	if l.handle == 0 {
		l.handle = l.sched.Request(l.run)
	}
	return true
}

// Cancel retires the pending frame. Returns false if the loop was not running.
func (l *FrameLoop) Cancel() bool {
	if !l.running {
		return false
	}
	l.running = false
	l.sched.Cancel(l.handle)
	l.handle = 0
	return true
}

// Running reports whether the loop is scheduled to keep ticking.
func (l *FrameLoop) Running() bool {
	return l.running
}

// Handle returns the live frame handle, or zero when none is pending.
func (l *FrameLoop) Handle() FrameHandle {
	return l.handle
}

// Frames returns how many steps have run since the loop was created.
func (l *FrameLoop) Frames() uint64 {
	return l.frames
}

func (l *FrameLoop) run() {
	l.handle = 0
	if !l.running {
		return
	}
	l.frames++
	l.step()
	// The step may have cancelled and restarted the loop, which already
	// requested the next frame.
	if l.running && l.handle == 0 {
		l.handle = l.sched.Request(l.run)
	}
}
