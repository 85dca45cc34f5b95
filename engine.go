package gesture

import (
	"math"
	"sync/atomic"
)

// Engine holds the environment shared by attachments: the motion source and
// the clock. It holds no recognition state; every Attach call gets its own.
// The zero Engine uses DefaultMotion and a monotonic clock.
type Engine struct {
	Motion MotionSource
	Clock  Clock
}

var defaultEngine = &Engine{}

// Attach attaches a new recognizer to region using DefaultMotion and the
// monotonic clock. See Engine.Attach.
func Attach(region Region, cb Callbacks, cfg *Config) *Handle {
	return defaultEngine.Attach(region, cb, cfg)
}

// Attach registers touch listeners on region and, when cb.OnShake is set, a
// motion listener on the engine's motion source. Recognized gestures are
// reported synchronously through cb from inside the event listener.
//
// cfg is read on every event, so the caller may change thresholds or toggle
// Disabled at any time. A nil cfg uses the defaults. Attaching with a
// disabled cfg still registers listeners and returns a working handle.
//
// Each call owns independent state; attaching twice to the same region yields
// two recognizers that do not see each other.
func (e *Engine) Attach(region Region, cb Callbacks, cfg *Config) *Handle {
	clock := e.Clock
	if clock == nil {
		clock = processClock
	}
	r := &recognizer{
		cb:    cb,
		cfg:   cfg,
		clock: clock,
		name:  regionName(region),
	}
	h := &Handle{rec: r}
	if region == nil {
		return h
	}

	h.removers = append(h.removers,
		region.AddTouchListener(TouchStart, r.touchStart),
		region.AddTouchListener(TouchMove, r.touchMove),
		region.AddTouchListener(TouchEnd, r.touchEnd),
	)
	if cb.OnShake != nil {
		motion := e.Motion
		if motion == nil {
			motion = DefaultMotion
		}
		h.removers = append(h.removers, motion.AddMotionListener(r.motion))
	}
	debugf("attach %s (%d listeners)", r.name, len(h.removers))
	return h
}

// processClock is shared by engines without an explicit clock so that all of
// them read the same timeline.
var processClock = NewMonotonicClock()

func regionName(region Region) string {
	if n, ok := region.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "region"
}

// Handle is returned by Attach. Its only operation is Detach.
type Handle struct {
	rec      *recognizer
	removers []Remover
	detached atomic.Bool
}

// Detach removes every listener registered by Attach and discards the
// in-flight recognition state. No callback fires after Detach returns.
// Calling Detach more than once is a no-op.
func (h *Handle) Detach() {
	if h == nil || !h.detached.CompareAndSwap(false, true) {
		return
	}
	h.rec.dead.Store(true)
	for _, rm := range h.removers {
		rm.Remove()
	}
	h.removers = nil
	debugf("detach %s", h.rec.name)
}

// Detached reports whether Detach has been called.
func (h *Handle) Detached() bool {
	return h.detached.Load()
}

// --- Recognizer ---

type touchRecord struct {
	x, y float64
	ms   int64
}

// recognizer is the private state of one attachment. Its methods run on the
// region's event-delivery goroutine; nothing else touches it.
type recognizer struct {
	cb    Callbacks
	cfg   *Config
	clock Clock
	name  string
	dead  atomic.Bool

	start    touchRecord
	hasStart bool

	pinchBase float64

	lastTap int64
	hasTap  bool

	shakeBase Vec3
	lastShake int64
	hasShake  bool
}

func (r *recognizer) active() bool {
	return !r.dead.Load() && r.cfg.Enabled()
}

func (r *recognizer) touchStart(e TouchEvent) {
	if !r.active() {
		return
	}
	switch len(e.Touches) {
	case 1:
		t := e.Touches[0]
		r.start = touchRecord{x: t.X, y: t.Y, ms: r.clock.NowMs()}
		r.hasStart = true
		r.pinchBase = 0
	case 2:
		r.pinchBase = distance(e.Touches[0], e.Touches[1])
	default:
		// Zero or three-plus fingers: leave both paths untouched.
	}
}

func (r *recognizer) touchMove(e TouchEvent) {
	if !r.active() {
		return
	}
	if len(e.Touches) < 2 {
		r.pinchBase = 0
		return
	}
	if len(e.Touches) != 2 || r.cb.OnPinch == nil || r.pinchBase <= 0 {
		return
	}
	cur := distance(e.Touches[0], e.Touches[1])
	r.cb.OnPinch(cur/r.pinchBase, cur-r.pinchBase)
}

func (r *recognizer) touchEnd(e TouchEvent) {
	if !r.active() {
		return
	}
	if len(e.Touches) < 2 {
		r.pinchBase = 0
	}

	if len(e.Changed) == 2 && r.cb.OnTwoFingerTap != nil {
		debugf("%s: two-finger tap", r.name)
		r.cb.OnTwoFingerTap(e)
		return
	}

	if !r.hasStart {
		debugf("%s: touch-end without start record ignored", r.name)
		return
	}
	start := r.start
	r.hasStart = false
	if len(e.Changed) == 0 {
		debugf("%s: touch-end without changed touches ignored", r.name)
		return
	}

	now := r.clock.NowMs()
	end := e.Changed[0]
	dx := end.X - start.x
	dy := end.Y - start.y
	adx, ady := math.Abs(dx), math.Abs(dy)
	elapsed := now - start.ms

	if math.Max(adx, ady) >= r.cfg.minSwipeDistance() && elapsed < swipeMaxDuration {
		var dir Direction
		if adx > ady {
			dir = DirectionRight
			if dx < 0 {
				dir = DirectionLeft
			}
		} else {
			dir = DirectionDown
			if dy < 0 {
				dir = DirectionUp
			}
		}
		debugf("%s: swipe %s (dx=%.1f dy=%.1f, %dms)", r.name, dir, dx, dy, elapsed)
		r.fireSwipe(dir)
		return
	}

	if r.hasTap && now-r.lastTap < r.cfg.doubleTapWindowMs() && r.cb.OnDoubleTap != nil {
		debugf("%s: double tap", r.name)
		r.hasTap = false
		r.cb.OnDoubleTap(e)
		return
	}
	r.lastTap = now
	r.hasTap = true
}

func (r *recognizer) fireSwipe(dir Direction) {
	if r.cb.OnSwipe != nil {
		r.cb.OnSwipe(dir)
	}
	var fn func()
	switch dir {
	case DirectionLeft:
		fn = r.cb.OnSwipeLeft
	case DirectionRight:
		fn = r.cb.OnSwipeRight
	case DirectionUp:
		fn = r.cb.OnSwipeUp
	case DirectionDown:
		fn = r.cb.OnSwipeDown
	}
	if fn != nil {
		fn()
	}
}
