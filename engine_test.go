package gesture

import (
	"testing"
	"time"
)

// --- Helpers ---

type rig struct {
	target *EventTarget
	motion *MotionBus
	clock  *ManualClock
	engine *Engine
}

func newRig() *rig {
	r := &rig{
		target: NewEventTarget("test"),
		motion: NewMotionBus(),
		clock:  &ManualClock{},
	}
	r.engine = &Engine{Motion: r.motion, Clock: r.clock}
	return r
}

func (r *rig) at(ms int64) *rig {
	r.clock.Set(ms)
	return r
}

func (r *rig) start(touches ...Touch) {
	r.target.Dispatch(TouchEvent{Type: TouchStart, Touches: touches, Changed: touches})
}

func (r *rig) move(touches ...Touch) {
	r.target.Dispatch(TouchEvent{Type: TouchMove, Touches: touches, Changed: touches})
}

func (r *rig) end(changed ...Touch) {
	r.target.Dispatch(TouchEvent{Type: TouchEnd, Changed: changed})
}

// tap performs a single-finger touch at (x, y) starting at ms.
func (r *rig) tap(ms int64, x, y float64) {
	r.at(ms).start(Touch{ID: 1, X: x, Y: y})
	r.at(ms + 40).end(Touch{ID: 1, X: x, Y: y})
}

func (r *rig) shake(ms int64, x, y, z float64) {
	r.clock.Set(ms)
	r.motion.Dispatch(MotionEvent{AccelerationIncludingGravity: &Vec3{X: x, Y: y, Z: z}})
}

type recorder struct {
	swipes     []Direction
	left       int
	right      int
	up         int
	down       int
	doubleTaps int
	twoFinger  int
	pinches    [][2]float64
	shakes     int
}

func (rec *recorder) callbacks() Callbacks {
	return Callbacks{
		OnSwipe:        func(d Direction) { rec.swipes = append(rec.swipes, d) },
		OnSwipeLeft:    func() { rec.left++ },
		OnSwipeRight:   func() { rec.right++ },
		OnSwipeUp:      func() { rec.up++ },
		OnSwipeDown:    func() { rec.down++ },
		OnDoubleTap:    func(TouchEvent) { rec.doubleTaps++ },
		OnTwoFingerTap: func(TouchEvent) { rec.twoFinger++ },
		OnPinch:        func(s, d float64) { rec.pinches = append(rec.pinches, [2]float64{s, d}) },
		OnShake:        func() { rec.shakes++ },
	}
}

func (rec *recorder) total() int {
	return len(rec.swipes) + rec.left + rec.right + rec.up + rec.down +
		rec.doubleTaps + rec.twoFinger + len(rec.pinches) + rec.shakes
}

// --- Swipe ---

func TestSwipeDirections(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Direction
	}{
		{"left", -90, 5, DirectionLeft},
		{"right", 120, -30, DirectionRight},
		{"up", 10, -70, DirectionUp},
		{"down", -20, 55, DirectionDown},
		{"diagonal tie goes vertical", 60, 60, DirectionDown},
		{"diagonal tie up", -60, -60, DirectionUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			rec := &recorder{}
			r.engine.Attach(r.target, rec.callbacks(), nil)

			r.at(0).start(Touch{ID: 1, X: 200, Y: 200})
			r.at(100).end(Touch{ID: 1, X: 200 + tt.dx, Y: 200 + tt.dy})

			if len(rec.swipes) != 1 || rec.swipes[0] != tt.want {
				t.Fatalf("swipes = %v, want [%v]", rec.swipes, tt.want)
			}
			counts := map[Direction]int{
				DirectionLeft: rec.left, DirectionRight: rec.right,
				DirectionUp: rec.up, DirectionDown: rec.down,
			}
			for d, n := range counts {
				want := 0
				if d == tt.want {
					want = 1
				}
				if n != want {
					t.Errorf("%v callback fired %d times, want %d", d, n, want)
				}
			}
			if rec.doubleTaps != 0 {
				t.Errorf("double tap fired on a swipe")
			}
		})
	}
}

func TestSwipeWorkedExample(t *testing.T) {
	r := newRig()
	var generic []Direction
	var left int
	cfg := Config{MinSwipeDistance: 80}
	r.engine.Attach(r.target, Callbacks{
		OnSwipe:     func(d Direction) { generic = append(generic, d) },
		OnSwipeLeft: func() { left++ },
	}, &cfg)

	r.at(0).start(Touch{ID: 1, X: 300, Y: 200})
	r.at(120).end(Touch{ID: 1, X: 210, Y: 205})

	if left != 1 {
		t.Errorf("OnSwipeLeft fired %d times, want 1", left)
	}
	if len(generic) != 1 || generic[0] != DirectionLeft {
		t.Errorf("OnSwipe = %v, want [left]", generic)
	}
}

func TestSwipeThresholds(t *testing.T) {
	tests := []struct {
		name    string
		dx      float64
		elapsed int64
		swipe   bool
	}{
		{"exactly at distance", 50, 100, true},
		{"just below distance", 49.9, 100, false},
		{"elapsed at limit", 200, 500, false},
		{"elapsed just under limit", 200, 499, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			rec := &recorder{}
			r.engine.Attach(r.target, rec.callbacks(), nil)

			r.at(1000).start(Touch{ID: 1, X: 0, Y: 0})
			r.at(1000 + tt.elapsed).end(Touch{ID: 1, X: tt.dx, Y: 0})

			if got := len(rec.swipes) == 1; got != tt.swipe {
				t.Errorf("swipe = %v, want %v", got, tt.swipe)
			}
		})
	}
}

func TestNonPositiveSwipeDistanceUsesDefault(t *testing.T) {
	for _, d := range []float64{0, -10} {
		r := newRig()
		rec := &recorder{}
		cfg := Config{MinSwipeDistance: d}
		r.engine.Attach(r.target, rec.callbacks(), &cfg)

		r.at(0).start(Touch{ID: 1, X: 0, Y: 0})
		r.at(100).end(Touch{ID: 1, X: 49, Y: 0})
		r.at(1000).start(Touch{ID: 1, X: 0, Y: 0})
		r.at(1100).end(Touch{ID: 1, X: 50, Y: 0})

		if len(rec.swipes) != 1 {
			t.Errorf("MinSwipeDistance %v: swipes = %v, want one at the default threshold", d, rec.swipes)
		}
	}
}

func TestShortMoveIsTap(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	r.tap(0, 10, 10)
	if rec.total() != 0 {
		t.Fatalf("single tap produced %d callbacks, want 0", rec.total())
	}
	// A second tap proves the first one was recorded as a tap.
	r.tap(200, 12, 11)
	if rec.doubleTaps != 1 {
		t.Errorf("doubleTaps = %d, want 1", rec.doubleTaps)
	}
	if len(rec.swipes) != 0 {
		t.Errorf("swipes = %v, want none", rec.swipes)
	}
}

func TestSlowLongMoveIsTap(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	r.at(0).start(Touch{ID: 1, X: 0, Y: 0})
	r.at(800).end(Touch{ID: 1, X: 300, Y: 0})
	r.tap(900, 300, 0)

	if len(rec.swipes) != 0 {
		t.Errorf("slow drag classified as swipe")
	}
	if rec.doubleTaps != 1 {
		t.Errorf("doubleTaps = %d, want 1 (slow drag should count as tap)", rec.doubleTaps)
	}
}

func TestSwipeDoesNotArmDoubleTap(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	r.at(0).start(Touch{ID: 1, X: 0, Y: 0})
	r.at(100).end(Touch{ID: 1, X: 200, Y: 0})
	r.tap(150, 200, 0)

	if rec.doubleTaps != 0 {
		t.Errorf("tap after swipe became a double tap")
	}
}

// --- Double tap ---

func TestDoubleTapWindow(t *testing.T) {
	tests := []struct {
		name string
		gap  int64
		want int
	}{
		{"inside window", 250, 1},
		{"at window edge", 300, 0},
		{"outside window", 450, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			rec := &recorder{}
			r.engine.Attach(r.target, rec.callbacks(), nil)

			// The tap timestamp is taken at touch-end, so the gap is measured
			// between the two ends.
			r.tap(0, 5, 5)
			r.tap(tt.gap, 5, 5)
			if rec.doubleTaps != tt.want {
				t.Errorf("doubleTaps = %d, want %d", rec.doubleTaps, tt.want)
			}
		})
	}
}

func TestDoubleTapDoesNotChain(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	r.tap(0, 5, 5)
	r.tap(100, 5, 5)
	r.tap(200, 5, 5)
	if rec.doubleTaps != 1 {
		t.Fatalf("three rapid taps fired %d double taps, want 1", rec.doubleTaps)
	}
	// The third tap is the new reference point.
	r.tap(300, 5, 5)
	if rec.doubleTaps != 2 {
		t.Errorf("fourth tap: doubleTaps = %d, want 2", rec.doubleTaps)
	}
}

func TestDoubleTapCustomWindow(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	cfg := Config{DoubleTapWindow: 600 * time.Millisecond}
	r.engine.Attach(r.target, rec.callbacks(), &cfg)

	r.tap(0, 5, 5)
	r.tap(500, 5, 5)
	if rec.doubleTaps != 1 {
		t.Errorf("doubleTaps = %d, want 1 with a 600ms window", rec.doubleTaps)
	}
}

func TestFirstTapNearClockZeroIsNotDoubleTap(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	r.tap(10, 5, 5)
	if rec.doubleTaps != 0 {
		t.Errorf("first tap after attach fired a double tap")
	}
}

func TestDoubleTapWithoutCallbackKeepsReference(t *testing.T) {
	r := newRig()
	var swipes int
	r.engine.Attach(r.target, Callbacks{OnSwipe: func(Direction) { swipes++ }}, nil)

	r.tap(0, 5, 5)
	r.tap(100, 5, 5)
	if swipes != 0 {
		t.Errorf("swipes = %d, want 0", swipes)
	}
}

// --- Two-finger tap ---

func TestTwoFingerTap(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	a := Touch{ID: 1, X: 100, Y: 100}
	b := Touch{ID: 2, X: 160, Y: 100}
	r.at(0).start(a, b)
	r.at(80).end(a, b)

	if rec.twoFinger != 1 {
		t.Errorf("twoFinger = %d, want 1", rec.twoFinger)
	}
	if rec.total() != 1 {
		t.Errorf("total callbacks = %d, want 1", rec.total())
	}
}

func TestTwoFingerTapWithPendingSingleRecord(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	// An unrelated single-finger start leaves a record behind.
	r.at(0).start(Touch{ID: 1, X: 0, Y: 0})

	a := Touch{ID: 2, X: 300, Y: 300}
	b := Touch{ID: 3, X: 400, Y: 300}
	r.at(50).end(a, b)

	if rec.twoFinger != 1 {
		t.Fatalf("twoFinger = %d, want 1", rec.twoFinger)
	}
	if len(rec.swipes) != 0 || rec.doubleTaps != 0 {
		t.Errorf("two-finger tap also fired swipe=%v doubleTap=%d", rec.swipes, rec.doubleTaps)
	}
}

func TestTwoChangedTouchesWithoutCallbackFallsThrough(t *testing.T) {
	r := newRig()
	var swipes []Direction
	r.engine.Attach(r.target, Callbacks{OnSwipe: func(d Direction) { swipes = append(swipes, d) }}, nil)

	r.at(0).start(Touch{ID: 1, X: 0, Y: 0})
	r.at(100).end(Touch{ID: 1, X: 100, Y: 0}, Touch{ID: 2, X: 400, Y: 400})

	if len(swipes) != 1 || swipes[0] != DirectionRight {
		t.Errorf("swipes = %v, want [right] from the first changed touch", swipes)
	}
}

// --- Pinch ---

func TestPinchScaleAndDelta(t *testing.T) {
	tests := []struct {
		name      string
		to        float64
		wantScale float64
		wantDelta float64
	}{
		{"spread", 150, 1.5, 50},
		{"squeeze", 50, 0.5, -50},
		{"beyond clamp", 400, 4, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			rec := &recorder{}
			r.engine.Attach(r.target, rec.callbacks(), nil)

			r.start(Touch{ID: 1, X: 0, Y: 0}, Touch{ID: 2, X: 100, Y: 0})
			r.move(Touch{ID: 1, X: 0, Y: 0}, Touch{ID: 2, X: tt.to, Y: 0})

			if len(rec.pinches) != 1 {
				t.Fatalf("pinches = %d, want 1", len(rec.pinches))
			}
			got := rec.pinches[0]
			if !approx(got[0], tt.wantScale) || !approx(got[1], tt.wantDelta) {
				t.Errorf("pinch = (%v, %v), want (%v, %v)", got[0], got[1], tt.wantScale, tt.wantDelta)
			}
		})
	}
}

func TestPinchStreamsEveryMove(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	r.start(Touch{ID: 1, X: 0, Y: 0}, Touch{ID: 2, X: 0, Y: 100})
	for _, y := range []float64{110, 120, 130} {
		r.move(Touch{ID: 1, X: 0, Y: 0}, Touch{ID: 2, X: 0, Y: y})
	}
	if len(rec.pinches) != 3 {
		t.Fatalf("pinches = %d, want 3", len(rec.pinches))
	}
	if !approx(rec.pinches[2][0], 1.3) {
		t.Errorf("last scale = %v, want 1.3 (relative to initial distance)", rec.pinches[2][0])
	}
}

func TestPinchNeedsBaseline(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	// Second finger never produced a two-touch start.
	r.move(Touch{ID: 1, X: 0, Y: 0}, Touch{ID: 2, X: 100, Y: 0})
	if len(rec.pinches) != 0 {
		t.Errorf("pinch fired without a baseline")
	}

	// Zero-distance baseline disables scale.
	r.start(Touch{ID: 1, X: 5, Y: 5}, Touch{ID: 2, X: 5, Y: 5})
	r.move(Touch{ID: 1, X: 0, Y: 0}, Touch{ID: 2, X: 100, Y: 0})
	if len(rec.pinches) != 0 {
		t.Errorf("pinch fired with a zero baseline")
	}
}

func TestPinchBaselineResetsWhenFingersLift(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	a := Touch{ID: 1, X: 0, Y: 0}
	b := Touch{ID: 2, X: 100, Y: 0}
	r.start(a, b)
	r.target.Dispatch(TouchEvent{Type: TouchEnd, Touches: []Touch{a}, Changed: []Touch{b}})

	// A later two-finger move without a fresh two-finger start must not
	// reuse the stale baseline.
	r.move(a, Touch{ID: 3, X: 300, Y: 0})
	if len(rec.pinches) != 0 {
		t.Errorf("stale baseline produced %d pinch reports", len(rec.pinches))
	}
}

func TestThreeFingerStartIgnored(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	r.at(0).start(Touch{ID: 1}, Touch{ID: 2, X: 50}, Touch{ID: 3, X: 100})
	r.at(50).end(Touch{ID: 1, X: 200})
	if rec.total() != 0 {
		t.Errorf("three-finger sequence produced %d callbacks", rec.total())
	}
}

// --- Edge conditions ---

func TestTouchEndWithoutStartIgnored(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	r.at(100).end(Touch{ID: 1, X: 500, Y: 0})
	r.at(150).end(Touch{ID: 1, X: 500, Y: 0})
	if rec.total() != 0 {
		t.Errorf("orphan touch-ends produced %d callbacks", rec.total())
	}
}

func TestTouchEndConsumesRecord(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	r.at(0).start(Touch{ID: 1, X: 0, Y: 0})
	r.at(100).end(Touch{ID: 1, X: 100, Y: 0})
	r.at(150).end(Touch{ID: 1, X: 300, Y: 0})
	if len(rec.swipes) != 1 {
		t.Errorf("swipes = %d, want 1 (record must be consumed)", len(rec.swipes))
	}
}

func TestNewStartOverwritesRecord(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	r.at(0).start(Touch{ID: 1, X: 0, Y: 0})
	r.at(400).start(Touch{ID: 2, X: 300, Y: 0})
	r.at(500).end(Touch{ID: 2, X: 305, Y: 0})
	if len(rec.swipes) != 0 {
		t.Errorf("swipe measured from the overwritten record")
	}
}

// --- Shake ---

func TestShakeCooldown(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	r.shake(0, 0, 0, 9.8)
	r.shake(1000, 20, 0, 9.8)
	if rec.shakes != 1 {
		t.Fatalf("shakes = %d, want 1", rec.shakes)
	}
	r.shake(1100, -5, 0, 9.8)
	if rec.shakes != 1 {
		t.Errorf("shake inside cooldown fired; shakes = %d", rec.shakes)
	}
	r.shake(2100, 20, 0, 9.8)
	if rec.shakes != 2 {
		t.Errorf("shake after cooldown: shakes = %d, want 2", rec.shakes)
	}
}

func TestShakeThreshold(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  int
	}{
		{"below", 14, 0},
		{"at threshold", 15, 0},
		{"above", 15.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			rec := &recorder{}
			r.engine.Attach(r.target, rec.callbacks(), nil)

			r.shake(0, 0, 0, 0)
			r.shake(50, 0, tt.delta, 0)
			if rec.shakes != tt.want {
				t.Errorf("shakes = %d, want %d", rec.shakes, tt.want)
			}
		})
	}
}

func TestShakeBaselineFollowsEverySample(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	// A slow drift never produces a large frame-to-frame delta.
	for i := 0; i < 10; i++ {
		r.shake(int64(i)*100, float64(i)*10, 0, 0)
	}
	if rec.shakes != 0 {
		t.Errorf("gradual drift fired %d shakes", rec.shakes)
	}
}

func TestShakeIgnoresSamplesWithoutData(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	r.engine.Attach(r.target, rec.callbacks(), nil)

	r.motion.Dispatch(MotionEvent{})
	if rec.shakes != 0 {
		t.Errorf("empty sample fired a shake")
	}
}

func TestShakeListenerOnlyWhenRequested(t *testing.T) {
	r := newRig()
	h := r.engine.Attach(r.target, Callbacks{OnSwipe: func(Direction) {}}, nil)
	if n := r.motion.ListenerCount(); n != 0 {
		t.Errorf("motion listeners = %d, want 0 without OnShake", n)
	}
	h.Detach()

	h = r.engine.Attach(r.target, Callbacks{OnShake: func() {}}, nil)
	if n := r.motion.ListenerCount(); n != 1 {
		t.Errorf("motion listeners = %d, want 1", n)
	}
	h.Detach()
	if n := r.motion.ListenerCount(); n != 0 {
		t.Errorf("motion listeners after detach = %d, want 0", n)
	}
}

// --- Lifecycle ---

func TestDetachStopsEverything(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	h := r.engine.Attach(r.target, rec.callbacks(), nil)
	if n := r.target.ListenerCount(); n != 3 {
		t.Fatalf("touch listeners = %d, want 3", n)
	}

	// Detach mid-gesture.
	r.at(0).start(Touch{ID: 1, X: 0, Y: 0})
	h.Detach()
	r.at(100).end(Touch{ID: 1, X: 300, Y: 0})
	r.shake(2000, 0, 50, 0)
	r.start(Touch{ID: 1}, Touch{ID: 2, X: 100})
	r.move(Touch{ID: 1}, Touch{ID: 2, X: 200})

	if rec.total() != 0 {
		t.Errorf("detached handle produced %d callbacks", rec.total())
	}
	if n := r.target.ListenerCount(); n != 0 {
		t.Errorf("touch listeners after detach = %d, want 0", n)
	}
	if !h.Detached() {
		t.Error("Detached() = false after Detach")
	}

	// Second call is a no-op.
	h.Detach()
}

func TestRepeatedAttachDetachLeavesNoListeners(t *testing.T) {
	r := newRig()
	for i := 0; i < 5; i++ {
		h := r.engine.Attach(r.target, Callbacks{OnShake: func() {}}, nil)
		h.Detach()
	}
	if n := r.target.ListenerCount(); n != 0 {
		t.Errorf("touch listeners = %d, want 0", n)
	}
	if n := r.motion.ListenerCount(); n != 0 {
		t.Errorf("motion listeners = %d, want 0", n)
	}
}

func TestDetachFromCallback(t *testing.T) {
	r := newRig()
	var h *Handle
	var swipes int
	h = r.engine.Attach(r.target, Callbacks{
		OnSwipe: func(Direction) {
			swipes++
			h.Detach()
		},
	}, nil)

	r.at(0).start(Touch{ID: 1})
	r.at(50).end(Touch{ID: 1, X: 100})
	r.at(100).start(Touch{ID: 1})
	r.at(150).end(Touch{ID: 1, X: 100})
	if swipes != 1 {
		t.Errorf("swipes = %d, want 1", swipes)
	}
}

func TestNilHandleDetach(t *testing.T) {
	var h *Handle
	h.Detach()
}

func TestAttachNilRegion(t *testing.T) {
	h := Attach(nil, Callbacks{}, nil)
	if h == nil {
		t.Fatal("Attach(nil) returned nil handle")
	}
	h.Detach()
}

// --- Enablement ---

func TestDisabledSuppressesAndResumes(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	cfg := DefaultConfig()
	cfg.SetEnabled(false)
	r.engine.Attach(r.target, rec.callbacks(), &cfg)

	if n := r.target.ListenerCount(); n != 3 {
		t.Fatalf("disabled attach registered %d touch listeners, want 3", n)
	}

	r.at(0).start(Touch{ID: 1})
	r.at(100).end(Touch{ID: 1, X: 200})
	r.tap(200, 0, 0)
	r.tap(250, 0, 0)
	r.start(Touch{ID: 1}, Touch{ID: 2, X: 100})
	r.move(Touch{ID: 1}, Touch{ID: 2, X: 200})
	r.end(Touch{ID: 1}, Touch{ID: 2})
	r.shake(5000, 50, 0, 0)
	if rec.total() != 0 {
		t.Fatalf("disabled engine produced %d callbacks", rec.total())
	}

	cfg.SetEnabled(true)
	r.at(6000).start(Touch{ID: 1})
	r.at(6100).end(Touch{ID: 1, X: 200})
	if len(rec.swipes) != 1 {
		t.Errorf("swipes after re-enable = %d, want 1", len(rec.swipes))
	}
}

func TestConfigIsReadLive(t *testing.T) {
	r := newRig()
	rec := &recorder{}
	cfg := Config{MinSwipeDistance: 200}
	r.engine.Attach(r.target, rec.callbacks(), &cfg)

	r.at(0).start(Touch{ID: 1})
	r.at(100).end(Touch{ID: 1, X: 120})
	if len(rec.swipes) != 0 {
		t.Fatalf("swipe fired below a 200px threshold")
	}

	cfg.MinSwipeDistance = 100
	r.at(1000).start(Touch{ID: 1})
	r.at(1100).end(Touch{ID: 1, X: 120})
	if len(rec.swipes) != 1 {
		t.Errorf("lowered threshold not applied; swipes = %d", len(rec.swipes))
	}
}

// --- Isolation ---

func TestRegionsAreIndependent(t *testing.T) {
	clock := &ManualClock{}
	motion := NewMotionBus()
	engine := &Engine{Motion: motion, Clock: clock}

	a := NewEventTarget("a")
	b := NewEventTarget("b")
	recA, recB := &recorder{}, &recorder{}
	engine.Attach(a, recA.callbacks(), nil)
	engine.Attach(b, recB.callbacks(), nil)

	// Start on a, end on b: neither sees a complete swipe.
	clock.Set(0)
	a.Dispatch(TouchEvent{Type: TouchStart, Touches: []Touch{{ID: 1}}})
	clock.Set(100)
	b.Dispatch(TouchEvent{Type: TouchEnd, Changed: []Touch{{ID: 1, X: 200}}})
	if len(recA.swipes)+len(recB.swipes) != 0 {
		t.Errorf("swipe leaked across regions")
	}

	// A tap on a and a tap on b do not form a double tap.
	clock.Set(1000)
	a.Dispatch(TouchEvent{Type: TouchStart, Touches: []Touch{{ID: 1}}})
	a.Dispatch(TouchEvent{Type: TouchEnd, Changed: []Touch{{ID: 1}}})
	clock.Set(1100)
	b.Dispatch(TouchEvent{Type: TouchStart, Touches: []Touch{{ID: 1}}})
	b.Dispatch(TouchEvent{Type: TouchEnd, Changed: []Touch{{ID: 1}}})
	if recA.doubleTaps+recB.doubleTaps != 0 {
		t.Errorf("double tap leaked across regions")
	}
}

func TestTwoAttachmentsOnSameRegion(t *testing.T) {
	r := newRig()
	rec1, rec2 := &recorder{}, &recorder{}
	cfg1 := Config{MinSwipeDistance: 50}
	cfg2 := Config{MinSwipeDistance: 150}
	r.engine.Attach(r.target, rec1.callbacks(), &cfg1)
	h2 := r.engine.Attach(r.target, rec2.callbacks(), &cfg2)

	r.at(0).start(Touch{ID: 1})
	r.at(100).end(Touch{ID: 1, X: 100})
	if len(rec1.swipes) != 1 || len(rec2.swipes) != 0 {
		t.Errorf("swipes = (%d, %d), want (1, 0)", len(rec1.swipes), len(rec2.swipes))
	}

	h2.Detach()
	if n := r.target.ListenerCount(); n != 3 {
		t.Errorf("listeners after detaching one of two = %d, want 3", n)
	}
}

func TestSharedMotionSourceIndependentCooldowns(t *testing.T) {
	r := newRig()
	rec1, rec2 := &recorder{}, &recorder{}
	r.engine.Attach(NewEventTarget("one"), rec1.callbacks(), nil)
	r.shake(0, 0, 0, 0)
	r.shake(100, 30, 0, 0)

	// Attached later: its baseline starts at zero and its cooldown is its own.
	r.engine.Attach(NewEventTarget("two"), rec2.callbacks(), nil)
	r.shake(200, 0, 0, 0)

	if rec1.shakes != 1 {
		t.Errorf("first attachment shakes = %d, want 1", rec1.shakes)
	}
	if rec2.shakes != 0 {
		t.Errorf("second attachment shakes = %d, want 0 (delta from its own baseline is 0)", rec2.shakes)
	}
}

// --- Benchmarks ---

func BenchmarkSwipe(b *testing.B) {
	r := newRig()
	r.engine.Attach(r.target, Callbacks{OnSwipe: func(Direction) {}}, nil)
	start := TouchEvent{Type: TouchStart, Touches: []Touch{{ID: 1}}}
	end := TouchEvent{Type: TouchEnd, Changed: []Touch{{ID: 1, X: 200}}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.target.Dispatch(start)
		r.target.Dispatch(end)
	}
}

func BenchmarkPinchMove(b *testing.B) {
	r := newRig()
	r.engine.Attach(r.target, Callbacks{OnPinch: func(float64, float64) {}}, nil)
	r.start(Touch{ID: 1}, Touch{ID: 2, X: 100})
	move := TouchEvent{Type: TouchMove, Touches: []Touch{{ID: 1}, {ID: 2, X: 150}}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.target.Dispatch(move)
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
