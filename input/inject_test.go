package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/gesture"
)

// drain feeds every queued frame through the router, one frame per tick,
// advancing the clock by 16ms per tick.
func drain(t *testing.T, in *Injector, r *Router, clock *gesture.ManualClock) {
	t.Helper()
	for i := 0; in.Pending() > 0; i++ {
		if i > 1000 {
			t.Fatal("injector never drained")
		}
		clock.Advance(16_000_000)
		in.step(r)
		r.Flush()
	}
}

func TestInjectTapDoubleTap(t *testing.T) {
	r := NewRouter()
	target := r.Add("screen", nil)
	engine, clock := newEngine()
	var taps int
	engine.Attach(target, gesture.Callbacks{OnDoubleTap: func(gesture.TouchEvent) { taps++ }}, nil)

	var in Injector
	in.DoubleTap(100, 100)
	if in.Pending() != 4 {
		t.Fatalf("Pending = %d, want 4", in.Pending())
	}
	drain(t, &in, r, clock)
	if taps != 1 {
		t.Errorf("double taps = %d, want 1", taps)
	}
}

func TestInjectSwipe(t *testing.T) {
	r := NewRouter()
	target := r.Add("screen", nil)
	engine, clock := newEngine()
	var dirs []gesture.Direction
	engine.Attach(target, gesture.Callbacks{OnSwipe: func(d gesture.Direction) { dirs = append(dirs, d) }}, nil)

	var in Injector
	in.Swipe(400, 300, 200, 300, 10)
	if in.Pending() != 10 {
		t.Fatalf("Pending = %d, want 10", in.Pending())
	}
	drain(t, &in, r, clock)
	if len(dirs) != 1 || dirs[0] != gesture.DirectionLeft {
		t.Errorf("swipes = %v, want [left]", dirs)
	}
}

func TestInjectTwoFingerTap(t *testing.T) {
	r := NewRouter()
	target := r.Add("screen", nil)
	engine, clock := newEngine()
	var taps int
	engine.Attach(target, gesture.Callbacks{OnTwoFingerTap: func(gesture.TouchEvent) { taps++ }}, nil)

	var in Injector
	in.TwoFingerTap(100, 100, 160, 100)
	drain(t, &in, r, clock)
	if taps != 1 {
		t.Errorf("two-finger taps = %d, want 1", taps)
	}
}

func TestInjectPinch(t *testing.T) {
	r := NewRouter()
	target := r.Add("screen", nil)
	engine, clock := newEngine()
	var scales []float64
	engine.Attach(target, gesture.Callbacks{OnPinch: func(s, _ float64) { scales = append(scales, s) }}, nil)

	var in Injector
	in.Pinch(200, 200, 100, 200, 6)
	drain(t, &in, r, clock)

	if len(scales) != 4 {
		t.Fatalf("pinch reports = %d, want 4", len(scales))
	}
	if last := scales[len(scales)-1]; last < 1.999 || last > 2.001 {
		t.Errorf("final scale = %v, want 2", last)
	}
	if r.Fingers() != 0 {
		t.Errorf("fingers left down: %d", r.Fingers())
	}
}

func TestInjectMinimumFrames(t *testing.T) {
	var in Injector
	in.Swipe(0, 0, 1, 1, 0)
	if in.Pending() != 2 {
		t.Errorf("Swipe with 0 frames queued %d, want 2", in.Pending())
	}
	in.Clear()
	in.Pinch(0, 0, 10, 20, 1)
	if in.Pending() != 3 {
		t.Errorf("Pinch with 1 frame queued %d, want 3", in.Pending())
	}
	if (&Injector{}).step(NewRouter()) {
		t.Error("step on empty queue reported work")
	}
}

func TestEbitenSourceTouchDiff(t *testing.T) {
	r := NewRouter()
	target := r.Add("screen", nil)
	engine, clock := newEngine()
	var taps, dirs int
	engine.Attach(target, gesture.Callbacks{
		OnTwoFingerTap: func(gesture.TouchEvent) { taps++ },
		OnSwipe:        func(gesture.Direction) { dirs++ },
	}, nil)

	s := NewEbitenSource(r)
	frame := func(samples ...touchSample) {
		clock.Advance(16_000_000)
		s.applyTouches(samples)
		r.Flush()
	}

	// One finger swipes right, lifted between frames.
	frame(touchSample{id: ebiten.TouchID(7), x: 100, y: 100})
	frame(touchSample{id: ebiten.TouchID(7), x: 180, y: 100})
	frame()
	if dirs != 1 {
		t.Errorf("swipes = %d, want 1", dirs)
	}

	// Two fingers lift in the same frame.
	frame(touchSample{id: 11, x: 10, y: 10}, touchSample{id: 12, x: 60, y: 10})
	frame()
	if taps != 1 {
		t.Errorf("two-finger taps = %d, want 1", taps)
	}
	if r.Fingers() != 0 {
		t.Errorf("fingers = %d after release, want 0", r.Fingers())
	}
}

func TestEbitenSourceSlotsFull(t *testing.T) {
	s := NewEbitenSource(NewRouter())
	for i := 0; i < maxPointers-1; i++ {
		if slot, fresh := s.touchSlot(ebiten.TouchID(i + 100)); slot < 1 || !fresh {
			t.Fatalf("slot %d = (%d, %v)", i, slot, fresh)
		}
	}
	if slot, _ := s.touchSlot(999); slot != -1 {
		t.Errorf("slot when full = %d, want -1", slot)
	}
	if slot, fresh := s.touchSlot(100); slot != 1 || fresh {
		t.Errorf("existing id = (%d, %v), want (1, false)", slot, fresh)
	}
}

func TestEbitenSourceMouse(t *testing.T) {
	r := NewRouter()
	target := r.Add("screen", nil)
	engine, clock := newEngine()
	var dirs []gesture.Direction
	engine.Attach(target, gesture.Callbacks{OnSwipe: func(d gesture.Direction) { dirs = append(dirs, d) }}, nil)

	s := NewEbitenSource(r)
	s.Mouse = true
	for _, step := range []struct {
		pressed bool
		y       float64
	}{{true, 300}, {true, 250}, {true, 200}, {false, 200}} {
		clock.Advance(16_000_000)
		s.applyMouse(step.pressed, 100, step.y)
		r.Flush()
	}
	if len(dirs) != 1 || dirs[0] != gesture.DirectionUp {
		t.Errorf("swipes = %v, want [up]", dirs)
	}
}
