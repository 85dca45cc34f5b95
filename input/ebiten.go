package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers  = 10 // pointer 0 = mouse, 1-9 = touch
	mousePointer = 0
)

// touchSample is one hardware touch read during a frame.
type touchSample struct {
	id   ebiten.TouchID
	x, y float64
}

// EbitenSource polls Ebitengine touch (and optionally mouse) input once per
// frame and feeds it to a Router. Call Update from the game's Update method.
type EbitenSource struct {
	router *Router

	// Mouse makes the left mouse button act as a single finger, for desktop
	// testing.
	Mouse bool
	// Inject queues synthetic frames. When a frame is pending, hardware
	// input is skipped for that tick.
	Inject Injector
	// Script, when set, feeds Inject one step at a time.
	Script *Script

	touchIDs  []ebiten.TouchID
	samples   []touchSample
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	lastPos   [maxPointers]point
	mouseDown bool
}

// point is a screen position.
type point struct{ x, y float64 }

// NewEbitenSource creates a source that feeds r.
func NewEbitenSource(r *Router) *EbitenSource {
	return &EbitenSource{router: r}
}

// Router returns the router this source feeds.
func (s *EbitenSource) Router() *Router {
	return s.router
}

// Update reads one frame of input and flushes the router.
func (s *EbitenSource) Update() {
	defer s.router.Flush()
	if s.Script != nil {
		s.Script.Step(&s.Inject)
	}
	if s.Inject.step(s.router) {
		return
	}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	s.samples = s.samples[:0]
	for _, tid := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		s.samples = append(s.samples, touchSample{id: tid, x: float64(tx), y: float64(ty)})
	}
	s.applyTouches(s.samples)

	if s.Mouse {
		mx, my := ebiten.CursorPosition()
		s.applyMouse(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), float64(mx), float64(my))
	}
}

// applyTouches diffs this frame's touches against the previous frame.
func (s *EbitenSource) applyTouches(samples []touchSample) {
	var activeSlots [maxPointers]bool
	for _, ts := range samples {
		slot, fresh := s.touchSlot(ts.id)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		s.lastPos[slot] = point{ts.x, ts.y}
		if fresh {
			s.router.Down(slot, ts.x, ts.y)
		} else {
			s.router.Move(slot, ts.x, ts.y)
		}
	}

	// Release any touch slots that are no longer active. Ebitengine drops a
	// lifted touch from AppendTouchIDs, so the last seen position is the
	// lift position.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			p := s.lastPos[i]
			s.router.Up(i, p.x, p.y)
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

func (s *EbitenSource) applyMouse(pressed bool, x, y float64) {
	switch {
	case pressed && !s.mouseDown:
		s.mouseDown = true
		s.router.Down(mousePointer, x, y)
	case pressed:
		s.router.Move(mousePointer, x, y)
	case s.mouseDown:
		s.mouseDown = false
		s.router.Up(mousePointer, x, y)
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9). It returns the
// existing slot, or allocates a new one and reports fresh. Returns -1 if
// full.
func (s *EbitenSource) touchSlot(tid ebiten.TouchID) (slot int, fresh bool) {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i, false
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i, true
		}
	}
	return -1, false
}
