// Portfolio-mobile is the gomobile build of the gesture demo. It shows a
// full-screen color field driven by gestures:
//
//   - swipe left/right: step the hue
//   - double-tap: switch between the dark and light theme
//   - two-finger tap: flash the field white
//   - pinch on the upper half: zoom the brightness
//   - shake the device: reset the zoom
//
// Build it with gomobile build -target=android.
package main

import (
	"log"

	"github.com/phanxgames/gesture"
	"github.com/phanxgames/gesture/input"
)

const (
	minZoom   = 0.5
	maxZoom   = 2
	flashTime = 6 // frames
)

// hues is the swipe palette, as RGB in [0, 1].
var hues = [][3]float32{
	{0.93, 0.44, 0.24},
	{0.25, 0.55, 0.85},
	{0.36, 0.72, 0.45},
	{0.62, 0.40, 0.78},
}

// mobileApp is the platform-independent part of the app. The Android loop
// feeds it touch, sensor and size events and reads back the clear color.
type mobileApp struct {
	router  *input.Router
	src     *input.MobileSource
	motion  *gesture.MotionBus
	engine  *gesture.Engine
	handles []*gesture.Handle

	dark      bool
	hue       int
	zoom      float64
	pinchBase float64
	flash     int
}

// newMobileApp wires the regions. A nil clock uses the process clock.
func newMobileApp(clock gesture.Clock) *mobileApp {
	m := &mobileApp{
		router: input.NewRouter(),
		motion: gesture.NewMotionBus(),
		dark:   true,
		zoom:   1,
	}
	m.src = input.NewMobileSource(m.router)
	m.engine = &gesture.Engine{Motion: m.motion, Clock: clock}

	// The stage has no area until the first size event.
	stage := m.router.Add("stage", input.Nowhere{})
	stage.AddTouchListener(gesture.TouchStart, func(e gesture.TouchEvent) {
		if len(e.Touches) == 2 {
			m.pinchBase = m.zoom
		}
	})
	m.handles = append(m.handles, m.engine.Attach(stage, gesture.Callbacks{
		OnPinch: func(scale, _ float64) { m.zoom = clampZoom(m.pinchBase * scale) },
		OnShake: func() {
			m.zoom = 1
			log.Print("shake: zoom reset")
		},
	}, nil))

	screen := m.router.Add("screen", input.Everywhere{})
	m.handles = append(m.handles, m.engine.Attach(screen, gesture.Callbacks{
		OnSwipe: func(d gesture.Direction) { log.Printf("swipe %s", d) },
		OnSwipeLeft: func() {
			m.hue = (m.hue + 1) % len(hues)
		},
		OnSwipeRight: func() {
			m.hue = (m.hue + len(hues) - 1) % len(hues)
		},
		OnDoubleTap:    func(gesture.TouchEvent) { m.dark = !m.dark },
		OnTwoFingerTap: func(gesture.TouchEvent) { m.flash = flashTime },
	}, nil))
	return m
}

func clampZoom(z float64) float64 {
	return max(minZoom, min(maxZoom, z))
}

// resize updates the pixel density and the stage area. The stage covers the
// upper half of the screen, in points.
func (m *mobileApp) resize(widthPx, heightPx int, pixelsPerPt float32) {
	m.src.PixelsPerPt = pixelsPerPt
	if pixelsPerPt <= 0 {
		pixelsPerPt = 1
	}
	w := float64(float32(widthPx) / pixelsPerPt)
	h := float64(float32(heightPx) / pixelsPerPt)
	m.router.SetShape("stage", input.HitRect{Width: w, Height: h / 2})
}

// accel forwards one accelerometer sample in m/s^2.
func (m *mobileApp) accel(data []float64) {
	if len(data) < 3 {
		return
	}
	m.motion.Dispatch(gesture.MotionEvent{
		AccelerationIncludingGravity: &gesture.Vec3{X: data[0], Y: data[1], Z: data[2]},
	})
}

// frame flushes the touches buffered since the previous frame and returns
// the color to clear the screen with.
func (m *mobileApp) frame() (r, g, b float32) {
	m.src.Flush()
	if m.flash > 0 {
		m.flash--
		return 1, 1, 1
	}
	c := hues[m.hue]
	k := float32(m.zoom)
	if m.dark {
		k *= 0.5
	}
	return min(1, c[0]*k), min(1, c[1]*k), min(1, c[2]*k)
}

func (m *mobileApp) close() {
	for _, h := range m.handles {
		h.Detach()
	}
}
