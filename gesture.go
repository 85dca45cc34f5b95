package gesture

import (
	"math"
	"time"
)

// Vec3 is a 3-axis vector used for acceleration samples.
type Vec3 struct {
	X, Y, Z float64
}

// Direction is the compass direction of a recognized swipe.
type Direction uint8

const (
	DirectionLeft  Direction = iota // dominant axis X, moving toward smaller X
	DirectionRight                  // dominant axis X, moving toward larger X
	DirectionUp                     // dominant axis Y, moving toward smaller Y
	DirectionDown                   // dominant axis Y, moving toward larger Y
)

// String returns the lowercase direction name ("left", "right", "up", "down").
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "unknown"
	}
}

// Kind identifies a recognized gesture.
type Kind uint8

const (
	KindSwipe        Kind = iota // single-finger swipe, see Event.Direction
	KindDoubleTap                // two taps inside the double-tap window
	KindTwoFingerTap             // touch-end with exactly two changed touches
	KindPinch                    // streaming two-finger scale report
	KindShake                    // large acceleration delta, rate limited
)

// String returns the gesture name used in logs and wire frames.
func (k Kind) String() string {
	switch k {
	case KindSwipe:
		return "swipe"
	case KindDoubleTap:
		return "doubletap"
	case KindTwoFingerTap:
		return "twofingertap"
	case KindPinch:
		return "pinch"
	case KindShake:
		return "shake"
	default:
		return "unknown"
	}
}

// TouchType identifies a low-level touch event delivered by a Region.
type TouchType uint8

const (
	TouchStart TouchType = iota // one or more fingers made contact
	TouchMove                   // one or more active fingers moved
	TouchEnd                    // one or more fingers lifted
)

// String returns the DOM-style event name ("touchstart", ...).
func (t TouchType) String() string {
	switch t {
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	default:
		return "unknown"
	}
}

// Touch is a single contact point. ID stays stable for the lifetime of one
// finger's contact.
type Touch struct {
	ID   int
	X, Y float64
}

// TouchEvent carries one low-level touch notification.
//
// Touches lists every finger still in contact with the region after the
// event. For TouchEnd the lifted fingers are therefore absent from Touches and
// only appear in Changed. Changed lists the fingers that started, moved or
// lifted in this event.
type TouchEvent struct {
	Type    TouchType
	Touches []Touch
	Changed []Touch
}

// MotionEvent carries one device-motion sample. A nil
// AccelerationIncludingGravity means the sensor supplied no data.
type MotionEvent struct {
	AccelerationIncludingGravity *Vec3
}

// Callbacks is the capability set handed to Attach. Every field is optional;
// gestures without a callback are never reported. OnSwipe and the
// direction-specific callbacks both fire for the same swipe.
type Callbacks struct {
	OnSwipe        func(Direction)
	OnSwipeLeft    func()
	OnSwipeRight   func()
	OnSwipeUp      func()
	OnSwipeDown    func()
	OnDoubleTap    func(TouchEvent)
	OnTwoFingerTap func(TouchEvent)
	OnPinch        func(scale, delta float64)
	OnShake        func()
}

const (
	// DefaultMinSwipeDistance is the swipe threshold in pixels.
	DefaultMinSwipeDistance = 50.0
	// DefaultDoubleTapWindow is the maximum gap between two taps.
	DefaultDoubleTapWindow = 300 * time.Millisecond

	// swipeMaxDuration bounds the time between touch-start and touch-end.
	swipeMaxDuration = 500

	// shakeThreshold is the per-axis acceleration delta (m/s²) that counts
	// as a shake. shakeCooldown is the minimum gap between notifications.
	shakeThreshold = 15.0
	shakeCooldown  = 1000
)

// Config holds the tunable thresholds for one attachment. Attach keeps the
// pointer and reads it on every event, so edits take effect immediately.
// Zero fields fall back to the defaults; the zero Config is enabled.
type Config struct {
	// MinSwipeDistance is the minimum dominant-axis travel in pixels.
	// Values <= 0 mean DefaultMinSwipeDistance, so a zero threshold cannot
	// be configured. Use a small positive value such as 1 to accept almost
	// any travel.
	MinSwipeDistance float64
	// DoubleTapWindow is the maximum gap between taps of a double-tap.
	// Values <= 0 mean DefaultDoubleTapWindow.
	DoubleTapWindow time.Duration
	// Disabled suppresses all recognition while set. Listeners stay
	// registered.
	Disabled bool
}

// DefaultConfig returns a Config with every threshold set explicitly.
func DefaultConfig() Config {
	return Config{
		MinSwipeDistance: DefaultMinSwipeDistance,
		DoubleTapWindow:  DefaultDoubleTapWindow,
	}
}

// Enabled reports whether recognition is active.
func (c *Config) Enabled() bool {
	return c == nil || !c.Disabled
}

// SetEnabled toggles recognition without re-attaching.
func (c *Config) SetEnabled(on bool) {
	c.Disabled = !on
}

func (c *Config) minSwipeDistance() float64 {
	if c == nil || c.MinSwipeDistance <= 0 {
		return DefaultMinSwipeDistance
	}
	return c.MinSwipeDistance
}

func (c *Config) doubleTapWindowMs() int64 {
	if c == nil || c.DoubleTapWindow <= 0 {
		return DefaultDoubleTapWindow.Milliseconds()
	}
	return c.DoubleTapWindow.Milliseconds()
}

// distance returns the Euclidean distance between two touches.
func distance(a, b Touch) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
