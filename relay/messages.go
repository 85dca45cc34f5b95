// Package relay recognizes gestures for remote clients. A phone or browser
// streams raw touch and motion samples over a websocket; each connection gets
// its own region and engine attachment, and recognized gestures are written
// back on the same socket.
package relay

import (
	"github.com/phanxgames/gesture"
)

// Client frame types.
const (
	FrameTouchStart = "touchstart"
	FrameTouchMove  = "touchmove"
	FrameTouchEnd   = "touchend"
	FrameMotion     = "motion"
	FrameConfig     = "config"
	FramePing       = "ping"
)

// Server frame types.
const (
	FrameHello   = "hello"
	FrameGesture = "gesture"
	FramePong    = "pong"
	FrameError   = "error"
)

// TouchPoint is one contact in a touch frame.
type TouchPoint struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Accel is a gravity-inclusive acceleration sample in m/s².
type Accel struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ConfigUpdate changes the session's recognizer settings. Omitted fields keep
// their current value.
type ConfigUpdate struct {
	MinSwipeDistance  *float64 `json:"minSwipeDistance,omitempty" jsonschema:"minimum=0"`
	DoubleTapWindowMs *int64   `json:"doubleTapWindowMs,omitempty" jsonschema:"minimum=0"`
	Enabled           *bool    `json:"enabled,omitempty"`
}

// ClientFrame is a message from the client.
type ClientFrame struct {
	Type string `json:"type" jsonschema:"enum=touchstart,enum=touchmove,enum=touchend,enum=motion,enum=config,enum=ping"`
	// T is the client timestamp in milliseconds. It drives the session clock.
	T       int64         `json:"t,omitempty"`
	Touches []TouchPoint  `json:"touches,omitempty"`
	Changed []TouchPoint  `json:"changed,omitempty"`
	Accel   *Accel        `json:"accel,omitempty"`
	Config  *ConfigUpdate `json:"config,omitempty"`
}

// GestureFrame describes a recognized gesture.
type GestureFrame struct {
	Kind      string  `json:"kind" jsonschema:"enum=swipe,enum=doubletap,enum=twofingertap,enum=pinch,enum=shake"`
	Region    string  `json:"region"`
	Direction string  `json:"direction,omitempty" jsonschema:"enum=left,enum=right,enum=up,enum=down"`
	Scale     float64 `json:"scale,omitempty"`
	Delta     float64 `json:"delta,omitempty"`
}

// ServerFrame is a message to the client.
type ServerFrame struct {
	Type    string        `json:"type" jsonschema:"enum=hello,enum=gesture,enum=pong,enum=error"`
	Session string        `json:"session,omitempty"`
	T       int64         `json:"t,omitempty"`
	Gesture *GestureFrame `json:"gesture,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func touchType(frameType string) (gesture.TouchType, bool) {
	switch frameType {
	case FrameTouchStart:
		return gesture.TouchStart, true
	case FrameTouchMove:
		return gesture.TouchMove, true
	case FrameTouchEnd:
		return gesture.TouchEnd, true
	}
	return 0, false
}

func toTouches(pts []TouchPoint) []gesture.Touch {
	if len(pts) == 0 {
		return nil
	}
	out := make([]gesture.Touch, len(pts))
	for i, p := range pts {
		out[i] = gesture.Touch{ID: p.ID, X: p.X, Y: p.Y}
	}
	return out
}

func gestureFrame(e gesture.Event) *GestureFrame {
	g := &GestureFrame{Kind: e.Kind.String(), Region: e.Region}
	switch e.Kind {
	case gesture.KindSwipe:
		g.Direction = e.Direction.String()
	case gesture.KindPinch:
		g.Scale = e.Scale
		g.Delta = e.Delta
	}
	return g
}
