package input

import "math"

// HitShape decides whether a screen point belongs to a region.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in screen coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a round hit area, such as a floating button.
type HitCircle struct {
	X, Y, R float64
}

// Contains reports whether (x, y) is within R of the center. The edge counts.
func (c HitCircle) Contains(x, y float64) bool {
	return math.Hypot(x-c.X, y-c.Y) <= c.R
}

// Everywhere matches every point. Use it for full-screen regions.
type Everywhere struct{}

// Contains always returns true.
func (Everywhere) Contains(x, y float64) bool { return true }

// Nowhere matches no point. A region parked on Nowhere keeps its listeners
// but receives no touches.
type Nowhere struct{}

// Contains always returns false.
func (Nowhere) Contains(x, y float64) bool { return false }
