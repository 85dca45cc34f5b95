// Package neural implements the drifting node field behind the portfolio
// hero section. The field zooms with pinch gestures and snaps back to 1x on
// shake.
package neural

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	NodeCount    = 65
	NodeSpeed    = 0.3   // max pixels per step on each axis
	LinkDistance = 150.0 // nodes closer than this are connected
	WrapMargin   = 20.0  // nodes wrap once this far outside the view

	MinScale = 0.5
	MaxScale = 3.0

	// zoomDuration is how long the rendered scale takes to reach the target.
	zoomDuration = 0.25
)

// Node is one point of the field.
type Node struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	// Opacity is the base alpha in [0.3, 0.8).
	Opacity float64
	// Phase offsets the pulse animation, in [0, 2π).
	Phase float64
}

// Sage reports whether the node uses the secondary accent in dark mode.
func (n Node) Sage() bool {
	return n.Phase > math.Pi
}

// Field is a CPU-simulated node field. It is not safe for concurrent use;
// drive it from the game loop.
type Field struct {
	Nodes []Node

	width, height float64
	rng           *rand.Rand
	elapsed       float64 // milliseconds since creation

	target    float64 // pinch-controlled scale
	scale     float64 // rendered scale, eased toward target
	zoom      *gween.Tween
	lastPinch float64
}

// New creates a field filling a width x height view. The seed makes the
// initial layout reproducible.
func New(width, height float64, seed uint64) *Field {
	f := &Field{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		target: 1,
		scale:  1,
	}
	f.Resize(width, height)
	return f
}

// Resize changes the view size and scatters a fresh set of nodes across it.
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
	if cap(f.Nodes) < NodeCount {
		f.Nodes = make([]Node, NodeCount)
	}
	f.Nodes = f.Nodes[:NodeCount]
	for i := range f.Nodes {
		f.Nodes[i] = Node{
			X:       f.rng.Float64() * width,
			Y:       f.rng.Float64() * height,
			VX:      (f.rng.Float64() - 0.5) * NodeSpeed,
			VY:      (f.rng.Float64() - 0.5) * NodeSpeed,
			Radius:  f.rng.Float64()*3 + 1.5,
			Opacity: f.rng.Float64()*0.5 + 0.3,
			Phase:   f.rng.Float64() * math.Pi * 2,
		}
	}
}

// Size returns the view size passed to New or Resize.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Update advances the zoom animation by dt seconds and moves every node one
// step. Call it once per tick.
func (f *Field) Update(dt float32) {
	f.elapsed += float64(dt) * 1000
	if f.zoom != nil {
		val, finished := f.zoom.Update(dt)
		f.scale = float64(val)
		if finished {
			f.zoom = nil
		}
	}
	f.step()
}

// step moves nodes by their velocity and wraps them around the scaled view.
func (f *Field) step() {
	w := f.width / f.scale
	h := f.height / f.scale
	for i := range f.Nodes {
		n := &f.Nodes[i]
		n.X += n.VX
		n.Y += n.VY
		if n.X < -WrapMargin {
			n.X = w + WrapMargin
		}
		if n.X > w+WrapMargin {
			n.X = -WrapMargin
		}
		if n.Y < -WrapMargin {
			n.Y = h + WrapMargin
		}
		if n.Y > h+WrapMargin {
			n.Y = -WrapMargin
		}
	}
}

// Links calls fn for every pair of nodes closer than LinkDistance, with the
// link strength in (0, 1]: 1 for coincident nodes, approaching 0 at the
// cutoff.
func (f *Field) Links(fn func(a, b int, strength float64)) {
	for i := 0; i < len(f.Nodes); i++ {
		for j := i + 1; j < len(f.Nodes); j++ {
			d := math.Hypot(f.Nodes[i].X-f.Nodes[j].X, f.Nodes[i].Y-f.Nodes[j].Y)
			if d < LinkDistance {
				fn(i, j, 1-d/LinkDistance)
			}
		}
	}
}

// Pulse returns the pulse factor of node i at the current time. Link pulses
// run slower than node pulses.
func (f *Field) Pulse(i int, link bool) float64 {
	phase := f.Nodes[i].Phase
	if link {
		return math.Sin(f.elapsed*0.002+phase)*0.1 + 0.9
	}
	return math.Sin(f.elapsed*0.003+phase)*0.3 + 0.7
}

// Scale returns the rendered scale.
func (f *Field) Scale() float64 {
	return f.scale
}

// TargetScale returns the scale the field is easing toward.
func (f *Field) TargetScale() float64 {
	return f.target
}

// BeginPinch marks the start of a new two-finger gesture. Call it when two
// fingers land; Pinch reports are relative to this moment.
func (f *Field) BeginPinch() {
	f.lastPinch = 1
}

// Pinch applies a pinch report. scale is the ratio of the current finger
// distance to the distance when the fingers landed; the field multiplies its
// target by the change since the previous report and clamps the result to
// [MinScale, MaxScale].
func (f *Field) Pinch(scale float64) {
	if scale <= 0 {
		return
	}
	if f.lastPinch <= 0 {
		f.lastPinch = 1
	}
	ratio := scale / f.lastPinch
	f.lastPinch = scale
	f.zoomTo(clamp(f.target*ratio, MinScale, MaxScale))
}

// Reset eases the field back to 1x.
func (f *Field) Reset() {
	f.lastPinch = 0
	f.zoomTo(1)
}

func (f *Field) zoomTo(target float64) {
	f.target = target
	f.zoom = gween.New(float32(f.scale), float32(target), zoomDuration, ease.OutCubic)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
