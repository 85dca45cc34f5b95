package neural

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette holds the field colors for one theme. Alpha channels are ignored;
// opacity comes from the nodes.
type Palette struct {
	Background color.RGBA
	Link       color.RGBA
	LinkAlpha  float64
	Node       color.RGBA
	Sage       color.RGBA
	UseSage    bool
	GlowAlpha  float64
}

var (
	// DarkPalette is used with the dark theme.
	DarkPalette = Palette{
		Background: color.RGBA{R: 30, G: 24, B: 20, A: 255},
		Link:       color.RGBA{R: 214, G: 134, B: 150, A: 255},
		LinkAlpha:  1,
		Node:       color.RGBA{R: 255, G: 170, B: 185, A: 255},
		Sage:       color.RGBA{R: 126, G: 196, B: 128, A: 255},
		UseSage:    true,
		GlowAlpha:  0.8,
	}
	// LightPalette is used with the light theme.
	LightPalette = Palette{
		Background: color.RGBA{R: 249, G: 243, B: 234, A: 255},
		Link:       color.RGBA{R: 176, G: 112, B: 124, A: 255},
		LinkAlpha:  0.7,
		Node:       color.RGBA{R: 176, G: 104, B: 118, A: 255},
		GlowAlpha:  0.6,
	}
)

// Draw renders the field into dst at the current rendered scale.
func (f *Field) Draw(dst *ebiten.Image, p Palette) {
	dst.Fill(p.Background)
	s := float32(f.scale)

	f.Links(func(a, b int, strength float64) {
		na, nb := f.Nodes[a], f.Nodes[b]
		alpha := strength * 0.4 * f.Pulse(a, true) * p.LinkAlpha
		vector.StrokeLine(dst,
			float32(na.X)*s, float32(na.Y)*s,
			float32(nb.X)*s, float32(nb.Y)*s,
			0.8*s, withAlpha(p.Link, alpha), true)
	})

	for i, n := range f.Nodes {
		pulse := f.Pulse(i, false)
		r := float32(n.Radius*pulse) * s
		c := p.Node
		if p.UseSage && n.Sage() {
			c = p.Sage
		}
		x, y := float32(n.X)*s, float32(n.Y)*s
		vector.DrawFilledCircle(dst, x, y, r*4, withAlpha(c, n.Opacity*0.15*p.GlowAlpha), true)
		vector.DrawFilledCircle(dst, x, y, r, withAlpha(c, n.Opacity*pulse), true)
	}
}

// withAlpha returns c with premultiplied alpha a, clamped to [0, 1].
func withAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}
