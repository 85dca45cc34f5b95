package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// screenshot queues a capture of the next drawn frame.
func (g *Game) screenshot(label string) {
	g.shots = append(g.shots, label)
}

// flushScreenshots writes every queued capture of screen as a PNG in
// g.shotDir. Called at the end of Draw.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.shots) == 0 {
		return
	}
	defer func() { g.shots = g.shots[:0] }()

	if err := os.MkdirAll(g.shotDir, 0o755); err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	img := capture(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range g.shots {
		path := filepath.Join(g.shotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			log.Printf("screenshot: %v", err)
		}
	}
}

// capture copies screen into a straight-alpha image.
func capture(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	for i := 0; i < len(img.Pix); i += 4 {
		a := int(img.Pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = uint8(min(int(img.Pix[i+c])*255/a, 255))
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.' and replaces everything
// else with '_'.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
