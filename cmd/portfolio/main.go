// Portfolio is a single-window portfolio driven entirely by gestures.
//
// The top of the window is a neural-network canvas; the bottom shows one
// section at a time. Each area is a separate gesture region:
//
//   - app (whole window): swipe left/right for the next/previous section,
//     double-tap to switch between the dark and light theme
//   - canvas: pinch to zoom the network, shake to reset it
//   - about, resume: swipe up to expand, down to collapse
//   - projects: swipe left/right to page through the cards
//   - contact: Tab to type, swipe right to send, shake to clear
//   - chat (round button, bottom right): two-finger tap to open or close
//     the assistant; keys 1-4 ask the listed quick prompts
//
// Desktop has no accelerometer or multi-touch, so the keyboard can inject
// gestures: S shake, T two-finger tap, P pinch out, O pinch in, D double-tap,
// arrow keys swipe, F12 screenshot. The mouse acts as a single finger. Esc
// quits. -script plays a JSON gesture script (see input.Script).
//
// With -backend set, the contact form, the visitor counter and the chat FAQ
// fallback talk to a portfolio-server instance.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gesture"
	"github.com/phanxgames/gesture/input"
)

const windowTitle = "Portfolio"

func main() {
	backendURL := flag.String("backend", "", "portfolio-server base URL, e.g. http://localhost:8080")
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	debug := flag.Bool("debug", false, "log gesture diagnostics to stderr")
	script := flag.String("script", "", "JSON gesture script to play on startup")
	shots := flag.String("shots", "screenshots", "directory for screenshots (F12 or script steps)")
	flag.Parse()

	gesture.SetDebug(*debug)

	g := newGame(*width, *height, *backendURL)
	defer g.close()
	g.shotDir = *shots
	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		sc, err := input.LoadScript(data)
		if err != nil {
			log.Fatalf("%s: %v", *script, err)
		}
		g.play(sc)
	}

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(*width, *height)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
