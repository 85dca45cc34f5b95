package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/gesture"
	"github.com/phanxgames/gesture/backend"
	"github.com/phanxgames/gesture/chat"
	"github.com/phanxgames/gesture/ecs"
	"github.com/phanxgames/gesture/input"
	"github.com/phanxgames/gesture/neural"
)

const (
	heroFraction   = 0.45
	lineHeight     = 16
	margin         = 16
	bubbleRadius   = 28
	requestTimeout = 5 * time.Second
)

var formLabels = [3]string{"Name", "Email", "Message"}

// contactForm is the contact section draft. focus is the field receiving
// typed characters, or -1.
type contactForm struct {
	fields [3]string
	focus  int
}

func (f contactForm) empty() bool {
	return f.fields[0] == "" && f.fields[1] == "" && f.fields[2] == ""
}

// Game is the ebiten.Game for the portfolio window.
type Game struct {
	w, h    int
	heroH   float64
	content input.HitRect
	// bubble is the floating chat button in the bottom-right corner.
	bubble input.HitCircle

	router  *input.Router
	src     *input.EbitenSource
	motion  *gesture.MotionBus
	engine  *gesture.Engine
	handles []*gesture.Handle
	unbind  func()

	// One config per region; section regions are enabled only while their
	// section is on screen.
	cfg map[string]*gesture.Config

	field *neural.Field
	dark  bool

	section  int
	expanded map[string]bool
	card     int
	// claimed is set when a section region consumed a horizontal swipe in
	// this frame, so the app region does not also change section.
	claimed bool

	form   contactForm
	status string

	bot       *chat.Bot
	chatInput string
	api       *backend.Client

	visitors    uint64
	hasVisitors bool

	world donburi.World
	sink  gesture.EventSink
	stats donburi.Entity

	// results carries completions of background requests back to Update.
	results chan func(*Game)
	runes   []rune

	shots   []string
	shotDir string
}

func newGame(w, h int, backendURL string) *Game {
	heroH := float64(h) * heroFraction
	g := &Game{
		w:        w,
		h:        h,
		heroH:    heroH,
		content:  input.HitRect{X: 0, Y: heroH, Width: float64(w), Height: float64(h) - heroH},
		bubble:   input.HitCircle{X: float64(w) - margin - bubbleRadius, Y: float64(h) - 3*margin - bubbleRadius, R: bubbleRadius},
		router:   input.NewRouter(),
		motion:   gesture.NewMotionBus(),
		cfg:      make(map[string]*gesture.Config),
		field:    neural.New(float64(w), heroH, uint64(time.Now().UnixNano())),
		dark:     true,
		expanded: make(map[string]bool),
		form:     contactForm{focus: -1},
		shotDir:  "screenshots",
		world:    donburi.NewWorld(),
		results:  make(chan func(*Game), 16),
	}
	g.engine = &gesture.Engine{Motion: g.motion}
	g.src = input.NewEbitenSource(g.router)
	g.src.Mouse = true
	g.sink = ecs.NewDonburiSink(g.world)
	g.stats = ecs.TrackStats(g.world)

	var faq chat.FAQ
	if backendURL != "" {
		g.api = backend.NewClient(backendURL, nil)
		faq = g.api
	}
	g.bot = chat.New(chat.DefaultKB, faq)

	g.bindRegions()
	g.showSection(0)
	g.countVisit()
	return g
}

// bindRegions registers every region. The router flushes regions in
// registration order, so section regions run before the app region.
func (g *Game) bindRegions() {
	canvas := g.router.Add("canvas", input.HitRect{Width: float64(g.w), Height: g.heroH})
	canvasCfg := g.config("canvas", gesture.DefaultMinSwipeDistance)
	g.unbind = g.field.Bind(g.engine, canvas, canvasCfg, true)
	g.handles = append(g.handles,
		g.engine.Attach(canvas, g.forward("canvas", gesture.KindPinch, gesture.KindShake), canvasCfg))

	expand := func(id string, open bool) func() {
		return func() { g.expanded[id] = open }
	}
	for _, id := range []string{"about", "resume"} {
		g.attach(id, g.content, 60, gesture.Callbacks{
			OnSwipeUp:   expand(id, true),
			OnSwipeDown: expand(id, false),
		}, gesture.KindSwipe)
	}

	g.attach("projects", g.content, 60, gesture.Callbacks{
		OnSwipeLeft:  func() { g.claim(); g.card = (g.card + 1) % len(projects) },
		OnSwipeRight: func() { g.claim(); g.card = (g.card + len(projects) - 1) % len(projects) },
	}, gesture.KindSwipe)

	g.attach("contact", g.content, 80, gesture.Callbacks{
		OnSwipeRight: func() {
			g.claim()
			if !g.form.empty() {
				g.submit()
			}
		},
		OnShake: func() {
			g.form = contactForm{focus: -1}
			g.status = "Form cleared"
		},
	}, gesture.KindSwipe, gesture.KindShake)

	g.attach("chat", g.bubble, gesture.DefaultMinSwipeDistance, gesture.Callbacks{
		OnTwoFingerTap: func(gesture.TouchEvent) { g.bot.Toggle() },
	}, gesture.KindTwoFingerTap)

	g.attach("app", input.Everywhere{}, 80, gesture.Callbacks{
		OnSwipeLeft:  func() { g.navigate(1) },
		OnSwipeRight: func() { g.navigate(-1) },
		OnDoubleTap:  func(gesture.TouchEvent) { g.dark = !g.dark },
	}, gesture.KindSwipe, gesture.KindDoubleTap)
}

// play runs a gesture script. Shake steps go to the motion source and
// screenshot steps capture the next frame.
func (g *Game) play(sc *input.Script) {
	sc.OnShake = g.shake
	sc.OnScreenshot = g.screenshot
	g.src.Script = sc
}

func (g *Game) config(name string, minSwipe float64) *gesture.Config {
	cfg := gesture.DefaultConfig()
	cfg.MinSwipeDistance = minSwipe
	g.cfg[name] = &cfg
	return &cfg
}

// attach registers a region and attaches cb to it. The listed gesture kinds
// are also published to the stats world.
func (g *Game) attach(name string, shape input.HitShape, minSwipe float64, cb gesture.Callbacks, kinds ...gesture.Kind) {
	target := g.router.Add(name, shape)
	cfg := g.config(name, minSwipe)
	g.handles = append(g.handles, g.engine.Attach(target, gesture.Chain(cb, g.forward(name, kinds...)), cfg))
}

// forward returns a capability set that publishes only the given kinds.
func (g *Game) forward(name string, kinds ...gesture.Kind) gesture.Callbacks {
	all := gesture.Forward(name, g.sink)
	var cb gesture.Callbacks
	for _, k := range kinds {
		switch k {
		case gesture.KindSwipe:
			cb.OnSwipe = all.OnSwipe
		case gesture.KindDoubleTap:
			cb.OnDoubleTap = all.OnDoubleTap
		case gesture.KindTwoFingerTap:
			cb.OnTwoFingerTap = all.OnTwoFingerTap
		case gesture.KindPinch:
			cb.OnPinch = all.OnPinch
		case gesture.KindShake:
			cb.OnShake = all.OnShake
		}
	}
	return cb
}

func (g *Game) claim() {
	g.claimed = true
}

func (g *Game) navigate(step int) {
	if g.claimed {
		return
	}
	next := g.section + step
	if next < 0 || next >= len(sections) {
		return
	}
	g.showSection(next)
}

// showSection switches the visible section and enables only the regions
// that belong to it.
func (g *Game) showSection(i int) {
	g.section = i
	id := sections[i].id
	for _, name := range []string{"about", "resume", "projects", "contact"} {
		g.cfg[name].SetEnabled(name == id)
	}
	if id != "contact" {
		g.form.focus = -1
	}
}

func (g *Game) countVisit() {
	if g.api == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		n, err := g.api.IncrementVisitorCount(ctx)
		if err != nil {
			log.Printf("visitor count: %v", err)
			return
		}
		g.results <- func(g *Game) { g.visitors, g.hasVisitors = n, true }
	}()
}

func (g *Game) submit() {
	name, email, msg := g.form.fields[0], g.form.fields[1], g.form.fields[2]
	if err := backend.ValidateMessage(name, email, msg); err != nil {
		g.status = "Name, email and message are required"
		return
	}
	if g.api == nil {
		g.status = "Offline: message not sent"
		return
	}
	g.status = "Sending..."
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := g.api.SubmitMessage(ctx, name, email, msg)
		g.results <- func(g *Game) {
			if err != nil {
				log.Printf("submit message: %v", err)
				g.status = "Could not send message, try again"
				return
			}
			g.form = contactForm{focus: -1}
			g.status = "Message sent, thank you!"
		}
	}()
}

// quickPrompt asks the i-th canned question. It reports false for an index
// outside chat.QuickPrompts.
func (g *Game) quickPrompt(i int) bool {
	if i < 0 || i >= len(chat.QuickPrompts) {
		return false
	}
	g.ask(chat.QuickPrompts[i])
	return true
}

func (g *Game) ask(q string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		g.bot.Ask(ctx, q)
	}()
}

// shake emits a synthetic shake on the motion source: a jump well past the
// threshold on the X axis, then back to rest.
func (g *Game) shake() {
	rest := gesture.Vec3{Z: 9.81}
	jolt := gesture.Vec3{X: 25, Z: 9.81}
	for _, v := range []gesture.Vec3{rest, jolt, rest} {
		g.motion.Dispatch(gesture.MotionEvent{AccelerationIncludingGravity: &v})
	}
}

func (g *Game) typing() bool {
	return g.bot.Open() || g.form.focus >= 0
}

func (g *Game) Update() error {
drain:
	for {
		select {
		case fn := <-g.results:
			fn(g)
		default:
			break drain
		}
	}

	g.claimed = false
	if quit := g.handleKeys(); quit {
		return ebiten.Termination
	}
	g.src.Update()
	ecs.GestureEventType.ProcessEvents(g.world)
	g.field.Update(1 / float32(ebiten.TPS()))
	return nil
}

func (g *Game) handleKeys() (quit bool) {
	if g.typing() {
		g.handleTyping()
		return false
	}

	cx, cy := float64(g.w)/2, g.heroH+(float64(g.h)-g.heroH)/2
	inj := &g.src.Inject
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return true
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.shake()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		bx, by := g.bubble.X, g.bubble.Y
		inj.TwoFingerTap(bx-12, by, bx+12, by)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		inj.Pinch(float64(g.w)/2, g.heroH/2, 80, 160, 8)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		inj.Pinch(float64(g.w)/2, g.heroH/2, 160, 80, 8)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		inj.DoubleTap(cx, cy)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		inj.Swipe(cx+100, cy, cx-100, cy, 6)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		inj.Swipe(cx-100, cy, cx+100, cy, 6)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		inj.Swipe(cx, cy+80, cx, cy-80, 6)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		inj.Swipe(cx, cy-80, cx, cy+80, 6)
	case inpututil.IsKeyJustPressed(ebiten.KeyF12):
		g.screenshot("manual")
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if sections[g.section].id == "contact" {
			g.form.focus = 0
		}
	}
	return false
}

func (g *Game) handleTyping() {
	g.runes = ebiten.AppendInputChars(g.runes[:0])
	typed := string(g.runes)

	if g.bot.Open() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			g.bot.Toggle()
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			if q := strings.TrimSpace(g.chatInput); q != "" {
				g.ask(q)
			}
			g.chatInput = ""
		case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
			g.chatInput = dropLast(g.chatInput)
		case g.chatInput == "" && len(typed) == 1 && typed[0] >= '1' && typed[0] <= '9':
			if !g.quickPrompt(int(typed[0] - '1')) {
				g.chatInput = typed
			}
		default:
			g.chatInput += typed
		}
		return
	}

	f := &g.form
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		f.focus = -1
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		f.focus = (f.focus + 1) % len(f.fields)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if f.focus == len(f.fields)-1 {
			g.submit()
		} else {
			f.focus++
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		f.fields[f.focus] = dropLast(f.fields[f.focus])
	default:
		f.fields[f.focus] += typed
	}
}

func dropLast(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

func (g *Game) palette() neural.Palette {
	if g.dark {
		return neural.DarkPalette
	}
	return neural.LightPalette
}

// panel is the content background. Debug text is always white, so the light
// theme uses a muted rose instead of its page color.
func (g *Game) panel() color.RGBA {
	if g.dark {
		return color.RGBA{R: 42, G: 34, B: 30, A: 255}
	}
	return color.RGBA{R: 150, G: 104, B: 114, A: 255}
}

func (g *Game) Draw(screen *ebiten.Image) {
	hero := screen.SubImage(image.Rect(0, 0, g.w, int(g.heroH))).(*ebiten.Image)
	g.field.Draw(hero, g.palette())

	content := screen.SubImage(image.Rect(0, int(g.heroH), g.w, g.h)).(*ebiten.Image)
	content.Fill(g.panel())

	x, y := margin, int(g.heroH)+margin
	sec := sections[g.section]
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s   (%d/%d)", strings.ToUpper(sec.title), g.section+1, len(sections)), x, y)
	y += 2 * lineHeight

	var body []string
	switch sec.id {
	case "projects":
		p := projects[g.card]
		body = []string{
			fmt.Sprintf("[%d/%d] %s", g.card+1, len(projects), p.title),
			p.blurb,
			"",
			"Swipe left/right for more projects.",
		}
	case "contact":
		body = g.contactLines()
	default:
		body = sec.lines
		if g.expanded[sec.id] {
			body = append(append([]string(nil), body...), sec.more...)
		}
	}
	if g.bot.Open() {
		body = g.chatLines()
	}
	for _, line := range body {
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += lineHeight
	}

	ebitenutil.DebugPrintAt(screen, g.hud(), x, g.h-margin-lineHeight)
	g.drawBubble(screen)
	g.flushScreenshots(screen)
}

// drawBubble paints the chat button. Two-finger tap it to open the assistant.
func (g *Game) drawBubble(screen *ebiten.Image) {
	b := g.bubble
	fill := color.RGBA{R: 255, G: 111, B: 60, A: 255}
	if g.bot.Open() {
		fill = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	}
	vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.R), fill, true)
	ebitenutil.DebugPrintAt(screen, "AI", int(b.X)-6, int(b.Y)-8)
}

func (g *Game) contactLines() []string {
	lines := make([]string, 0, len(formLabels)+3)
	for i, label := range formLabels {
		cursor := " "
		if g.form.focus == i {
			cursor = ">"
		}
		lines = append(lines, fmt.Sprintf("%s %-8s %s", cursor, label+":", g.form.fields[i]))
	}
	lines = append(lines, "", "Tab to type, swipe right to send, shake to clear.")
	if g.status != "" {
		lines = append(lines, g.status)
	}
	return lines
}

func (g *Game) chatLines() []string {
	const maxLines = 8
	var lines []string
	for _, l := range g.bot.Transcript() {
		prefix := "AI: "
		if l.Role == chat.RoleUser {
			prefix = "You: "
		}
		lines = append(lines, prefix+chat.Plain(l.Content))
	}
	if len(lines) == 1 && g.chatInput == "" {
		for i, q := range chat.QuickPrompts {
			lines = append(lines, fmt.Sprintf("  %d) %s", i+1, q))
		}
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return append([]string{"ASSISTANT (two-finger tap or Esc to close)"}, append(lines, "> "+g.chatInput+"_")...)
}

func (g *Game) hud() string {
	st := ecs.Stats.Get(g.world.Entry(g.stats))
	last := "-"
	if st.HasLast {
		last = st.Last.Region + ":" + st.Last.Kind.String()
		if st.Last.Kind == gesture.KindSwipe {
			last += " " + st.Last.Direction.String()
		}
	}
	visitors := "offline"
	if g.hasVisitors {
		visitors = fmt.Sprint(g.visitors)
	}
	return fmt.Sprintf("swipe %d  dtap %d  2f %d  pinch %d (x%.2f)  shake %d  last %s  zoom %.2f  visitors %s  TPS %.0f",
		st.Counts[gesture.KindSwipe], st.Counts[gesture.KindDoubleTap], st.Counts[gesture.KindTwoFingerTap],
		st.Counts[gesture.KindPinch], st.LastScale, st.Counts[gesture.KindShake], last,
		g.field.Scale(), visitors, ebiten.ActualTPS())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

func (g *Game) close() {
	for _, h := range g.handles {
		h.Detach()
	}
	g.unbind()
}
