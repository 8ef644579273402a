// Package viewer is the desktop front end: an ebiten window where the mouse
// wheel scrolls the page and the cursor nudges the product.
package viewer

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gdata/v2"

	"github.com/ivlev/scrolljourney/internal/journey"
	"github.com/ivlev/scrolljourney/internal/motion"
	"github.com/ivlev/scrolljourney/internal/renderer"
)

// WheelStep is the scroll distance of one wheel notch, in pixels.
const WheelStep = 60.0

var (
	background = color.RGBA{R: 10, G: 12, B: 20, A: 255}
	edgeColor  = color.RGBA{R: 102, G: 250, B: 128, A: 255}
	dotColor   = color.RGBA{R: 0, G: 245, B: 255, A: 255}
)

type Game struct {
	scene *Scene
	style renderer.Style
}

func NewGame(scene *Scene) *Game {
	return &Game{scene: scene, style: renderer.NeonStyle()}
}

func (g *Game) Update() error {
	s := g.scene

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	_, dy := ebiten.Wheel()
	s.Tracker.ScrollBy(-dy * WheelStep)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.Tracker.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		s.Tracker.ScrollTo(s.Tracker.MaxOffset())
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.Tracker.ScrollBy(s.Tracker.ViewportHeight())
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		s.Tracker.ScrollBy(-s.Tracker.ViewportHeight())
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.Tracker.ScrollBy(WheelStep / 6)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.Tracker.ScrollBy(-WheelStep / 6)
	}

	x, y := ebiten.CursorPosition()
	s.Mouse.SetPixel(float64(x), float64(y), float64(s.width), float64(s.height))

	s.Advance(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.scene
	screen.Fill(background)

	pts := s.Points()
	lw := float32(g.style.LineWidth * renderer.Pulse(s.Elapsed()))
	for _, e := range s.Mesh.Edges() {
		a, b := pts[e[0]], pts[e[1]]
		c := fade(edgeColor, ((a.Depth+b.Depth)/2+1)/2)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), lw, c, true)
	}
	for _, p := range pts {
		r := float32(2 + (p.Depth+1))
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, fade(dotColor, (p.Depth+1)/2), true)
	}

	loc := s.Located()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  %3.0f%%  (%.0f FPS)", loc.Section, s.Tracker.Progress()*100, ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// fade scales a colour by alpha in premultiplied form.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// Options configure Run.
type Options struct {
	Title       string
	Width       int
	Height      int
	JourneyName string // session key; the session is dropped when it changes
	Smoother    motion.Smoother
}

// Run opens the window and blocks until it is closed. The scroll position
// is restored from and saved to the per-user data directory.
func Run(j *journey.Journey, opts Options) error {
	var store PropStore
	if m, err := gdata.Open(gdata.Config{AppName: "scrolljourney"}); err != nil {
		log.Printf("[!] Сессия не будет сохранена: %v", err)
	} else {
		store = m
	}
	sessions := NewSessionStore(store)

	session, err := sessions.Load(opts.JourneyName)
	if err != nil {
		log.Printf("[!] %v", err)
	}

	scene := NewScene(j, opts.Smoother, opts.Width, opts.Height)
	scene.Tracker.ScrollToProgress(session.Progress)

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(NewGame(scene))
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}

	session.Progress = scene.Tracker.Progress()
	if err := sessions.Save(session); err != nil {
		log.Printf("[!] %v", err)
	}
	return runErr
}
