package viewer

import (
	"github.com/ivlev/scrolljourney/internal/journey"
	"github.com/ivlev/scrolljourney/internal/motion"
	"github.com/ivlev/scrolljourney/internal/renderer"
	"github.com/ivlev/scrolljourney/internal/scroll"
)

// Scene is the window-independent part of the viewer: scroll state, cursor
// and the rig. The window calls Advance once per tick.
type Scene struct {
	Journey *journey.Journey
	Tracker *scroll.Tracker
	Mouse   *scroll.Mouse
	Rig     *motion.Rig
	Mesh    renderer.Mesh

	width, height int
	elapsed       float64
	located       journey.Located
	transform     motion.Transform
}

func NewScene(j *journey.Journey, s motion.Smoother, width, height int) *Scene {
	start := j.Locate(0)
	sc := &Scene{
		Journey: j,
		Mouse:   &scroll.Mouse{},
		Rig:     motion.NewRig(s, start.Pose),
		Mesh:    renderer.Icosahedron(),
		located: start,
	}
	sc.Tracker = scroll.NewTracker(nil, 0, 0)
	sc.Resize(width, height)
	sc.transform = sc.Rig.Current()
	return sc
}

// Resize keeps the scroll progress when the window changes size. Every
// section gets one screen of page, plus one to scroll into.
func (s *Scene) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	p := s.Tracker.Progress()
	s.width, s.height = width, height
	s.Tracker.Resize(float64(height*(s.Journey.Len()+1)), float64(height))
	s.Tracker.ScrollToProgress(p)
}

func (s *Scene) Advance(dt float64) {
	s.elapsed += dt
	s.located = s.Journey.Locate(s.Tracker.Cell().Load())
	s.Mouse.Step()
	mx, my := s.Mouse.Value()
	s.transform = s.Rig.Step(s.located, s.elapsed, mx, my)
}

// Points projects the mesh for the current frame.
func (s *Scene) Points() []renderer.Point {
	vp := renderer.Viewport{Width: float64(s.width), Height: float64(s.height)}
	return renderer.Project(s.Mesh, s.transform, vp)
}

func (s *Scene) Located() journey.Located { return s.located }
func (s *Scene) Elapsed() float64         { return s.elapsed }
