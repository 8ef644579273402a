package engine

import (
	"math"

	"github.com/ivlev/scrolljourney/internal/effects"
	"github.com/ivlev/scrolljourney/internal/journey"
	"github.com/ivlev/scrolljourney/internal/motion"
	"github.com/ivlev/scrolljourney/internal/renderer"
	"github.com/ivlev/scrolljourney/internal/scroll"
)

// FrameState is everything needed to draw one frame. It is computed ahead of
// rendering because smoothing carries state from frame to frame.
type FrameState struct {
	Index     int
	Time      float64
	Offset    float64
	Progress  float64
	Located   journey.Located
	Last      bool
	Transform motion.Transform
}

// Overlay converts the state into the overlay view of the frame.
func (f FrameState) Overlay(vp renderer.Viewport) effects.Frame {
	return effects.Frame{
		Index:     f.Index,
		Time:      f.Time,
		Progress:  f.Progress,
		Located:   f.Located,
		Last:      f.Last,
		Transform: f.Transform,
		Viewport:  vp,
	}
}

// Planner drives the scroll-to-pose pipeline once per frame, in order.
type Planner struct {
	Journey *journey.Journey
	Script  *scroll.Script
	Tracker *scroll.Tracker
	Rig     *motion.Rig
	Mouse   *scroll.Mouse
	// Cursor is the simulated pointer in [-1,1]² at time t; nil keeps it centred.
	Cursor func(t float64) (x, y float64)
	FPS    int
}

func (pl *Planner) Plan(n int) []FrameState {
	frames := make([]FrameState, n)
	for i := range frames {
		frames[i] = pl.Step(i)
	}
	return frames
}

// Step computes frame i. Frames must be stepped in order.
func (pl *Planner) Step(i int) FrameState {
	t := float64(i) / float64(pl.FPS)

	pl.Tracker.ScrollToProgress(pl.Script.At(t))
	progress := pl.Tracker.Cell().Load()
	loc := pl.Journey.Locate(progress)

	if pl.Cursor != nil {
		pl.Mouse.SetTarget(pl.Cursor(t))
	}
	pl.Mouse.Step()
	mx, my := pl.Mouse.Value()

	return FrameState{
		Index:     i,
		Time:      t,
		Offset:    pl.Tracker.Offset(),
		Progress:  progress,
		Located:   loc,
		Last:      pl.Journey.IsLast(loc),
		Transform: pl.Rig.Step(loc, t, mx, my),
	}
}

// Lissajous is a slow pointer drift used when no real cursor is present.
func Lissajous(t float64) (float64, float64) {
	return math.Sin(t*0.5) * 0.5, math.Cos(t*0.3) * 0.3
}
