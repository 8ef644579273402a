// Package scroll owns the page scroll state: the shared progress cell, the
// tracker that turns pixel offsets into normalized progress, scripted scrolls
// for offline rendering and the smoothed mouse cursor.
package scroll

import (
	"math"
	"sync/atomic"

	"github.com/ivlev/scrolljourney/internal/journey"
)

// Progress is the single shared scroll scalar. The scroll source stores into
// it and the render step loads from it once per frame.
type Progress struct {
	bits atomic.Uint64
}

// Store clamps p to [0,1] before publishing it.
func (c *Progress) Store(p float64) {
	c.bits.Store(math.Float64bits(journey.Clamp(p, 0, 1)))
}

func (c *Progress) Load() float64 {
	return math.Float64frombits(c.bits.Load())
}

// Tracker converts a scroll offset in pixels into normalized progress.
type Tracker struct {
	cell           *Progress
	contentHeight  float64
	viewportHeight float64
	offset         float64
}

// NewTracker creates a tracker for a page of contentHeight pixels viewed
// through a viewport of viewportHeight pixels.
func NewTracker(cell *Progress, contentHeight, viewportHeight float64) *Tracker {
	if cell == nil {
		cell = &Progress{}
	}
	t := &Tracker{cell: cell}
	t.Resize(contentHeight, viewportHeight)
	return t
}

// MaxOffset is the largest reachable scroll offset.
func (t *Tracker) MaxOffset() float64 {
	return math.Max(t.contentHeight-t.viewportHeight, 0)
}

// Resize updates page geometry and republishes progress for the clamped offset.
func (t *Tracker) Resize(contentHeight, viewportHeight float64) {
	t.contentHeight = contentHeight
	t.viewportHeight = viewportHeight
	t.ScrollTo(t.offset)
}

// ScrollTo moves to an absolute offset.
func (t *Tracker) ScrollTo(offset float64) {
	max := t.MaxOffset()
	t.offset = journey.Clamp(offset, 0, max)
	if max <= 0 {
		t.cell.Store(0)
		return
	}
	t.cell.Store(t.offset / max)
}

func (t *Tracker) ScrollBy(delta float64) {
	t.ScrollTo(t.offset + delta)
}

// ScrollToProgress moves to the offset that corresponds to p.
func (t *Tracker) ScrollToProgress(p float64) {
	t.ScrollTo(journey.Clamp(p, 0, 1) * t.MaxOffset())
}

func (t *Tracker) Offset() float64 {
	return t.offset
}

func (t *Tracker) Progress() float64 {
	return t.cell.Load()
}

func (t *Tracker) Cell() *Progress {
	return t.cell
}

func (t *Tracker) ViewportHeight() float64 {
	return t.viewportHeight
}
