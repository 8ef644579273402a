package effects

import (
	"image"
	"image/color"

	"github.com/ivlev/scrolljourney/internal/motion"
	"github.com/ivlev/scrolljourney/internal/renderer"
)

// Annotations are callout markers around the product, revealed one after
// another while Section is active.
type Annotations struct {
	Section string
	// Anchors are marker positions relative to the object centre, in model
	// units at scale 1; Y is up.
	Anchors [][2]float64
	Color   color.NRGBA
}

func NewAnnotations() *Annotations {
	return &Annotations{
		Section: "specs",
		Anchors: [][2]float64{{1.5, 0.9}, {-1.6, 0.6}, {1.4, -0.8}, {-1.5, -1.0}},
		Color:   color.NRGBA{R: 255, G: 255, B: 255},
	}
}

func (a *Annotations) Apply(dst *image.RGBA, f Frame) {
	if f.Located.Section != a.Section {
		return
	}
	reveal := motion.RevealProgress(f.Located.SectionProgress)
	cx, cy := renderer.Centre(f.Transform, f.Viewport)
	unit := f.Viewport.Unit() * f.Transform.Scale
	width := f.Viewport.Unit() / 60

	for i, anchor := range a.Anchors {
		op := motion.AnnotationOpacity(reveal, i)
		if op <= 0 {
			continue
		}
		col := a.Color
		col.A = uint8(op * 255)

		from := renderer.Point{X: cx + anchor[0]*unit*0.6, Y: cy - anchor[1]*unit*0.6}
		to := renderer.Point{X: cx + anchor[0]*unit, Y: cy - anchor[1]*unit}
		renderer.StrokeLine(dst, from, to, width, col)
		renderer.FillCircle(dst, to.X, to.Y, width*3, col)
	}
}
