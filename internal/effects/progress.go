package effects

import (
	"image"
	"image/color"
	"image/draw"
)

// ProgressBar is a thin bar across the top edge that grows with scroll progress.
type ProgressBar struct {
	Height int
	Color  color.RGBA
}

func NewProgressBar(height int) *ProgressBar {
	return &ProgressBar{
		Height: height,
		Color:  color.RGBA{R: 0, G: 245, B: 255, A: 255},
	}
}

func (p *ProgressBar) Apply(dst *image.RGBA, f Frame) {
	b := dst.Bounds()
	w := int(f.Progress * float64(b.Dx()))
	if w <= 0 || p.Height <= 0 {
		return
	}
	r := image.Rect(b.Min.X, b.Min.Y, b.Min.X+w, b.Min.Y+p.Height).Intersect(b)
	draw.Draw(dst, r, image.NewUniform(p.Color), image.Point{}, draw.Over)
}
