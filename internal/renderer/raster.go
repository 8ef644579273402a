package renderer

import (
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/vector"
)

// Style holds wireframe colours; alpha is computed from depth per element.
type Style struct {
	Face      color.NRGBA
	Edge      color.NRGBA
	Vertex    color.NRGBA
	LineWidth float64
}

// NeonStyle is cyan faces and vertices with lime-tinted edges.
func NeonStyle() Style {
	return Style{
		Face:      color.NRGBA{R: 0, G: 245, B: 255},
		Edge:      color.NRGBA{R: 102, G: 250, B: 128},
		Vertex:    color.NRGBA{R: 0, G: 245, B: 255},
		LineWidth: 2,
	}
}

const circleSegments = 16

var rasterizers = sync.Pool{
	New: func() interface{} { return vector.NewRasterizer(0, 0) },
}

// Raster draws projected meshes onto RGBA frames. It is safe for concurrent
// use; each call borrows its own rasterizer.
type Raster struct {
	Style Style
	// Scale multiplies line widths and vertex sizes, e.g. for high-DPI output.
	Scale float64
}

func NewRaster(style Style) *Raster {
	return &Raster{Style: style, Scale: 1}
}

// Draw paints faces back to front, then unique edges, then vertices.
func (r *Raster) Draw(dst *image.RGBA, m Mesh, pts []Point) {
	z := rasterizers.Get().(*vector.Rasterizer)
	defer rasterizers.Put(z)

	for _, f := range SortFaces(pts, m.Faces) {
		a, b, c := pts[f.Indices[0]], pts[f.Indices[1]], pts[f.Indices[2]]
		alpha := clamp01((f.Depth+1)/4) * 0.05
		fillPolygon(z, dst, withAlpha(r.Style.Face, alpha),
			[][2]float64{{a.X, a.Y}, {b.X, b.Y}, {c.X, c.Y}})
	}

	lw := r.Style.LineWidth * r.Scale
	for _, e := range m.Edges() {
		a, b := pts[e[0]], pts[e[1]]
		alpha := clamp01(((a.Depth+b.Depth)/2 + 1) / 2)
		if quad, ok := segmentQuad(a, b, lw); ok {
			fillPolygon(z, dst, withAlpha(r.Style.Edge, alpha), quad)
		}
	}

	for _, p := range pts {
		alpha := clamp01((p.Depth + 1) / 2)
		radius := (4 + (p.Depth+1)*2) * r.Scale / 2
		fillPolygon(z, dst, withAlpha(r.Style.Vertex, alpha), circle(p.X, p.Y, radius))
	}
}

// fillPolygon rasterizes only the polygon's bounding box clipped to dst.
func fillPolygon(z *vector.Rasterizer, dst *image.RGBA, col color.NRGBA, poly [][2]float64) {
	if col.A == 0 || len(poly) < 3 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	box := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	box = box.Intersect(dst.Bounds())
	if box.Empty() {
		return
	}

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	z.Reset(box.Dx(), box.Dy())
	z.MoveTo(float32(poly[0][0]-ox), float32(poly[0][1]-oy))
	for _, p := range poly[1:] {
		z.LineTo(float32(p[0]-ox), float32(p[1]-oy))
	}
	z.ClosePath()
	z.Draw(dst, box, image.NewUniform(col), image.Point{})
}

// segmentQuad turns a line segment into a rectangle of the given width.
func segmentQuad(a, b Point, width float64) ([][2]float64, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return nil, false
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	return [][2]float64{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}, true
}

func circle(cx, cy, r float64) [][2]float64 {
	pts := make([][2]float64, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = [2]float64{cx + math.Cos(a)*r, cy + math.Sin(a)*r}
	}
	return pts
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(alpha) * 255))
	return c
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// FillCircle draws a filled dot. It is used for overlay markers.
func FillCircle(dst *image.RGBA, x, y, radius float64, col color.NRGBA) {
	z := rasterizers.Get().(*vector.Rasterizer)
	defer rasterizers.Put(z)
	fillPolygon(z, dst, col, circle(x, y, radius))
}

// StrokeLine draws a straight line of the given width.
func StrokeLine(dst *image.RGBA, a, b Point, width float64, col color.NRGBA) {
	quad, ok := segmentQuad(a, b, width)
	if !ok {
		return
	}
	z := rasterizers.Get().(*vector.Rasterizer)
	defer rasterizers.Put(z)
	fillPolygon(z, dst, col, quad)
}
