package renderer

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ivlev/scrolljourney/internal/motion"
)

// Perspective is the camera distance used by the projection d/(d+z).
const Perspective = 3.0

// minDepth keeps the perspective divisor away from zero when the object
// comes close to the camera.
const minDepth = 0.1

// Viewport is the drawing area in pixels.
type Viewport struct {
	Width, Height float64
}

// Unit is the pixel size of one model unit at scale 1.
func (v Viewport) Unit() float64 {
	return math.Min(v.Width, v.Height) * 0.25
}

// Point is a projected vertex. Depth is the rotated model-space Z in [-1,1]
// for unit meshes, positive toward the viewer.
type Point struct {
	X, Y  float64
	Depth float64
}

// Rotation builds the X-then-Y-then-Z rotation matrix.
func Rotation(r mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Rotate3DZ(r[2]).Mul3(mgl64.Rotate3DY(r[1])).Mul3(mgl64.Rotate3DX(r[0]))
}

// Project places the mesh with the transform and projects it onto the viewport.
// Position X/Y move the object by a quarter of the viewport per unit; Y is up.
// Position Z moves it toward the viewer.
func Project(m Mesh, t motion.Transform, vp Viewport) []Point {
	rot := Rotation(t.Rotation)
	scale := vp.Unit() * t.Scale
	cx, cy := Centre(t, vp)

	pts := make([]Point, len(m.Vertices))
	for i, v := range m.Vertices {
		r := rot.Mul3x1(v)
		d := math.Max(Perspective+r[2]-t.Position[2], minDepth)
		k := Perspective / d
		pts[i] = Point{
			X:     r[0]*scale*k + cx,
			Y:     r[1]*scale*k + cy,
			Depth: -r[2],
		}
	}
	return pts
}

// Centre is the screen position of the transform's origin.
func Centre(t motion.Transform, vp Viewport) (x, y float64) {
	return vp.Width/2 + t.Position[0]*vp.Width*0.25, vp.Height/2 - t.Position[1]*vp.Height*0.25
}

// Face is a triangle with its average depth.
type Face struct {
	Indices [3]int
	Depth   float64
}

// SortFaces orders faces back to front (ascending depth) for painter's drawing.
func SortFaces(pts []Point, faces [][3]int) []Face {
	out := make([]Face, len(faces))
	for i, f := range faces {
		out[i] = Face{
			Indices: f,
			Depth:   (pts[f[0]].Depth + pts[f[1]].Depth + pts[f[2]].Depth) / 3,
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

// Pulse is the breathing scale factor at time t seconds.
func Pulse(t float64) float64 {
	return math.Sin(t*2)*0.1 + 1
}
