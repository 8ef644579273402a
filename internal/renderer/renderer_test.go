package renderer

import (
	"image"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/scrolljourney/internal/motion"
)

func TestIcosahedron(t *testing.T) {
	m := Icosahedron()

	require.Len(t, m.Vertices, 12)
	require.Len(t, m.Faces, 20)
	for _, v := range m.Vertices {
		assert.InDelta(t, 1.0, v.Len(), 1e-12)
	}
}

func TestEdgesAreUnique(t *testing.T) {
	edges := Icosahedron().Edges()
	require.Len(t, edges, 30)

	seen := map[[2]int]bool{}
	degree := map[int]int{}
	for _, e := range edges {
		assert.Less(t, e[0], e[1])
		assert.False(t, seen[e], "duplicate edge %v", e)
		seen[e] = true
		degree[e[0]]++
		degree[e[1]]++
	}
	for v, d := range degree {
		assert.Equal(t, 5, d, "vertex %d", v)
	}
}

func TestProjectIdentityCentred(t *testing.T) {
	m := Icosahedron()
	vp := Viewport{Width: 800, Height: 600}
	pts := Project(m, motion.Transform{Scale: 1}, vp)

	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	assert.InDelta(t, 400, cx/12, 1e-9)
	assert.InDelta(t, 300, cy/12, 1e-9)
}

func TestProjectPerspective(t *testing.T) {
	m := Mesh{Vertices: []mgl64.Vec3{{1, 0, 0}, {0, 0, 1}, {1, 0, -1}}}
	vp := Viewport{Width: 400, Height: 400}
	pts := Project(m, motion.Transform{Scale: 1}, vp)

	unit := vp.Unit()
	assert.InDelta(t, 200+unit, pts[0].X, 1e-9)
	assert.InDelta(t, -1.0, pts[1].Depth, 1e-12, "+Z points away from the viewer")
	assert.InDelta(t, 200+unit*Perspective/(Perspective-1), pts[2].X, 1e-9, "nearer vertices project larger")
}

func TestProjectPositionMovesCentre(t *testing.T) {
	m := Mesh{Vertices: []mgl64.Vec3{{0, 0, 0}}}
	vp := Viewport{Width: 1000, Height: 500}
	pts := Project(m, motion.Transform{Position: mgl64.Vec3{1, 1, 0}, Scale: 1}, vp)

	assert.InDelta(t, 750, pts[0].X, 1e-9)
	assert.InDelta(t, 125, pts[0].Y, 1e-9)
}

func TestRotationOrder(t *testing.T) {
	r := Rotation(mgl64.Vec3{0, math.Pi / 2, 0})
	v := r.Mul3x1(mgl64.Vec3{1, 0, 0})
	assert.True(t, v.ApproxEqualThreshold(mgl64.Vec3{0, 0, -1}, 1e-12), "%v", v)

	r = Rotation(mgl64.Vec3{math.Pi / 2, 0, 0})
	v = r.Mul3x1(mgl64.Vec3{0, 1, 0})
	assert.True(t, v.ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-12), "%v", v)
}

func TestSortFacesBackToFront(t *testing.T) {
	m := Icosahedron()
	pts := Project(m, motion.Transform{Rotation: mgl64.Vec3{0.3, 0.5, 0.2}, Scale: 1}, Viewport{Width: 100, Height: 100})
	faces := SortFaces(pts, m.Faces)

	require.Len(t, faces, 20)
	for i := 1; i < len(faces); i++ {
		assert.LessOrEqual(t, faces[i-1].Depth, faces[i].Depth)
	}
}

func TestRasterDrawsInsideFrame(t *testing.T) {
	m := Icosahedron()
	dst := image.NewRGBA(image.Rect(0, 0, 160, 120))
	vp := Viewport{Width: 160, Height: 120}

	r := NewRaster(NeonStyle())
	r.Draw(dst, m, Project(m, motion.Transform{Scale: 1}, vp))

	centre := dst.RGBAAt(80, 60)
	corner := dst.RGBAAt(0, 0)
	assert.NotZero(t, centre.A, "wireframe covers the centre")
	assert.Zero(t, corner.A)
}

func TestRasterClipsOffscreen(t *testing.T) {
	m := Icosahedron()
	dst := image.NewRGBA(image.Rect(0, 0, 64, 64))
	vp := Viewport{Width: 64, Height: 64}

	r := NewRaster(NeonStyle())
	assert.NotPanics(t, func() {
		r.Draw(dst, m, Project(m, motion.Transform{Position: mgl64.Vec3{1.9, -1.7, 0}, Scale: 3}, vp))
		r.Draw(dst, m, Project(m, motion.Transform{Position: mgl64.Vec3{50, 50, 0}, Scale: 1}, vp))
	})
}

func TestPulse(t *testing.T) {
	assert.Equal(t, 1.0, Pulse(0))
	assert.InDelta(t, 1.1, Pulse(math.Pi/4), 1e-12)
}
