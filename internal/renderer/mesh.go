package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices []mgl64.Vec3
	Faces    [][3]int
}

// Icosahedron returns the unit icosahedron: 12 vertices on the unit sphere, 20 faces.
func Icosahedron() Mesh {
	phi := (1 + math.Sqrt(5)) / 2
	raw := []mgl64.Vec3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	for i, v := range raw {
		raw[i] = v.Normalize()
	}

	return Mesh{
		Vertices: raw,
		Faces: [][3]int{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	}
}

// Edges returns every undirected edge once, in the order faces first use it.
func (m Mesh) Edges() [][2]int {
	seen := make(map[[2]int]bool, len(m.Faces)*3/2)
	var edges [][2]int

	for _, f := range m.Faces {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, key)
		}
	}
	return edges
}
