package preview

import (
	"math"
	"strings"

	"github.com/ivlev/scrolljourney/internal/renderer"
)

// Grid is a character canvas. Points are given in half-row units on Y so
// the projected mesh keeps its aspect ratio.
type Grid struct {
	cols, rows int
	cells      [][]rune
	depth      [][]float64
}

func NewGrid(cols, rows int) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g := &Grid{cols: cols, rows: rows}
	g.cells = make([][]rune, rows)
	g.depth = make([][]float64, rows)
	for y := range g.cells {
		g.cells[y] = []rune(strings.Repeat(" ", cols))
		g.depth[y] = make([]float64, cols)
		for x := range g.depth[y] {
			g.depth[y][x] = math.Inf(-1)
		}
	}
	return g
}

// shade picks a glyph by depth: nearer is denser.
func shade(depth float64) rune {
	switch {
	case depth > 0.33:
		return '#'
	case depth > -0.33:
		return '+'
	default:
		return '.'
	}
}

// Plot sets a cell unless something nearer is already there.
func (g *Grid) Plot(x, y int, depth float64, r rune) {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return
	}
	if depth < g.depth[y][x] {
		return
	}
	g.depth[y][x] = depth
	g.cells[y][x] = r
}

// Line draws a Bresenham line between two projected points.
func (g *Grid) Line(a, b renderer.Point) {
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y/2))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y/2))
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	depth := (a.Depth + b.Depth) / 2
	r := shade(depth)

	for {
		g.Plot(x0, y0, depth, r)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawMesh draws the unique edges and marks vertices.
func (g *Grid) DrawMesh(m renderer.Mesh, pts []renderer.Point) {
	for _, e := range m.Edges() {
		g.Line(pts[e[0]], pts[e[1]])
	}
	for _, p := range pts {
		g.Plot(int(math.Round(p.X)), int(math.Round(p.Y/2)), p.Depth+0.01, 'o')
	}
}

func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
