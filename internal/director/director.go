package director

import (
	"fmt"
	"math"
	"sort"

	"github.com/ivlev/scrolljourney/internal/analyzer"
	"github.com/ivlev/scrolljourney/internal/journey"
)

// Director turns detected page bands into a scroll journey: one section per
// band, with the product parked beside the content it accompanies.
type Director struct {
	ViewportWidth  int
	ViewportHeight int
	MinSection     float64 // Minimum section length in normalized scroll
	SideOffset     float64 // Horizontal offset of the product, in scene units
	SpinStep       float64 // RotY added per section (radians)
}

// NewDirector creates a new Director with default settings
func NewDirector(viewportWidth, viewportHeight int) *Director {
	return &Director{
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		MinSection:     0.04,
		SideOffset:     1.2,
		SpinStep:       0.7 * math.Pi,
	}
}

// GenerateJourney creates a journey from bands of a page pageHeight pixels tall.
func (d *Director) GenerateJourney(bands []analyzer.Band, pageHeight int) (*journey.Journey, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("no bands detected")
	}
	maxScroll := float64(pageHeight - d.ViewportHeight)
	if maxScroll <= 0 {
		return nil, fmt.Errorf("page (%dpx) fits in the viewport (%dpx), nothing to scroll", pageHeight, d.ViewportHeight)
	}

	starts := d.sectionStarts(d.sortBands(bands), maxScroll)

	keyframes := make([]journey.Keyframe, len(starts))
	for i, start := range starts {
		end := 1.0
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		keyframes[i] = journey.Keyframe{
			Name:  sectionName(i, len(starts)),
			Start: start,
			End:   end,
			Pose:  d.pose(i, len(starts)),
		}
	}

	return journey.New(keyframes)
}

// sortBands sorts bands top to bottom
func (d *Director) sortBands(bands []analyzer.Band) []analyzer.Band {
	sorted := make([]analyzer.Band, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Top < sorted[j].Top
	})
	return sorted
}

// sectionStarts maps band tops to normalized scroll. A band that would start
// less than MinSection after the previous one is folded into it.
func (d *Director) sectionStarts(bands []analyzer.Band, maxScroll float64) []float64 {
	starts := []float64{0}
	for _, b := range bands[1:] {
		s := journey.Clamp(float64(b.Top)/maxScroll, 0, 1)
		if s-starts[len(starts)-1] < d.MinSection || 1-s < d.MinSection {
			continue
		}
		starts = append(starts, s)
	}
	return starts
}

// pose places section i on alternating sides of the page. The last section
// brings the product back to the centre, slightly enlarged.
func (d *Director) pose(i, n int) journey.Pose {
	side := 1.0
	if i%2 == 1 {
		side = -1
	}

	p := journey.Pose{
		X:     side * d.SideOffset,
		RotX:  0.15 * side,
		RotY:  d.SpinStep * float64(i),
		RotZ:  0.05 * side,
		Scale: 1 + 0.1*side,
	}
	if n > 1 && i == n-1 {
		p.X, p.RotX, p.RotZ, p.Scale = 0, 0, 0, 1.2
	}
	return p
}

func sectionName(i, n int) string {
	switch {
	case i == 0:
		return "hero"
	case i == n-1:
		return "cta"
	default:
		return fmt.Sprintf("section_%d", i)
	}
}
