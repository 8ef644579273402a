// Package motion turns located journey poses into the transform that is
// actually drawn: smoothing toward the target, idle sway, continuous spin and
// the cursor offset.
package motion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ivlev/scrolljourney/internal/journey"
)

// Transform is the rendered placement of the product.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3 // Euler X, Y, Z in radians
	Scale    float64
}

// FromPose converts a journey pose, multiplying its scale by baseScale.
func FromPose(p journey.Pose, baseScale float64) Transform {
	return Transform{
		Position: p.Position(),
		Rotation: p.Rotation(),
		Scale:    p.Scale * baseScale,
	}
}

// channels flattens the transform for per-field smoothing.
func (t Transform) channels() [7]float64 {
	return [7]float64{
		t.Position[0], t.Position[1], t.Position[2],
		t.Rotation[0], t.Rotation[1], t.Rotation[2],
		t.Scale,
	}
}

func fromChannels(c [7]float64) Transform {
	return Transform{
		Position: mgl64.Vec3{c[0], c[1], c[2]},
		Rotation: mgl64.Vec3{c[3], c[4], c[5]},
		Scale:    c[6],
	}
}

const rotYChannel = 4
