package journey

import "math"

// Airy is the perfume product journey: the flower alternates sides so that it
// never covers the content column of the section it is in.
func Airy() *Journey {
	j, _ := New([]Keyframe{
		{Name: "hero", Start: 0, End: 0.18, Pose: Pose{X: 0.5, Scale: 1.1}},
		{Name: "story", Start: 0.18, End: 0.38, Pose: Pose{X: 1.0, Z: 0.2, RotX: 0.3, RotY: math.Pi * 0.7, RotZ: 0.1, Scale: 1.0}},
		{Name: "scent", Start: 0.38, End: 0.58, Pose: Pose{X: -0.9, Z: 0.2, RotX: -0.2, RotY: math.Pi * 1.4, RotZ: -0.08, Scale: 0.95}},
		{Name: "specs", Start: 0.58, End: 0.82, Pose: Pose{X: -0.8, Z: 0.5, RotX: 0.2, RotY: math.Pi * 2.1, Scale: 1.2}},
		{Name: "cta", Start: 0.82, End: 1, Pose: Pose{RotX: 0.1, RotY: math.Pi * 2.8, RotZ: 0.05, Scale: 0.85}},
	})
	return j
}

// Orbit is a two-section turntable: the object starts centred and turns half
// a revolution while it grows into the detail section.
func Orbit() *Journey {
	j, _ := New([]Keyframe{
		{Name: "intro", Start: 0, End: 0.5, Pose: Pose{Scale: 0.9}},
		{Name: "detail", Start: 0.5, End: 1, Pose: Pose{Z: 0.4, RotX: 0.15, RotY: math.Pi, Scale: 1.3}},
	})
	return j
}

// Preset returns a built-in journey by name.
func Preset(name string) (*Journey, bool) {
	switch name {
	case "airy", "":
		return Airy(), true
	case "orbit":
		return Orbit(), true
	case "identity":
		return Identity(), true
	}
	return nil, false
}
