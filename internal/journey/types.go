package journey

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a placement of the product in scene units. Rotations are in radians.
type Pose struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	RotX  float64 `yaml:"rot_x"`
	RotY  float64 `yaml:"rot_y"`
	RotZ  float64 `yaml:"rot_z"`
	Scale float64 `yaml:"scale"`
}

// Position returns the translation part of the pose.
func (p Pose) Position() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// Rotation returns Euler angles (X, Y, Z) in radians.
func (p Pose) Rotation() mgl64.Vec3 {
	return mgl64.Vec3{p.RotX, p.RotY, p.RotZ}
}

// Lerp interpolates every field of p toward to by t.
func (p Pose) Lerp(to Pose, t float64) Pose {
	return Pose{
		X:     Lerp(p.X, to.X, t),
		Y:     Lerp(p.Y, to.Y, t),
		Z:     Lerp(p.Z, to.Z, t),
		RotX:  Lerp(p.RotX, to.RotX, t),
		RotY:  Lerp(p.RotY, to.RotY, t),
		RotZ:  Lerp(p.RotZ, to.RotZ, t),
		Scale: Lerp(p.Scale, to.Scale, t),
	}
}

// Keyframe binds a named pose to the scroll interval [Start, End).
type Keyframe struct {
	Name  string  `yaml:"name"`
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Pose  Pose    `yaml:"pose"`
}

// Located is the result of mapping a scroll position onto a journey.
type Located struct {
	Pose
	Section         string  // name of the keyframe whose interval holds the progress
	Index           int     // index of that keyframe
	SectionProgress float64 // eased local progress in [0,1]
}
