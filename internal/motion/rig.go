package motion

import (
	"math"

	"github.com/ivlev/scrolljourney/internal/journey"
)

// Idle is the secondary motion layered on top of the journey pose. All terms
// are functions of elapsed seconds.
type Idle struct {
	SpinRate float64 // rad/s added to Y rotation, unbounded

	SwayXAmp, SwayXFreq float64
	SwayZAmp, SwayZFreq float64

	FloatAmp, FloatFreq float64
}

func DefaultIdle() Idle {
	return Idle{
		SpinRate:  0.15,
		SwayXAmp:  0.08,
		SwayXFreq: 0.4,
		SwayZAmp:  0.04,
		SwayZFreq: 0.25,
		FloatAmp:  0.004,
		FloatFreq: 0.7,
	}
}

// Apply adds spin and sway to a target transform.
func (i Idle) Apply(t Transform, elapsed float64) Transform {
	t.Rotation[0] += math.Sin(elapsed*i.SwayXFreq) * i.SwayXAmp
	t.Rotation[1] += elapsed * i.SpinRate
	t.Rotation[2] += math.Cos(elapsed*i.SwayZFreq) * i.SwayZAmp
	return t
}

// Bob is the vertical float added after smoothing.
func (i Idle) Bob(elapsed float64) float64 {
	return math.Sin(elapsed*i.FloatFreq) * i.FloatAmp
}

// Mouse offset gains, in scene units per normalized cursor unit.
const (
	MouseGainX = 0.2
	MouseGainY = 0.12
)

// Rig owns the rendered transform and advances it one frame at a time.
// It is not safe for concurrent use; a single render loop drives it.
type Rig struct {
	Smoother  Smoother
	Idle      Idle
	BaseScale float64

	current Transform
}

func NewRig(s Smoother, start journey.Pose) *Rig {
	if s == nil {
		s = DefaultExponential()
	}
	r := &Rig{Smoother: s, Idle: DefaultIdle(), BaseScale: 1}
	r.Reset(start)
	return r
}

// Reset snaps the rendered transform onto a pose.
func (r *Rig) Reset(p journey.Pose) {
	r.current = FromPose(p, r.BaseScale)
}

// Target composes the frame target: located pose, idle motion and cursor.
func (r *Rig) Target(l journey.Located, elapsed, mouseX, mouseY float64) Transform {
	t := FromPose(l.Pose, r.BaseScale)
	t.Position[0] += mouseX * MouseGainX
	t.Position[1] -= mouseY * MouseGainY
	return r.Idle.Apply(t, elapsed)
}

// Step advances one frame and returns the transform to draw.
func (r *Rig) Step(l journey.Located, elapsed, mouseX, mouseY float64) Transform {
	target := r.Target(l, elapsed, mouseX, mouseY)
	r.current = r.Smoother.Smooth(r.current, target)
	r.current.Position[1] += r.Idle.Bob(elapsed)
	return r.current
}

func (r *Rig) Current() Transform {
	return r.current
}
