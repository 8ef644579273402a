package motion

import (
	"fmt"

	"github.com/charmbracelet/harmonica"
)

// Smoother moves the rendered transform toward its target once per frame.
type Smoother interface {
	Smooth(current, target Transform) Transform
}

// Exponential covers Factor of the remaining distance every frame. The Y
// rotation uses Factor*SpinFactor so the continuous spin lags behind.
type Exponential struct {
	Factor     float64
	SpinFactor float64
}

func DefaultExponential() *Exponential {
	return &Exponential{Factor: 0.06, SpinFactor: 0.3}
}

func (e *Exponential) Smooth(current, target Transform) Transform {
	c, t := current.channels(), target.channels()
	for i := range c {
		k := e.Factor
		if i == rotYChannel {
			k *= e.SpinFactor
		}
		c[i] += (t[i] - c[i]) * k
	}
	return fromChannels(c)
}

// Spring drives every channel with a damped harmonic spring.
type Spring struct {
	spring harmonica.Spring
	vel    [7]float64
}

// NewSpring builds a spring smoother stepping at fps frames per second.
func NewSpring(fps int, frequency, damping float64) *Spring {
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

func (s *Spring) Smooth(current, target Transform) Transform {
	c, t := current.channels(), target.channels()
	for i := range c {
		c[i], s.vel[i] = s.spring.Update(c[i], s.vel[i], t[i])
	}
	return fromChannels(c)
}

// NewSmoother selects a smoother by name: "exponential" (default) or "spring".
func NewSmoother(kind string, fps int) (Smoother, error) {
	switch kind {
	case "", "exponential":
		return DefaultExponential(), nil
	case "spring":
		return NewSpring(fps, 4.0, 1.0), nil
	}
	return nil, fmt.Errorf("unknown smoothing %q (exponential, spring)", kind)
}
