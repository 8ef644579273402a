// Package effects draws 2D overlays on top of rendered frames.
package effects

import (
	"image"

	"github.com/ivlev/scrolljourney/internal/config"
	"github.com/ivlev/scrolljourney/internal/journey"
	"github.com/ivlev/scrolljourney/internal/motion"
	"github.com/ivlev/scrolljourney/internal/renderer"
)

// Frame is everything an overlay may need to know about the frame being drawn.
type Frame struct {
	Index     int
	Time      float64
	Progress  float64
	Located   journey.Located
	Last      bool // the active section is the final one
	Transform motion.Transform
	Viewport  renderer.Viewport
}

type Overlay interface {
	Apply(dst *image.RGBA, f Frame)
}

// Chain applies overlays in order.
type Chain []Overlay

func (c Chain) Apply(dst *image.RGBA, f Frame) {
	for _, o := range c {
		o.Apply(dst, f)
	}
}

// NewDefault builds the overlays enabled in the config.
func NewDefault(cfg *config.Config) (Chain, error) {
	var chain Chain
	if cfg.Annotations {
		chain = append(chain, NewAnnotations())
	}
	if cfg.CTAURL != "" {
		size := cfg.Height / 5
		badge, err := NewCTABadge(cfg.CTAURL, size)
		if err != nil {
			return nil, err
		}
		chain = append(chain, badge)
	}
	if cfg.ShowProgress {
		chain = append(chain, NewProgressBar(cfg.Height/120+2))
	}
	return chain, nil
}
