package scroll

// MouseSmoothing is the per-frame share of the remaining distance the cursor covers.
const MouseSmoothing = 0.08

// Mouse is the cursor position normalized to [-1,1] on both axes, eased
// toward the last reported target every frame.
type Mouse struct {
	X, Y             float64
	TargetX, TargetY float64
}

// SetPixel records a cursor position in window pixels.
func (m *Mouse) SetPixel(x, y, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	m.TargetX = x/width*2 - 1
	m.TargetY = y/height*2 - 1
}

func (m *Mouse) SetTarget(x, y float64) {
	m.TargetX, m.TargetY = x, y
}

// Step advances the smoothed position by one frame.
func (m *Mouse) Step() {
	m.X += (m.TargetX - m.X) * MouseSmoothing
	m.Y += (m.TargetY - m.Y) * MouseSmoothing
}

func (m *Mouse) Value() (float64, float64) {
	return m.X, m.Y
}
