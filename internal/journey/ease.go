package journey

// Lerp performs linear interpolation between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]. NaN collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MapRange maps v from [inMin, inMax] onto [outMin, outMax] without clamping.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMax
	}
	return (v-inMin)/(inMax-inMin)*(outMax-outMin) + outMin
}

// EaseInOutCubic applies smooth easing function
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func EaseOutQuart(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u*u
}
