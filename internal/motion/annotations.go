package motion

import "github.com/ivlev/scrolljourney/internal/journey"

const (
	annotationStagger = 0.12
	specsSpeedup      = 1.5
)

// RevealProgress speeds up a section's progress so annotations finish
// appearing before the section ends.
func RevealProgress(sectionProgress float64) float64 {
	return journey.Clamp(sectionProgress*specsSpeedup, 0, 1)
}

// AnnotationOpacity is the opacity of the i-th annotation for a reveal
// progress in [0,1]. Later annotations start later and finish earlier.
func AnnotationOpacity(progress float64, i int) float64 {
	delay := float64(i) * annotationStagger
	window := 1 - delay*2
	if window <= 0 {
		if progress >= delay {
			return 1
		}
		return 0
	}
	return journey.EaseOutQuart(journey.Clamp((progress-delay)/window, 0, 1))
}
