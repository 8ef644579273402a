package scroll

import (
	"fmt"
	"sort"

	"github.com/ivlev/scrolljourney/internal/journey"
)

// Waypoint pins the scroll progress at a moment of the recording.
type Waypoint struct {
	At       float64 `yaml:"at"` // seconds
	Progress float64 `yaml:"progress"`
}

// Script is a scripted scroll used when rendering offline.
type Script struct {
	waypoints []Waypoint
}

// NewScript sorts the waypoints by time. At least one waypoint is required.
func NewScript(waypoints []Waypoint) (*Script, error) {
	if len(waypoints) == 0 {
		return nil, fmt.Errorf("scroll script needs at least one waypoint")
	}
	wps := make([]Waypoint, len(waypoints))
	copy(wps, waypoints)
	sort.SliceStable(wps, func(i, j int) bool { return wps[i].At < wps[j].At })
	for i := range wps {
		wps[i].Progress = journey.Clamp(wps[i].Progress, 0, 1)
	}
	return &Script{waypoints: wps}, nil
}

// Linear scrolls from top to bottom at constant speed.
func Linear(duration float64) *Script {
	return &Script{waypoints: []Waypoint{{At: 0, Progress: 0}, {At: duration, Progress: 1}}}
}

// Dwell scrolls section by section and pauses on every boundary.
// dwellShare is the fraction of the duration spent standing still.
func Dwell(j *journey.Journey, duration, dwellShare float64) *Script {
	n := j.Len()
	if n < 2 || duration <= 0 {
		return Linear(duration)
	}
	dwellShare = journey.Clamp(dwellShare, 0, 0.9)

	// One pause at every inner boundary plus one at the very end.
	pause := duration * dwellShare / float64(n)
	moving := duration - pause*float64(n)

	wps := []Waypoint{{At: 0, Progress: 0}}
	now := 0.0
	for i := 0; i < n; i++ {
		kf := j.Keyframe(i)
		now += moving * (kf.End - kf.Start)
		wps = append(wps, Waypoint{At: now, Progress: kf.End})
		now += pause
		wps = append(wps, Waypoint{At: now, Progress: kf.End})
	}
	return &Script{waypoints: wps}
}

// Duration is the time of the last waypoint.
func (s *Script) Duration() float64 {
	return s.waypoints[len(s.waypoints)-1].At
}

func (s *Script) Waypoints() []Waypoint {
	out := make([]Waypoint, len(s.waypoints))
	copy(out, s.waypoints)
	return out
}

// At returns the scroll progress at time t, easing between waypoints and
// holding the first/last value outside the scripted range.
func (s *Script) At(t float64) float64 {
	wps := s.waypoints
	if t <= wps[0].At {
		return wps[0].Progress
	}
	last := wps[len(wps)-1]
	if t >= last.At {
		return last.Progress
	}

	i := sort.Search(len(wps), func(i int) bool { return wps[i].At > t })
	from, to := wps[i-1], wps[i]
	span := to.At - from.At
	if span <= 0 {
		return to.Progress
	}
	eased := journey.EaseInOutCubic((t - from.At) / span)
	return journey.Lerp(from.Progress, to.Progress, eased)
}
