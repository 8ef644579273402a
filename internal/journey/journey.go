// Package journey maps a normalized scroll position onto a continuous
// product pose. A Journey is an ordered set of keyframes that tile [0,1];
// Locate is a pure function of the journey and its argument and is safe to
// call from any number of goroutines.
package journey

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Boundaries closer than this are treated as touching and snapped together.
const boundaryEpsilon = 1e-9

var (
	ErrEmpty        = errors.New("journey has no sections")
	ErrStart        = errors.New("first section must start at 0")
	ErrEnd          = errors.New("last section must end at 1")
	ErrGap          = errors.New("gap between sections")
	ErrOverlap      = errors.New("sections overlap")
	ErrNonMonotonic = errors.New("section ends before it starts")
	ErrNotFinite    = errors.New("non-finite value")
	ErrScale        = errors.New("scale must be positive")
)

// Journey is an immutable, validated keyframe table.
type Journey struct {
	keyframes []Keyframe
}

// New validates the keyframes and returns a journey that owns a copy of them.
func New(keyframes []Keyframe) (*Journey, error) {
	kfs := make([]Keyframe, len(keyframes))
	copy(kfs, keyframes)

	if err := validate(kfs); err != nil {
		return nil, err
	}
	return &Journey{keyframes: kfs}, nil
}

// NewOrIdentity behaves like New but never returns a nil journey: a table
// that fails validation is replaced by Identity and the error is returned
// for the caller to report.
func NewOrIdentity(keyframes []Keyframe) (*Journey, error) {
	j, err := New(keyframes)
	if err != nil {
		return Identity(), err
	}
	return j, nil
}

// Identity is a single flat section covering the whole page.
func Identity() *Journey {
	return &Journey{keyframes: []Keyframe{
		{Name: "identity", Start: 0, End: 1, Pose: Pose{Scale: 1}},
	}}
}

func validate(kfs []Keyframe) error {
	if len(kfs) == 0 {
		return ErrEmpty
	}

	for i := range kfs {
		kf := &kfs[i]
		if !finite(kf.Start, kf.End, kf.Pose.X, kf.Pose.Y, kf.Pose.Z,
			kf.Pose.RotX, kf.Pose.RotY, kf.Pose.RotZ, kf.Pose.Scale) {
			return fmt.Errorf("section %q: %w", kf.Name, ErrNotFinite)
		}
		if kf.End < kf.Start {
			return fmt.Errorf("section %q [%g, %g): %w", kf.Name, kf.Start, kf.End, ErrNonMonotonic)
		}
		if kf.Pose.Scale <= 0 {
			return fmt.Errorf("section %q: %w", kf.Name, ErrScale)
		}
		if i == 0 {
			continue
		}

		prev := &kfs[i-1]
		switch d := kf.Start - prev.End; {
		case d > boundaryEpsilon:
			return fmt.Errorf("between %q and %q: %w", prev.Name, kf.Name, ErrGap)
		case d < -boundaryEpsilon:
			return fmt.Errorf("between %q and %q: %w", prev.Name, kf.Name, ErrOverlap)
		}
		kf.Start = prev.End
	}

	first, last := &kfs[0], &kfs[len(kfs)-1]
	if math.Abs(first.Start) > boundaryEpsilon {
		return fmt.Errorf("section %q starts at %g: %w", first.Name, first.Start, ErrStart)
	}
	if math.Abs(last.End-1) > boundaryEpsilon {
		return fmt.Errorf("section %q ends at %g: %w", last.Name, last.End, ErrEnd)
	}
	first.Start, last.End = 0, 1

	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Locate returns the interpolated pose for a scroll progress in [0,1].
// Out-of-range input is clamped.
func (j *Journey) Locate(progress float64) Located {
	progress = Clamp(progress, 0, 1)
	i := j.indexOf(progress)

	from := j.keyframes[i]
	to := from
	if i+1 < len(j.keyframes) {
		to = j.keyframes[i+1]
	}

	t := 1.0
	if span := from.End - from.Start; span > 0 {
		t = Clamp((progress-from.Start)/span, 0, 1)
	}
	eased := EaseInOutCubic(t)

	return Located{
		Pose:            from.Pose.Lerp(to.Pose, eased),
		Section:         from.Name,
		Index:           i,
		SectionProgress: eased,
	}
}

// indexOf finds the keyframe whose [Start, End) holds p; the last one also owns 1.
func (j *Journey) indexOf(p float64) int {
	i := sort.Search(len(j.keyframes), func(i int) bool {
		return j.keyframes[i].End > p
	})
	if i == len(j.keyframes) {
		return len(j.keyframes) - 1
	}
	return i
}

func (j *Journey) Len() int {
	return len(j.keyframes)
}

func (j *Journey) Keyframe(i int) Keyframe {
	return j.keyframes[i]
}

// Keyframes returns a copy of the table.
func (j *Journey) Keyframes() []Keyframe {
	out := make([]Keyframe, len(j.keyframes))
	copy(out, j.keyframes)
	return out
}

// Sections lists section names in scroll order.
func (j *Journey) Sections() []string {
	names := make([]string, len(j.keyframes))
	for i, kf := range j.keyframes {
		names[i] = kf.Name
	}
	return names
}

// Find returns the keyframe with the given name.
func (j *Journey) Find(name string) (Keyframe, bool) {
	for _, kf := range j.keyframes {
		if kf.Name == name {
			return kf, true
		}
	}
	return Keyframe{}, false
}

// IsLast reports whether the located section is the final one.
func (j *Journey) IsLast(l Located) bool {
	return l.Index == len(j.keyframes)-1
}
