package journey

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoSections(t *testing.T) *Journey {
	t.Helper()
	j, err := New([]Keyframe{
		{Name: "A", Start: 0, End: 0.5, Pose: Pose{X: 0, Scale: 1}},
		{Name: "B", Start: 0.5, End: 1, Pose: Pose{X: 10, Scale: 1}},
	})
	require.NoError(t, err)
	return j
}

func TestLocateWorkedExample(t *testing.T) {
	j := twoSections(t)

	tests := []struct {
		progress float64
		x        float64
		section  string
	}{
		{0.25, 5, "A"},
		{0.5, 10, "B"},
		{0.9, 10, "B"},
		{1, 10, "B"},
		{0, 0, "A"},
	}

	for _, tt := range tests {
		got := j.Locate(tt.progress)
		assert.InDelta(t, tt.x, got.X, 1e-12, "x at %.2f", tt.progress)
		assert.Equal(t, tt.section, got.Section, "section at %.2f", tt.progress)
	}

	assert.Equal(t, 0.5, j.Locate(0.25).SectionProgress)
	assert.Equal(t, 0.0, j.Locate(0.5).SectionProgress)
}

func TestLocateEndpointsExact(t *testing.T) {
	j := Airy()
	first, last := j.Keyframe(0), j.Keyframe(j.Len()-1)

	assert.Equal(t, first.Pose, j.Locate(0).Pose)
	assert.Equal(t, last.Pose, j.Locate(1).Pose)
	assert.Equal(t, "hero", j.Locate(0).Section)
	assert.Equal(t, "cta", j.Locate(1).Section)
}

func TestLocateClampsInput(t *testing.T) {
	j := Airy()

	assert.Equal(t, j.Locate(0), j.Locate(-3))
	assert.Equal(t, j.Locate(1), j.Locate(7))
	assert.Equal(t, j.Locate(0), j.Locate(math.NaN()))
}

func TestLocateIdempotent(t *testing.T) {
	j := Airy()
	for _, p := range []float64{0, 0.1, 0.18, 0.33, 0.58, 0.77, 0.999, 1} {
		a := j.Locate(p)
		b := j.Locate(p)
		assert.Equal(t, a, b, "p=%v", p)
	}
}

func TestLocateConvexHull(t *testing.T) {
	j := Airy()
	kfs := j.Keyframes()

	for step := 0; step <= 1000; step++ {
		p := float64(step) / 1000
		got := j.Locate(p)

		from := kfs[got.Index].Pose
		to := from
		if got.Index+1 < len(kfs) {
			to = kfs[got.Index+1].Pose
		}

		pairs := [][3]float64{
			{got.X, from.X, to.X},
			{got.Y, from.Y, to.Y},
			{got.Z, from.Z, to.Z},
			{got.RotX, from.RotX, to.RotX},
			{got.RotY, from.RotY, to.RotY},
			{got.RotZ, from.RotZ, to.RotZ},
			{got.Scale, from.Scale, to.Scale},
		}
		for _, f := range pairs {
			lo, hi := math.Min(f[1], f[2]), math.Max(f[1], f[2])
			assert.True(t, f[0] >= lo-1e-12 && f[0] <= hi+1e-12,
				"p=%v value %v outside [%v, %v]", p, f[0], lo, hi)
		}
		assert.True(t, got.SectionProgress >= 0 && got.SectionProgress <= 1)
	}
}

func TestLocateMonotonicWithinSection(t *testing.T) {
	j := Airy()
	kfs := j.Keyframes()

	for i := 0; i < len(kfs)-1; i++ {
		from, to := kfs[i], kfs[i+1]
		rising := to.Pose.RotY >= from.Pose.RotY

		prev := j.Locate(from.Start).RotY
		for step := 1; step < 100; step++ {
			p := from.Start + (from.End-from.Start)*float64(step)/100
			cur := j.Locate(p).RotY
			if rising {
				assert.GreaterOrEqual(t, cur, prev, "section %s p=%v", from.Name, p)
			} else {
				assert.LessOrEqual(t, cur, prev, "section %s p=%v", from.Name, p)
			}
			prev = cur
		}
	}
}

func TestLocateContinuousAtBoundaries(t *testing.T) {
	j := Airy()
	const eps = 1e-9

	for _, kf := range j.Keyframes()[:j.Len()-1] {
		before := j.Locate(kf.End - eps)
		at := j.Locate(kf.End)

		assert.InDelta(t, at.X, before.X, 1e-6, "x at %s end", kf.Name)
		assert.InDelta(t, at.RotY, before.RotY, 1e-6, "rotY at %s end", kf.Name)
		assert.InDelta(t, at.Scale, before.Scale, 1e-6, "scale at %s end", kf.Name)
	}
}

func TestSingleKeyframe(t *testing.T) {
	pose := Pose{X: 1, Y: -2, Z: 3, RotX: 0.1, RotY: 0.2, RotZ: 0.3, Scale: 2}
	j, err := New([]Keyframe{{Name: "only", Start: 0, End: 1, Pose: pose}})
	require.NoError(t, err)

	for _, p := range []float64{0, 0.01, 0.5, 0.99, 1} {
		got := j.Locate(p)
		assert.Equal(t, pose, got.Pose, "p=%v", p)
		assert.Equal(t, "only", got.Section)
	}
}

func TestDegenerateInterval(t *testing.T) {
	j, err := New([]Keyframe{
		{Name: "a", Start: 0, End: 0.5, Pose: Pose{X: 0, Scale: 1}},
		{Name: "flash", Start: 0.5, End: 0.5, Pose: Pose{X: 5, Scale: 1}},
		{Name: "b", Start: 0.5, End: 1, Pose: Pose{X: 10, Scale: 1}},
	})
	require.NoError(t, err)

	got := j.Locate(0.5)
	assert.Equal(t, "b", got.Section)
	assert.False(t, math.IsNaN(got.X))

	end, err := New([]Keyframe{
		{Name: "a", Start: 0, End: 1, Pose: Pose{X: 0, Scale: 1}},
		{Name: "z", Start: 1, End: 1, Pose: Pose{X: 4, Scale: 1}},
	})
	require.NoError(t, err)
	last := end.Locate(1)
	assert.Equal(t, "z", last.Section)
	assert.Equal(t, 1.0, last.SectionProgress)
	assert.Equal(t, 4.0, last.X)
}

func TestValidation(t *testing.T) {
	ok := Pose{Scale: 1}
	tests := []struct {
		name string
		kfs  []Keyframe
		want error
	}{
		{"empty", nil, ErrEmpty},
		{"start", []Keyframe{{Name: "a", Start: 0.1, End: 1, Pose: ok}}, ErrStart},
		{"end", []Keyframe{{Name: "a", Start: 0, End: 0.9, Pose: ok}}, ErrEnd},
		{"gap", []Keyframe{{Name: "a", Start: 0, End: 0.4, Pose: ok}, {Name: "b", Start: 0.5, End: 1, Pose: ok}}, ErrGap},
		{"overlap", []Keyframe{{Name: "a", Start: 0, End: 0.6, Pose: ok}, {Name: "b", Start: 0.5, End: 1, Pose: ok}}, ErrOverlap},
		{"reversed", []Keyframe{{Name: "a", Start: 0, End: 0.5, Pose: ok}, {Name: "b", Start: 0.5, End: 0.2, Pose: ok}}, ErrNonMonotonic},
		{"scale", []Keyframe{{Name: "a", Start: 0, End: 1}}, ErrScale},
		{"nan", []Keyframe{{Name: "a", Start: 0, End: 1, Pose: Pose{X: math.NaN(), Scale: 1}}}, ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.kfs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestNewOrIdentityFallsBack(t *testing.T) {
	j, err := NewOrIdentity([]Keyframe{{Name: "a", Start: 0.2, End: 1, Pose: Pose{Scale: 1}}})
	require.ErrorIs(t, err, ErrStart)
	require.NotNil(t, j)

	got := j.Locate(0.7)
	assert.Equal(t, Pose{Scale: 1}, got.Pose)
	assert.Equal(t, "identity", got.Section)
}

func TestNewCopiesInput(t *testing.T) {
	kfs := []Keyframe{{Name: "a", Start: 0, End: 1, Pose: Pose{X: 1, Scale: 1}}}
	j, err := New(kfs)
	require.NoError(t, err)

	kfs[0].Pose.X = 99
	assert.Equal(t, 1.0, j.Locate(0.5).X)
}

func TestBoundarySnapping(t *testing.T) {
	j, err := New([]Keyframe{
		{Name: "a", Start: 0, End: 0.1 + 0.2, Pose: Pose{Scale: 1}},
		{Name: "b", Start: 0.3, End: 1, Pose: Pose{Scale: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, j.Keyframe(0).End, j.Keyframe(1).Start)
}

func TestLocateConcurrent(t *testing.T) {
	j := Airy()
	want := j.Locate(0.42)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				if got := j.Locate(0.42); got != want {
					t.Errorf("concurrent locate diverged: %+v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestEasing(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOutCubic(0))
	assert.Equal(t, 0.5, EaseInOutCubic(0.5))
	assert.Equal(t, 1.0, EaseInOutCubic(1))
	assert.InDelta(t, 0.0625, EaseInOutCubic(0.25), 1e-12)

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOutCubic(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}

	assert.Equal(t, 1.0, EaseOutCubic(1))
	assert.Equal(t, 1.0, EaseOutQuart(1))
	assert.Equal(t, 0.0, EaseOutQuart(0))
	assert.Equal(t, 2.0, Clamp(5, 0, 2))
	assert.Equal(t, 0.5, MapRange(5, 0, 10, 0, 1))
}
