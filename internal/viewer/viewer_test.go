package viewer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/scrolljourney/internal/journey"
)

type memStore struct {
	props map[string][]byte
	fail  bool
}

func (m *memStore) ObjectPropExists(obj, prop string) bool {
	_, ok := m.props[obj+"/"+prop]
	return ok
}

func (m *memStore) LoadObjectProp(obj, prop string) ([]byte, error) {
	if m.fail {
		return nil, errors.New("io error")
	}
	return m.props[obj+"/"+prop], nil
}

func (m *memStore) SaveObjectProp(obj, prop string, data []byte) error {
	m.props[obj+"/"+prop] = data
	return nil
}

func TestSessionRoundTrip(t *testing.T) {
	store := NewSessionStore(&memStore{props: map[string][]byte{}})

	s, err := store.Load("airy")
	require.NoError(t, err)
	assert.Equal(t, Session{Journey: "airy"}, s)

	require.NoError(t, store.Save(Session{Journey: "airy", Progress: 0.42}))
	s, err = store.Load("airy")
	require.NoError(t, err)
	assert.Equal(t, 0.42, s.Progress)

	s, err = store.Load("orbit")
	require.NoError(t, err)
	assert.Zero(t, s.Progress, "another journey starts from the top")
}

func TestSessionLoadErrors(t *testing.T) {
	ms := &memStore{props: map[string][]byte{sessionObject + "/" + sessionProperty: []byte("progress: [")}}
	_, err := NewSessionStore(ms).Load("airy")
	assert.Error(t, err)

	ms.fail = true
	_, err = NewSessionStore(ms).Load("airy")
	assert.Error(t, err)
}

func TestSessionWithoutStore(t *testing.T) {
	store := NewSessionStore(nil)
	assert.NoError(t, store.Save(Session{Progress: 1}))
	s, err := store.Load("x")
	require.NoError(t, err)
	assert.Zero(t, s.Progress)
}

func TestSceneResizeKeepsProgress(t *testing.T) {
	sc := NewScene(journey.Airy(), nil, 800, 600)
	assert.Equal(t, 600.0*5, sc.Tracker.MaxOffset())

	sc.Tracker.ScrollToProgress(0.25)
	sc.Resize(1024, 768)
	assert.InDelta(t, 0.25, sc.Tracker.Progress(), 1e-12)
	assert.Equal(t, 768.0*5, sc.Tracker.MaxOffset())
}

func TestSceneAdvance(t *testing.T) {
	sc := NewScene(journey.Airy(), nil, 800, 600)
	sc.Tracker.ScrollToProgress(0.7)
	sc.Advance(1.0 / 60)

	assert.Equal(t, "specs", sc.Located().Section)
	assert.InDelta(t, 1.0/60, sc.Elapsed(), 1e-12)
	assert.Len(t, sc.Points(), 12)
}

func TestFade(t *testing.T) {
	c := fade(edgeColor, 0.5)
	assert.Equal(t, uint8(127), c.A)
	assert.Equal(t, uint8(0), fade(edgeColor, -1).A)
}
