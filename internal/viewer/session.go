package viewer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	sessionObject   = "session"
	sessionProperty = "last"
)

// Session is what the viewer remembers between runs.
type Session struct {
	Journey  string  `yaml:"journey"`
	Progress float64 `yaml:"progress"`
}

// PropStore is the subset of gdata.Manager the session needs.
type PropStore interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// SessionStore persists the session. A nil store keeps everything in memory.
type SessionStore struct {
	store PropStore
}

func NewSessionStore(store PropStore) *SessionStore {
	return &SessionStore{store: store}
}

// Load returns the saved session for the journey, or a zero session when
// nothing was saved or the saved one belongs to another journey.
func (s *SessionStore) Load(journeyName string) (Session, error) {
	fresh := Session{Journey: journeyName}
	if s.store == nil || !s.store.ObjectPropExists(sessionObject, sessionProperty) {
		return fresh, nil
	}

	data, err := s.store.LoadObjectProp(sessionObject, sessionProperty)
	if err != nil {
		return fresh, fmt.Errorf("failed to load session: %w", err)
	}
	var saved Session
	if err := yaml.Unmarshal(data, &saved); err != nil {
		return fresh, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if saved.Journey != journeyName {
		return fresh, nil
	}
	return saved, nil
}

func (s *SessionStore) Save(session Session) error {
	if s.store == nil {
		return nil
	}
	data, err := yaml.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.store.SaveObjectProp(sessionObject, sessionProperty, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
