package session

import (
	"context"
	"sync"
	"time"

	"github.com/tripbuddy/tripbuddy-agent/internal/models"
)

// MemoryStore implements Store with a mutex-guarded in-process map. Nothing
// survives a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*SessionData
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*SessionData),
	}
}

func (s *MemoryStore) LoadSession(ctx context.Context, sessionID string) (*SessionData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		now := time.Now()
		return &SessionData{
			SessionID: sessionID,
			Turns:     []models.Turn{},
			Metadata: Metadata{
				StartedAt:    now,
				LastActivity: now,
			},
		}, nil
	}

	return copySession(session), nil
}

func (s *MemoryStore) AppendTurn(ctx context.Context, sessionID, userID string, turn models.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		session = &SessionData{
			SessionID: sessionID,
			UserID:    userID,
			Metadata:  Metadata{StartedAt: time.Now()},
		}
		s.sessions[sessionID] = session
	}
	if session.UserID == "" {
		session.UserID = userID
	}

	session.Turns = append(session.Turns, turn)
	session.Metadata.LastActivity = time.Now()
	session.Metadata.TurnCount = len(session.Turns)

	return nil
}

func (s *MemoryStore) Turns(ctx context.Context, sessionID string) ([]models.Turn, error) {
	session, err := s.LoadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Turns, nil
}

func (s *MemoryStore) ClearSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func (s *MemoryStore) SessionExists(ctx context.Context, sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.sessions[sessionID]
	return ok, nil
}

func (s *MemoryStore) Touch(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[sessionID]; ok {
		session.Metadata.LastActivity = time.Now()
	}
	return nil
}

func copySession(session *SessionData) *SessionData {
	out := *session
	out.Turns = make([]models.Turn, len(session.Turns))
	copy(out.Turns, session.Turns)
	return &out
}
