package session

import (
	"sync"
	"time"

	"PortfolioGolang/internal/entity"
)

// DefaultUserID is used when a request does not identify the user.
const DefaultUserID = "default"

// ISession owns the in-memory chat sessions. All mutation happens inside
// WithSession, which holds a per-session lock so concurrent turns for the
// same user serialize instead of racing.
type ISession interface {
	WithSession(userID string, fn func(s *entity.ChatSession))
	Snapshot(userID string) (entity.ChatSession, bool)
	PruneIdle(maxIdle time.Duration) int
}

type store struct {
	mu       sync.RWMutex
	sessions map[string]*managedSession
}

type managedSession struct {
	mu      sync.Mutex
	session *entity.ChatSession
}

func New() ISession {
	return &store{sessions: make(map[string]*managedSession)}
}

func (s *store) getOrCreate(userID string) *managedSession {
	if userID == "" {
		userID = DefaultUserID
	}

	s.mu.RLock()
	ms, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		return ms
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ms, ok := s.sessions[userID]; ok {
		return ms
	}
	ms = &managedSession{session: &entity.ChatSession{UserID: userID}}
	s.sessions[userID] = ms
	return ms
}

func (s *store) WithSession(userID string, fn func(session *entity.ChatSession)) {
	ms := s.getOrCreate(userID)
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.session.LastInteraction = time.Now()
	fn(ms.session)
}

// Snapshot returns a copy of the session state, or false if the user has no
// session yet. History and interests are copied so callers can't mutate live
// state.
func (s *store) Snapshot(userID string) (entity.ChatSession, bool) {
	if userID == "" {
		userID = DefaultUserID
	}

	s.mu.RLock()
	ms, ok := s.sessions[userID]
	s.mu.RUnlock()
	if !ok {
		return entity.ChatSession{}, false
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	copied := *ms.session
	copied.ConversationHistory = append([]entity.ChatTurn(nil), ms.session.ConversationHistory...)
	copied.Interests = append([]string(nil), ms.session.Interests...)
	return copied, true
}

// PruneIdle removes sessions without activity for maxIdle and reports how
// many were dropped.
func (s *store) PruneIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for userID, ms := range s.sessions {
		ms.mu.Lock()
		idle := ms.session.LastInteraction.Before(cutoff)
		ms.mu.Unlock()
		if idle {
			delete(s.sessions, userID)
			dropped++
		}
	}
	return dropped
}
