package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/snarky-quiz/internal/domain/entities"
	"github.com/aliskhannn/snarky-quiz/internal/service"
)

type sessionEntry struct {
	controller *service.Controller
	lastSeen   time.Time
}

// SessionStorage keeps one quiz controller per chat in memory.
// Nothing is written anywhere; evicted sessions are gone for good.
type SessionStorage struct {
	mu       sync.RWMutex
	quiz     *entities.Quiz
	sessions map[int64]*sessionEntry
	now      func() time.Time
}

// NewSessionStorage creates a new SessionStorage for the given quiz.
func NewSessionStorage(quiz *entities.Quiz) *SessionStorage {
	return &SessionStorage{
		quiz:     quiz,
		sessions: make(map[int64]*sessionEntry),
		now:      time.Now,
	}
}

// Acquire returns the controller for chatID, creating a NotStarted one if needed,
// and marks the chat as active.
func (s *SessionStorage) Acquire(chatID int64) *service.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[chatID]
	if !ok {
		entry = &sessionEntry{controller: service.NewController(s.quiz)}
		s.sessions[chatID] = entry
	}
	entry.lastSeen = s.now()

	return entry.controller
}

// Lookup returns the controller for chatID without creating one.
func (s *SessionStorage) Lookup(chatID int64) (*service.Controller, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[chatID]
	if !ok {
		return nil, false
	}
	return entry.controller, true
}

// Delete discards the session of chatID.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Len returns the number of live sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle discards sessions not touched for longer than ttl and returns their chat IDs.
func (s *SessionStorage) EvictIdle(ttl time.Duration) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	var evicted []int64
	for chatID, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, chatID)
			evicted = append(evicted, chatID)
		}
	}

	return evicted
}
