package session

import (
	"sync"
	"time"
)

type memorySession struct {
	userId    string
	expiresAt time.Time
}

type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]memorySession),
	}
}

func (r *MemorySessionRepository) CreateSession(token string, userId string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[token] = memorySession{
		userId:    userId,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (r *MemorySessionRepository) FindSession(token string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok || time.Now().After(session.expiresAt) {
		return "", nil
	}
	return session.userId, nil
}

func (r *MemorySessionRepository) DeleteSession(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}
