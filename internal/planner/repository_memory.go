package planner

import (
	"sync"

	"github.com/google/uuid"
)

// InMemorySessionRepository holds every open session for the life of
// the process. The map is shared across requests, so reads and writes
// go through the mutex.
type InMemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewInMemorySessionRepository() *InMemorySessionRepository {
	return &InMemorySessionRepository{
		sessions: make(map[string]*Session),
	}
}

func (r *InMemorySessionRepository) Save(session *Session) error {
	// Generate UUID if not already set
	if session.ID == "" {
		session.ID = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *InMemorySessionRepository) FindByID(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *InMemorySessionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}
