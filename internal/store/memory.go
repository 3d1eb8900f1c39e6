// internal/store/memory.go
//
// In-memory implementation of the session Store interface. Sessions are
// ephemeral helper state, so a map behind an RWMutex is all the persistence
// they need; state is lost on restart.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle-helper/internal/session"
)

// ErrNotFound is returned when a session ID has no stored session.
var ErrNotFound = errors.New("store: session not found")

// Store defines the persistence interface for helper sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *session.Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*session.Session, error)
}

// memory is a map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*session.Session)}
}

func (m *memory) Save(ctx context.Context, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}
