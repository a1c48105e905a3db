package cart

import (
	"sync"

	"github.com/google/uuid"
)

// SessionStore hands out one independent Cart per shopper session. Nothing
// is persisted: a restart discards every cart, matching the page-reload
// semantics of the storefront.
type SessionStore struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewSessionStore() *SessionStore {
	return &SessionStore{carts: make(map[string]*Cart)}
}

// NewSession allocates a fresh session id.
func (s *SessionStore) NewSession() string {
	return uuid.NewString()
}

// Get returns the cart for the session, creating it on first use.
func (s *SessionStore) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = New()
		s.carts[sessionID] = c
	}
	return c
}

// Drop forgets a session entirely.
func (s *SessionStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
