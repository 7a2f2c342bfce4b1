// Package session holds the bearer credential shared by every outbound
// request. It is injected explicitly instead of read from ambient storage so
// that invalidation on 401/403 is observable by whoever owns the login flow.
package session

import "sync"

type Session struct {
	mu           sync.Mutex
	token        string
	onInvalidate []func()
}

func New(token string) *Session {
	return &Session{token: token}
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// OnInvalidate registers a callback fired when the credential is rejected by
// the collaborator API. Callbacks run once per invalidation, outside the lock.
func (s *Session) OnInvalidate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onInvalidate = append(s.onInvalidate, fn)
}

// Invalidate clears the credential and notifies listeners. Invalidating an
// already empty session is a no-op so overlapping 401 responses notify once.
func (s *Session) Invalidate() {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return
	}
	s.token = ""
	callbacks := make([]func(), len(s.onInvalidate))
	copy(callbacks, s.onInvalidate)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}
