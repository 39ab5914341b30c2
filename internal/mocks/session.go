package mocks

import (
	"context"
	"sync"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/auth"
)

// MockSessionProvider is a controllable identity provider. Tests drive
// the session stream with Emit; nothing is delivered until then, which
// models the provider still resolving its initial state.
type MockSessionProvider struct {
	mu        sync.Mutex
	listeners map[int]func(*auth.Session)
	nextID    int
	current   *auth.Session
	resolved  bool

	SignOutCalls int
}

func NewMockSessionProvider() *MockSessionProvider {
	return &MockSessionProvider{
		listeners: make(map[int]func(*auth.Session)),
	}
}

// Subscribe registers a listener. If the stream has already resolved,
// the current state is delivered immediately.
func (m *MockSessionProvider) Subscribe(fn func(*auth.Session)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	resolved := m.resolved
	current := m.current
	m.mu.Unlock()

	if resolved {
		fn(current)
	}
	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// SignOut clears the session and notifies listeners
func (m *MockSessionProvider) SignOut(ctx context.Context) error {
	m.mu.Lock()
	m.SignOutCalls++
	m.mu.Unlock()
	m.Emit(nil)
	return nil
}

// Emit pushes a session-state notification to every listener
func (m *MockSessionProvider) Emit(session *auth.Session) {
	m.mu.Lock()
	m.current = session
	m.resolved = true
	fns := make([]func(*auth.Session), 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(session)
	}
}
