package auth

import (
	"context"
	"os"
	"sync"
)

// EnvProvider is the development stand-in for the hosted identity
// provider. It resolves a single session from AUTH_USER_ID, AUTH_EMAIL
// and AUTH_DISPLAY_NAME; with AUTH_USER_ID unset it resolves to signed
// out. Notifications are delivered asynchronously, so subscribers see
// the loading state first, as they would against the real provider.
type EnvProvider struct {
	mu        sync.Mutex
	listeners map[int]func(*Session)
	nextID    int
	current   *Session
}

// NewEnvProvider creates a provider resolved from the environment
func NewEnvProvider() *EnvProvider {
	var session *Session
	if userID := os.Getenv("AUTH_USER_ID"); userID != "" {
		session = &Session{
			UserID:      userID,
			Email:       os.Getenv("AUTH_EMAIL"),
			DisplayName: os.Getenv("AUTH_DISPLAY_NAME"),
		}
	}
	return &EnvProvider{
		listeners: make(map[int]func(*Session)),
		current:   session,
	}
}

// Subscribe registers a listener and schedules delivery of the resolved
// state
func (p *EnvProvider) Subscribe(fn func(*Session)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	current := p.current
	p.mu.Unlock()

	go fn(current)

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

// SignOut clears the session and notifies listeners
func (p *EnvProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.current = nil
	fns := make([]func(*Session), 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(nil)
	}
	return nil
}
