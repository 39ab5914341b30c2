package auth

import (
	"sync"

	"github.com/rs/zerolog"
)

// State is the gate's view of the session stream
type State int

const (
	// StateLoading holds until the first notification arrives. Protected
	// content must not be served before the first resolution.
	StateLoading State = iota
	StateSignedOut
	StateSignedIn
)

func (s State) String() string {
	switch s {
	case StateSignedOut:
		return "signed_out"
	case StateSignedIn:
		return "signed_in"
	default:
		return "loading"
	}
}

// Gate observes the identity provider's session stream and exposes the
// current session for ownership checks. On each transition to "no
// session" the redirect callback fires exactly once.
type Gate struct {
	log         zerolog.Logger
	onSignedOut func()

	mu      sync.RWMutex
	state   State
	session *Session
	unsub   func()
}

// NewGate subscribes to the provider. onSignedOut may be nil.
func NewGate(provider Provider, onSignedOut func(), log zerolog.Logger) *Gate {
	g := &Gate{
		log:         log.With().Str("component", "auth_gate").Logger(),
		onSignedOut: onSignedOut,
		state:       StateLoading,
	}
	g.unsub = provider.Subscribe(g.onNotification)
	return g
}

// Current returns the session (nil unless signed in) and the gate state
func (g *Gate) Current() (*Session, State) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session, g.state
}

// Require returns the session or ErrAuthRequired. While the stream is
// still loading there is no session to act on.
func (g *Gate) Require() (*Session, error) {
	session, state := g.Current()
	if state != StateSignedIn || session == nil {
		return nil, ErrAuthRequired
	}
	return session, nil
}

// Owns reports whether the current session belongs to the given user
func (g *Gate) Owns(userID string) bool {
	session, state := g.Current()
	return state == StateSignedIn && session != nil && session.UserID == userID
}

// Close unsubscribes from the provider
func (g *Gate) Close() {
	g.mu.Lock()
	unsub := g.unsub
	g.unsub = nil
	g.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

func (g *Gate) onNotification(session *Session) {
	g.mu.Lock()
	prev := g.state
	if session != nil {
		g.state = StateSignedIn
		g.session = session
	} else {
		g.state = StateSignedOut
		g.session = nil
	}
	state := g.state
	g.mu.Unlock()

	g.log.Debug().Str("from", prev.String()).Str("to", state.String()).Msg("Session state changed")

	// Redirect once per transition into signed-out, never on repeats.
	if state == StateSignedOut && prev != StateSignedOut && g.onSignedOut != nil {
		g.onSignedOut()
	}
}
