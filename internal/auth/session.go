// Package auth wraps the external identity provider's session state and
// gates protected operations on it.
package auth

import (
	"context"
	"errors"
)

// ErrAuthRequired is returned when a mutating call is attempted without
// a session
var ErrAuthRequired = errors.New("auth: session required")

// Session is the authenticated state pushed by the identity provider
type Session struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}

// Provider is the identity boundary: a push-based session stream plus
// sign-out. Subscribe registers a listener and returns an unsubscribe
// handle; the listener receives nil when no session is present. The
// first notification arrives only once the provider has resolved the
// session state, which may be well after Subscribe returns.
type Provider interface {
	Subscribe(fn func(*Session)) (unsubscribe func())
	SignOut(ctx context.Context) error
}
