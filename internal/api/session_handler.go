package api

import (
	"net/http"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SessionHandler handles session lifecycle endpoints
type SessionHandler struct {
	provider auth.Provider
	log      zerolog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(provider auth.Provider, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		provider: provider,
		log:      log.With().Str("handler", "session").Logger(),
	}
}

// SignOut handles POST /v1/session/signout. The provider notifies its
// subscribers, so the gate transitions to signed out before the next
// protected request.
func (h *SessionHandler) SignOut(c *gin.Context) {
	if err := h.provider.SignOut(c.Request.Context()); err != nil {
		respondError(c, h.log, err)
		return
	}
	h.log.Info().Msg("Session signed out")
	c.Status(http.StatusNoContent)
}
