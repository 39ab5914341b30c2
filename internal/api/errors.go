package api

import (
	"errors"
	"net/http"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/auth"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/media"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError maps service errors onto HTTP responses. Write-path
// errors surface a user-facing message so the client can keep its editor
// state intact; nothing here panics or leaks internals.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var invalid *service.InvalidInputError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": invalid.Errors,
		})
		return
	}

	var upload *media.UploadError
	if errors.As(err, &upload) {
		c.JSON(http.StatusBadRequest, gin.H{"error": upload.Reason})
		return
	}

	switch {
	case errors.Is(err, auth.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this resource"})
	default:
		log.Error().Err(err).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
