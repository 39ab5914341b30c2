package api

import (
	"net/http"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/config"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/media"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MediaHandler handles image uploads
type MediaHandler struct {
	uploader media.Uploader
	cfg      *config.Config
	log      zerolog.Logger
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(uploader media.Uploader, cfg *config.Config, log zerolog.Logger) *MediaHandler {
	return &MediaHandler{
		uploader: uploader,
		cfg:      cfg,
		log:      log.With().Str("handler", "media").Logger(),
	}
}

// Upload handles POST /v1/uploads. One image file per request; the
// response carries the durable URL.
func (h *MediaHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	url, err := h.uploader.Upload(c.Request.Context(), header.Filename, contentType, header.Size, file)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
