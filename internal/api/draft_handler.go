package api

import (
	"net/http"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/draft"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DraftHandler handles the single local draft slot
type DraftHandler struct {
	drafts *draft.Store
	editor *draft.Editor
	log    zerolog.Logger
}

// NewDraftHandler creates a new DraftHandler
func NewDraftHandler(drafts *draft.Store, editor *draft.Editor, log zerolog.Logger) *DraftHandler {
	return &DraftHandler{
		drafts: drafts,
		editor: editor,
		log:    log.With().Str("handler", "draft").Logger(),
	}
}

// Load handles GET /v1/draft. An empty slot returns defaults, never an
// error.
func (h *DraftHandler) Load(c *gin.Context) {
	c.JSON(http.StatusOK, h.drafts.Load())
}

// Save handles PUT /v1/draft
func (h *DraftHandler) Save(c *gin.Context) {
	var d models.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.editor.Set(&d)
	status := h.drafts.Save(&d)
	code := http.StatusOK
	if status == draft.StatusFailed {
		code = http.StatusInternalServerError
	}
	c.JSON(code, gin.H{"status": string(status)})
}

// Clear handles DELETE /v1/draft
func (h *DraftHandler) Clear(c *gin.Context) {
	h.editor.Reset()
	status := h.drafts.Clear()
	code := http.StatusOK
	if status == draft.StatusFailed {
		code = http.StatusInternalServerError
	}
	c.JSON(code, gin.H{"status": string(status)})
}
