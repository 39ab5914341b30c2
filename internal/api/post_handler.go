package api

import (
	"net/http"
	"strconv"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PostHandler handles post endpoints
type PostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		log:      log.With().Str("handler", "post").Logger(),
	}
}

// ListPublished handles GET /v1/posts?page=&per_page=
func (h *PostHandler) ListPublished(c *gin.Context) {
	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "per_page", service.DefaultPerPage)

	result, err := h.services.Post.ListPublishedPage(c.Request.Context(), page, perPage)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetByID handles GET /v1/posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	post, err := h.services.Post.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetBySlug handles GET /v1/slugs/:slug
func (h *PostHandler) GetBySlug(c *gin.Context) {
	post, err := h.services.Post.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListTags handles GET /v1/tags
func (h *PostHandler) ListTags(c *gin.Context) {
	tags, err := h.services.Post.Tags(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// ListByTag handles GET /v1/tags/:tag?limit=
func (h *PostHandler) ListByTag(c *gin.Context) {
	tag := c.Param("tag")
	limit := intQuery(c, "limit", 0)

	posts, err := h.services.Post.ListByTag(c.Request.Context(), tag, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tag": tag, "posts": emptyIfNil(posts)})
}

// Search handles GET /v1/search?q=&limit=. The query text is echoed back
// so the client can keep its input and URL synchronized.
func (h *PostHandler) Search(c *gin.Context) {
	q := c.Query("q")
	limit := intQuery(c, "limit", 0)

	posts, err := h.services.Post.Search(c.Request.Context(), q, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": q, "posts": emptyIfNil(posts)})
}

// ListMine handles GET /v1/me/posts — the session user's posts, drafts
// included
func (h *PostHandler) ListMine(c *gin.Context) {
	session := currentSession(c)

	posts, err := h.services.Post.ListByAuthor(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": emptyIfNil(posts)})
}

// ListArchive handles GET /v1/archive?limit= — every post, drafts
// included, newest first
func (h *PostHandler) ListArchive(c *gin.Context) {
	limit := intQuery(c, "limit", 0)

	posts, err := h.services.Post.ListAll(c.Request.Context(), currentSession(c), limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": emptyIfNil(posts)})
}

// Create handles POST /v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	var input models.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.services.Post.Create(c.Request.Context(), currentSession(c), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info().Str("post_id", post.ID).Str("slug", post.Slug).Bool("published", post.Published).Msg("Post created")
	c.JSON(http.StatusCreated, post)
}

// Update handles PATCH /v1/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var upd models.PostUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.services.Post.Update(c.Request.Context(), currentSession(c), c.Param("id"), &upd)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /v1/posts/:id (hard delete)
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.services.Post.Delete(c.Request.Context(), currentSession(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Unpublish handles POST /v1/posts/:id/unpublish (soft delete)
func (h *PostHandler) Unpublish(c *gin.Context) {
	if err := h.services.Post.Unpublish(c.Request.Context(), currentSession(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func intQuery(c *gin.Context, key string, def int) int {
	if raw := c.Query(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return def
}

func emptyIfNil(posts []*models.Post) []*models.Post {
	if posts == nil {
		return []*models.Post{}
	}
	return posts
}
