package api

import (
	"net/http"
	"time"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/auth"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/config"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/draft"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/media"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, gate *auth.Gate, provider auth.Provider, drafts *draft.Store, editor *draft.Editor, uploader media.Uploader, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	postHandler := NewPostHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	draftHandler := NewDraftHandler(drafts, editor, log)
	mediaHandler := NewMediaHandler(uploader, cfg, log)
	sessionHandler := NewSessionHandler(provider, log)

	// Health check
	router.GET("/health", healthCheck)

	// API v1
	v1 := router.Group("/v1")
	{
		// Public reads
		v1.GET("/posts", postHandler.ListPublished)
		v1.GET("/posts/:id", postHandler.GetByID)
		v1.GET("/posts/:id/comments", commentHandler.List)
		v1.GET("/slugs/:slug", postHandler.GetBySlug)
		v1.GET("/tags", postHandler.ListTags)
		v1.GET("/tags/:tag", postHandler.ListByTag)
		v1.GET("/search", postHandler.Search)

		// Session-gated surface
		protected := v1.Group("")
		protected.Use(requireSession(gate))
		{
			protected.GET("/me/posts", postHandler.ListMine)
			protected.GET("/archive", postHandler.ListArchive)
			protected.POST("/posts", postHandler.Create)
			protected.PATCH("/posts/:id", postHandler.Update)
			protected.DELETE("/posts/:id", postHandler.Delete)
			protected.POST("/posts/:id/unpublish", postHandler.Unpublish)

			protected.POST("/posts/:id/comments", commentHandler.Add)
			protected.DELETE("/comments/:id", commentHandler.Delete)

			protected.GET("/draft", draftHandler.Load)
			protected.PUT("/draft", draftHandler.Save)
			protected.DELETE("/draft", draftHandler.Clear)

			protected.POST("/uploads", mediaHandler.Upload)

			protected.POST("/session/signout", sessionHandler.SignOut)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "blog-publishing-api",
	})
}

// requireSession blocks protected routes until the session stream has
// resolved, then requires a signed-in session
func requireSession(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, state := gate.Current()
		switch state {
		case auth.StateLoading:
			// Protected content must not be served before the first
			// session notification.
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session state not yet resolved"})
			c.Abort()
		case auth.StateSignedOut:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
		default:
			c.Set(sessionKey, session)
			c.Next()
		}
	}
}

// sessionKey is the context key the middleware stores the session under
const sessionKey = "session"

// currentSession pulls the session the middleware resolved
func currentSession(c *gin.Context) *auth.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*auth.Session)
	return session
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
