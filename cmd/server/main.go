package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/api"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/auth"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/config"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/database"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/docstore"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/draft"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/media"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/repository"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/service"
	"github.com/Felicite37/Phase-Two-Capstone-Project/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting blog publishing API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize the document store. A misconfigured backend degrades to
	// an in-memory store so read surfaces keep working.
	var store docstore.Store
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Warn().Err(err).Msg("Database unavailable, using in-memory document store")
		store = docstore.NewMemoryStore()
	} else {
		defer db.Close()

		migrationsPath := os.Getenv("MIGRATIONS_PATH")
		if migrationsPath == "" {
			migrationsPath = "./migrations"
		}
		if err := db.RunMigrations(migrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
		store = docstore.NewPostgresStore(db, log)
	}

	// Initialize repositories
	repos := repository.New(store, log)

	// Local draft slot and autosave timer
	drafts := draft.NewStore(cfg.Draft.Dir, log)
	editor := draft.NewEditor()
	autosaver := draft.NewAutosaver(drafts, cfg.Draft.AutosaveInterval, editor.Snapshot, log)
	autosaver.Start()
	defer autosaver.Stop()

	// Initialize services
	services := service.NewServices(repos, drafts, log)

	// Auth gate over the identity provider's session stream
	provider := auth.NewEnvProvider()
	gate := auth.NewGate(provider, func() {
		log.Info().Msg("Session ended, protected surface locked")
	}, log)
	defer gate.Close()

	// Media uploader
	uploader := media.NewHTTPUploader(&cfg.Media, log)

	// Initialize router
	router := api.NewRouter(services, gate, provider, drafts, editor, uploader, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
