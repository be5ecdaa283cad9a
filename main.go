package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isdelr/bloglist-be/internal/api"
	"github.com/isdelr/bloglist-be/internal/auth"
	"github.com/isdelr/bloglist-be/internal/config"
	"github.com/isdelr/bloglist-be/internal/database"
	"github.com/isdelr/bloglist-be/internal/logger"
	"github.com/isdelr/bloglist-be/internal/monitoring"
	"github.com/isdelr/bloglist-be/internal/services"
	"github.com/isdelr/bloglist-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Ensure the backup directory exists
	if err := os.MkdirAll(cfg.BackupPath, 0755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create backup directory")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up the activity-feed hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	eventService := services.NewEventService(db, hub)
	userService := services.NewUserService(db, eventService)
	blogService := services.NewBlogService(db, eventService)
	backupService := services.NewBackupService(db, eventService, cfg.BackupPath, cfg.BackupKeep)

	// Tokens expire one hour after issuance.
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Hour)

	// Set up and run the background backup scheduler
	scheduler, err := monitoring.NewScheduler(backupService, cfg.BackupSchedule)
	if err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.BackupSchedule).Msg("Invalid backup schedule")
	}
	go scheduler.Run()

	// Set up router
	router := api.NewRouter(hub, tokens, blogService, userService, eventService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
