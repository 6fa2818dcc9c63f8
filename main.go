package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wisbaq/webfolio-be/internal/api"
	"github.com/wisbaq/webfolio-be/internal/auth"
	"github.com/wisbaq/webfolio-be/internal/config"
	"github.com/wisbaq/webfolio-be/internal/database"
	"github.com/wisbaq/webfolio-be/internal/logger"
	"github.com/wisbaq/webfolio-be/internal/services"
	"github.com/wisbaq/webfolio-be/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Ensure the upload directory exists
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create upload directory")
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

	// Set up services
	tokens := auth.NewManager(cfg.JWTSecret)
	uploads := storage.NewStore(cfg.UploadDir)
	userService := services.NewUserService(db, bcrypt.DefaultCost)
	blogService := services.NewBlogService(db)
	metaTagService := services.NewMetaTagService(db)

	// Set up router
	router := api.NewRouter(cfg, tokens, userService, blogService, metaTagService, uploads)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
