package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"futuresign-backend/config"
	_ "futuresign-backend/docs" // Important for Swagger
	"futuresign-backend/internal/delivery/http/api"
	"futuresign-backend/internal/repository/postgres"
	"futuresign-backend/internal/usecase"
	"futuresign-backend/pkg/database"
	"futuresign-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// @title           FutureSign Contact API
// @version         1.0
// @description     Backend for the FutureSign printing and signage site: contact-form submissions and the service catalog.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repository
	contactRepo := postgres.NewContactRepository(dbPool)

	// 5. Setup UseCase
	validate := validator.New()
	contactUC := usecase.NewContactUsecase(contactRepo, validate, cfg.SubmitTimeout)

	// 6. Setup Router
	router := api.NewRouter(api.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
