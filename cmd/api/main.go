package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobplus-backend/config"
	v1 "go-jobplus-backend/internal/delivery/http/v1"
	"go-jobplus-backend/internal/repository/postgres"
	"go-jobplus-backend/internal/usecase"
	"go-jobplus-backend/migrations"
	"go-jobplus-backend/pkg/database"
	"go-jobplus-backend/pkg/logger"
	"go-jobplus-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = string(config.Development)
	}
	cfg, err := config.Load(env)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting jobplus backend", "env", cfg.Env, "port", cfg.Port)

	// 3. Setup Database
	if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Schema migrations applied")

	dbPool, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Log.Info("Database connection established")

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
		}
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	deliveryRepo := postgres.NewDeliveryRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, validate)
	companyUC := usecase.NewCompanyUsecase(companyRepo, userRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, userRepo)
	deliveryUC := usecase.NewDeliveryUsecase(deliveryRepo, jobRepo, userRepo)
	adminUC := usecase.NewAdminUsecase(userRepo, deliveryRepo, cfg.AdminPerPage)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  companyUC,
		JobUC:      jobUC,
		DeliveryUC: deliveryUC,
		AdminUC:    adminUC,
		Config:     cfg,
	})

	// 8. Start Server
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
