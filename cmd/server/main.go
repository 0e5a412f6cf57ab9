package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/navjivan/navjivan-backend/config"
	"github.com/navjivan/navjivan-backend/internal/app/controller"
	"github.com/navjivan/navjivan-backend/internal/app/repository"
	"github.com/navjivan/navjivan-backend/internal/app/service"
	"github.com/navjivan/navjivan-backend/internal/db"
	"github.com/navjivan/navjivan-backend/internal/middleware"
	"github.com/navjivan/navjivan-backend/internal/notify"
	"github.com/navjivan/navjivan-backend/internal/remote"
	"github.com/navjivan/navjivan-backend/internal/router"
	"github.com/navjivan/navjivan-backend/internal/scheduler"
	"github.com/navjivan/navjivan-backend/internal/storage"
	"github.com/navjivan/navjivan-backend/internal/store"
	"github.com/navjivan/navjivan-backend/internal/websocket"
	"github.com/navjivan/navjivan-backend/pkg/logger"
	"github.com/navjivan/navjivan-backend/pkg/mail"
	"github.com/navjivan/navjivan-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting NAVJIVAN Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed singletons, default categories and the admin account
	if err := db.Seed(cfg); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Redis is optional: without it, logout revocation and cross-instance
	// change propagation are disabled
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, continuing without it", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redis.Close()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Change notifier with the cross-instance redis bridge
	notifier := notify.NewNotifier()
	defer notifier.Close()
	if cfg.Redis.Enabled {
		go notifier.RunRedisBridge(ctx)
	}

	// Object storage
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Services
	userRepo := repository.NewUserRepository(db.GetDB())
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	notificationService := service.NewNotificationService(mail.Config{
		APIKey:    cfg.Mail.APIKey,
		BaseURL:   cfg.Mail.BaseURL,
		FromEmail: cfg.Mail.FromEmail,
		ToEmail:   cfg.Mail.ToEmail,
	})

	// Content store backed by the database, S3 and the notifier
	content := remote.NewContent(db.GetDB(), notifier)
	serviceSession := remote.NewServiceSession(
		authService,
		cfg.Admin.Email,
		cfg.Admin.Password,
		cfg.JWT.AccessTokenExpiry,
	)
	defer serviceSession.Close()

	contentStore := store.New(store.Backend{
		Reader:   content,
		Writer:   content,
		Objects:  remote.NewObjects(s3Storage),
		Feed:     remote.NewFeed(notifier),
		Sessions: serviceSession,
	}, store.Options{
		DebounceWindow: cfg.Content.DebounceWindow,
	})
	contentStore.Start(ctx)
	defer contentStore.Close()

	recommendationService := service.NewRecommendationService(cfg, contentStore)

	// Periodic full refresh as a safety net
	refreshScheduler := scheduler.NewRefreshScheduler(contentStore, cfg.Content.RefreshInterval)
	if err := refreshScheduler.Start(); err != nil {
		logger.Fatal("Failed to start refresh scheduler", err)
	}
	defer refreshScheduler.Stop()

	// WebSocket hub for admin console live updates
	hub := websocket.NewHub()
	go hub.Run()
	go hub.Listen(ctx, notifier)

	// Controllers
	authController := controller.NewAuthController(authService)
	publicController := controller.NewPublicController(contentStore, notificationService)
	adminController := controller.NewAdminController(contentStore)
	uploadController := controller.NewUploadController(contentStore, s3Storage)
	recommendationController := controller.NewRecommendationController(recommendationService)
	realtimeController := controller.NewRealtimeController(hub)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		publicController,
		adminController,
		uploadController,
		recommendationController,
		realtimeController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
